package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bazario/bazario-wallet/internal/wallet"
)

// RegisterWalletRoutes wires wallet balance and history endpoints.
func RegisterWalletRoutes(r fiber.Router, h *wallet.Handler) {
	r.Get("/wallets/:userId/balance", h.Balance)
	r.Get("/wallets/:userId/history", h.History)
}
