package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bazario/bazario-wallet/internal/deposit"
	"github.com/bazario/bazario-wallet/internal/middleware"
)

// RegisterDepositRoutes wires the vendor-facing deposit submission endpoint.
// Submissions are rate limited per user and replay-safe via idempotency keys
// so mobile clients can retry without double-filing a request.
func RegisterDepositRoutes(r fiber.Router, d Deps, h *deposit.Handler) {
	handlers := []fiber.Handler{}
	if d.Cache != nil {
		handlers = append(handlers,
			middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger),
			middleware.DepositRateLimit(d.Cache, 10),
		)
	}
	handlers = append(handlers, h.Create)
	r.Post("/deposits", handlers...)
}
