package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bazario/bazario-wallet/internal/deposit"
	"github.com/bazario/bazario-wallet/internal/middleware"
	"github.com/bazario/bazario-wallet/internal/settings"
)

// RegisterAdminRoutes wires the reconciliation console endpoints behind the
// admin bearer token gate.
func RegisterAdminRoutes(r fiber.Router, d Deps, deposits *deposit.Handler, payment *settings.Handler) {
	// Reconciliation actions get a structured audit trail on top of the
	// plain access log.
	admin := r.Group("/admin", middleware.AdminAuth(d.Cfg.AdminTokenHash), middleware.Audit(d.Logger))

	admin.Get("/deposits", deposits.List)
	admin.Post("/deposits/:requestId/:action", deposits.Process)
	admin.Delete("/deposits/:requestId", deposits.Delete)

	admin.Put("/payment-info", payment.Save)
}
