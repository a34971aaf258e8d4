package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bazario/bazario-wallet/internal/notification"
)

// RegisterNotificationRoutes wires user notification endpoints.
func RegisterNotificationRoutes(r fiber.Router, h *notification.Handler) {
	r.Get("/users/:userId/notifications", h.List)
	r.Post("/notifications/:notificationId/read", h.MarkRead)
}
