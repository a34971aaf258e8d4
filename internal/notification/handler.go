package notification

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes the consumer-facing notification endpoints.
type Handler struct {
	store Store
}

// NewHandler constructs a notification handler.
func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// List returns the notifications for a user, newest first.
func (h *Handler) List(c *fiber.Ctx) error {
	userID := c.Params("userId")
	out, err := h.store.ListByUser(c.UserContext(), userID)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	if out == nil {
		out = []Notification{}
	}
	return c.JSON(out)
}

// MarkRead flips the read marker on one notification.
func (h *Handler) MarkRead(c *fiber.Ctx) error {
	id := c.Params("notificationId")
	if err := h.store.MarkRead(c.UserContext(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(http.StatusNotFound, err.Error())
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.SendStatus(http.StatusNoContent)
}
