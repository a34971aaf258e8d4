package settings

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/bazario/bazario-wallet/internal/events"
)

// SaveRequest captures the admin payment-settings form.
type SaveRequest struct {
	BankName      string `json:"bankName" validate:"required"`
	AccountTitle  string `json:"accountTitle" validate:"required"`
	AccountNumber string `json:"accountNumber" validate:"required"`
	Instructions  string `json:"instructions"`
	CustomNote    string `json:"customNote"`
}

// Handler exposes the payment-settings endpoints.
type Handler struct {
	store     Store
	publisher events.Publisher
	validate  *validator.Validate
}

// NewHandler constructs a settings handler.
func NewHandler(store Store, publisher events.Publisher) *Handler {
	return &Handler{store: store, publisher: publisher, validate: validator.New()}
}

// Get returns the payment settings shown on the vendor add-funds screen.
func (h *Handler) Get(c *fiber.Ctx) error {
	info, err := h.store.Get(c.UserContext())
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(info)
}

// Save upserts the settings and signals subscribed screens.
func (h *Handler) Save(c *fiber.Ctx) error {
	var req SaveRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := h.validate.Struct(req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	info := PaymentInfo{
		BankName:      req.BankName,
		AccountTitle:  req.AccountTitle,
		AccountNumber: req.AccountNumber,
		Instructions:  req.Instructions,
		CustomNote:    req.CustomNote,
	}
	if err := h.store.Save(c.UserContext(), info); err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}

	_ = h.publisher.Publish(c.UserContext(), events.PaymentInfoUpdated)

	return c.JSON(info)
}
