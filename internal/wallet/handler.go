package wallet

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/bazario/bazario-wallet/internal/ledger"
)

// Handler exposes wallet read endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a wallet handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Balance returns the wallet counters for a user.
func (h *Handler) Balance(c *fiber.Ctx) error {
	userID := c.Params("userId")

	w, err := h.service.Balance(c.UserContext(), userID)
	if err != nil {
		if errors.Is(err, ledger.ErrWalletNotFound) {
			return fiber.NewError(http.StatusNotFound, err.Error())
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(toBalanceResponse(w))
}

// History returns a page of the user's wallet history, newest first.
func (h *Handler) History(c *fiber.Ctx) error {
	userID := c.Params("userId")
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)

	result, err := h.service.History(c.UserContext(), userID, page, limit)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(toHistoryResponse(result))
}
