package deposit

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/bazario/bazario-wallet/internal/guard"
)

// Handler exposes HTTP endpoints for deposit requests.
type Handler struct {
	service  *Service
	validate *validator.Validate
}

// NewHandler constructs a deposit handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service, validate: validator.New()}
}

// Create files a vendor top-up request.
func (h *Handler) Create(c *fiber.Ctx) error {
	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := h.validate.Struct(req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.UserContext(), CreateInput{
		UserID:        req.UserID,
		UserName:      req.UserName,
		Amount:        decimal.NewFromFloat(req.Amount),
		TransactionID: req.TransactionID,
		ScreenshotURL: req.ScreenshotURL,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidAmount) {
			return fiber.NewError(http.StatusBadRequest, err.Error())
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}

	return c.Status(http.StatusCreated).JSON(toResponse(created))
}

// List returns deposit requests for the admin console. `?status=pending`
// narrows to awaiting requests; omitted means all history.
func (h *Handler) List(c *fiber.Ctx) error {
	var status Status
	switch c.Query("status") {
	case "":
		// all history
	case string(StatusPending):
		status = StatusPending
	case string(StatusApproved):
		status = StatusApproved
	case string(StatusRejected):
		status = StatusRejected
	default:
		return fiber.NewError(http.StatusBadRequest, "unknown status filter")
	}

	requests, err := h.service.List(c.UserContext(), status)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}

	out := make([]RequestResponse, 0, len(requests))
	for _, req := range requests {
		out = append(out, toResponse(req))
	}
	return c.JSON(out)
}

// Process dispatches the reconciliation action named in the path
// (approve or reject). Unknown actions fail before any service call.
func (h *Handler) Process(c *fiber.Ctx) error {
	action, err := ParseAction(c.Params("action"))
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	return h.process(c, action)
}

// Delete removes a request entirely.
func (h *Handler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("requestId")); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(http.StatusNotFound, err.Error())
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.SendStatus(http.StatusNoContent)
}

func (h *Handler) process(c *fiber.Ctx, action Action) error {
	outcome, err := h.service.Process(c.UserContext(), c.Params("requestId"), action)
	if err != nil {
		switch {
		case errors.Is(err, guard.ErrLocked):
			return fiber.NewError(http.StatusConflict, err.Error())
		case errors.Is(err, ErrNotFound):
			return fiber.NewError(http.StatusNotFound, err.Error())
		case errors.Is(err, ErrNotPending):
			return fiber.NewError(http.StatusConflict, err.Error())
		case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrInvalidAction):
			return fiber.NewError(http.StatusBadRequest, err.Error())
		default:
			return fiber.NewError(http.StatusInternalServerError, "deposit could not be processed: "+err.Error())
		}
	}

	return c.JSON(ProcessResponse{
		Request:      toResponse(outcome.Request),
		Notification: outcome.Notification,
	})
}
