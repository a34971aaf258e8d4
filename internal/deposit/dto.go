package deposit

import (
	"time"

	"github.com/bazario/bazario-wallet/internal/notification"
)

// CreateRequest captures the vendor top-up form.
type CreateRequest struct {
	UserID        string  `json:"userId" validate:"required"`
	UserName      string  `json:"userName" validate:"required"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	TransactionID string  `json:"transactionId" validate:"required"`
	ScreenshotURL string  `json:"screenshotUrl"`
}

// RequestResponse is the wire shape of a deposit request. Field names are
// part of the contract the consuming screens rely on.
type RequestResponse struct {
	ID            string  `json:"id"`
	UserID        string  `json:"userId"`
	UserName      string  `json:"userName"`
	Amount        string  `json:"amount"`
	TransactionID string  `json:"transactionId"`
	ScreenshotURL string  `json:"screenshotUrl,omitempty"`
	Status        Status  `json:"status"`
	Date          string  `json:"date"`
	ProcessedAt   *string `json:"processedAt,omitempty"`
}

// ProcessResponse reports a committed reconciliation.
type ProcessResponse struct {
	Request      RequestResponse           `json:"request"`
	Notification notification.Notification `json:"notification"`
}

func toResponse(req DepositRequest) RequestResponse {
	resp := RequestResponse{
		ID:            req.ID,
		UserID:        req.UserID,
		UserName:      req.UserName,
		Amount:        req.Amount.String(),
		TransactionID: req.TransactionID,
		ScreenshotURL: req.ScreenshotURL,
		Status:        req.Status,
		Date:          req.Date.UTC().Format(time.RFC3339),
	}
	if req.ProcessedAt != nil {
		processed := req.ProcessedAt.UTC().Format(time.RFC3339)
		resp.ProcessedAt = &processed
	}
	return resp
}
