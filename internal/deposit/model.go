// Package deposit implements the deposit-request lifecycle: vendors file
// top-up requests, administrators reconcile them, and every terminal
// transition mutates the request, the vendor's wallet and a notification in
// one atomic commit.
package deposit

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is the lifecycle state of a deposit request. A request is created
// pending and transitions exactly once to approved or rejected; terminal
// states are never revisited.
type Status string

const (
	// StatusPending marks a request awaiting administrator reconciliation.
	StatusPending Status = "pending"
	// StatusApproved marks a confirmed request whose amount was credited.
	StatusApproved Status = "approved"
	// StatusRejected marks a denied request whose pending amount was released.
	StatusRejected Status = "rejected"
)

// DepositRequest is a vendor's claim of having sent funds, awaiting
// administrator confirmation. Field names at the boundary follow the shapes
// the consuming screens rely on.
type DepositRequest struct {
	ID            string
	UserID        string
	UserName      string
	Amount        decimal.Decimal
	TransactionID string
	ScreenshotURL string
	Status        Status
	Date          time.Time
	ProcessedAt   *time.Time
}
