// Package settings holds the singleton platform payment configuration shown
// to vendors on the add-funds screen.
package settings

import "context"

// PaymentInfo is the singleton payment-settings document.
type PaymentInfo struct {
	BankName      string `json:"bankName"`
	AccountTitle  string `json:"accountTitle"`
	AccountNumber string `json:"accountNumber"`
	Instructions  string `json:"instructions"`
	CustomNote    string `json:"customNote,omitempty"`
}

// DefaultPaymentInfo is served until an administrator saves real settings.
func DefaultPaymentInfo() PaymentInfo {
	return PaymentInfo{
		BankName:      "JazzCash",
		AccountTitle:  "Admin Name",
		AccountNumber: "03001234567",
		Instructions:  "Please send screenshot after payment.",
	}
}

// Store reads and merge-writes the singleton document.
type Store interface {
	Get(ctx context.Context) (PaymentInfo, error)
	Save(ctx context.Context, info PaymentInfo) error
}
