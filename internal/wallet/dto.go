package wallet

import "github.com/bazario/bazario-wallet/internal/ledger"

// BalanceResponse mirrors the wallet field names the screens rely on.
type BalanceResponse struct {
	UserID         string `json:"userId"`
	Balance        string `json:"balance"`
	PendingDeposit string `json:"pendingDeposit"`
}

// TransactionResponse is one wallet history entry on the wire.
type TransactionResponse struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Amount      string `json:"amount"`
	Date        string `json:"date"`
	Status      string `json:"status"`
	Description string `json:"description"`
}

// HistoryResponse is a paginated history slice.
type HistoryResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
	Page         int                   `json:"page"`
	Limit        int                   `json:"limit"`
}

func toBalanceResponse(w ledger.Wallet) BalanceResponse {
	return BalanceResponse{
		UserID:         w.UserID,
		Balance:        w.Balance.String(),
		PendingDeposit: w.PendingDeposit.String(),
	}
}

func toHistoryResponse(page HistoryPage) HistoryResponse {
	out := HistoryResponse{
		Transactions: make([]TransactionResponse, 0, len(page.Entries)),
		Total:        page.Total,
		Page:         page.Page,
		Limit:        page.Limit,
	}
	for _, t := range page.Entries {
		out.Transactions = append(out.Transactions, TransactionResponse{
			ID:          t.ID,
			Type:        t.Type,
			Amount:      t.Amount.String(),
			Date:        t.Date,
			Status:      t.Status,
			Description: t.Description,
		})
	}
	return out
}
