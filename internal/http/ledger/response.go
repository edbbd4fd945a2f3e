package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lmachado/billfold/internal/ledger"
)

type transactionResponse struct {
	ID        uuid.UUID       `json:"id"`
	ClientID  uuid.UUID       `json:"client_id"`
	Amount    decimal.Decimal `json:"amount"`
	Kind      ledger.Kind     `json:"kind"`
	Date      string          `json:"date"`
	CreatedAt time.Time       `json:"created_at"`
}

func toResponse(tx *ledger.Transaction) transactionResponse {
	return transactionResponse{
		ID:        tx.ID,
		ClientID:  tx.ClientID,
		Amount:    tx.Amount,
		Kind:      tx.Kind,
		Date:      tx.Date.Format(time.DateOnly),
		CreatedAt: tx.CreatedAt,
	}
}

type monthSummaryResponse struct {
	Month         string          `json:"month"`
	TotalPayments decimal.Decimal `json:"total_payments"`
	TotalInvoices decimal.Decimal `json:"total_invoices"`
}

func toSummaryResponse(summary []ledger.MonthSummary) []monthSummaryResponse {
	resp := make([]monthSummaryResponse, len(summary))
	for i, m := range summary {
		resp[i] = monthSummaryResponse{
			Month:         m.Month,
			TotalPayments: m.TotalPayments,
			TotalInvoices: m.TotalInvoices,
		}
	}

	return resp
}
