package ledger

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind classifies a ledger entry. Payments decrease the client's balance,
// invoices increase it.
type Kind string

const (
	KindPayment Kind = "payment"
	KindInvoice Kind = "invoice"
)

var (
	// ErrNotFound is returned when a transaction does not exist or its
	// ownership chain (transaction -> client -> account) does not reach the
	// requesting account.
	ErrNotFound = errors.New("transaction not found")
	// ErrClientNotFound is returned when the target client does not exist or
	// belongs to another account.
	ErrClientNotFound = errors.New("client not found")
	// ErrInvalidAmount is returned when a transaction magnitude is zero or negative.
	ErrInvalidAmount = errors.New("amount must be positive")
	// ErrInvalidKind is returned for a kind other than payment or invoice.
	ErrInvalidKind = errors.New("unknown transaction kind")
)

// Transaction is a dated, signed ledger entry belonging to a client. Amount
// carries the sign: negative for payments, positive for invoices.
type Transaction struct {
	ID        uuid.UUID
	ClientID  uuid.UUID
	Amount    decimal.Decimal
	Kind      Kind
	Date      time.Time
	CreatedAt time.Time
}

// MonthSummary aggregates one calendar month of an account's transactions.
// Totals are unsigned magnitudes, summed per kind.
type MonthSummary struct {
	Month         string // YYYY-MM
	TotalPayments decimal.Decimal
	TotalInvoices decimal.Decimal
}
