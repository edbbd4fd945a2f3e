package ledger

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ledger
type Repository interface {
	// RecordTransaction appends tx and applies its signed amount to the
	// client's balance in a single storage transaction. The client row must
	// belong to accountID or nothing is written.
	RecordTransaction(ctx context.Context, accountID uuid.UUID, tx *Transaction) error
	// DeleteTransaction reverses the stored amount's effect on the client's
	// balance and removes the row, in a single storage transaction.
	DeleteTransaction(ctx context.Context, txID, clientID, accountID uuid.UUID) error
	ListTransactions(ctx context.Context, clientID, accountID uuid.UUID) ([]*Transaction, error)
	MonthlySummary(ctx context.Context, accountID uuid.UUID) ([]MonthSummary, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type RecordParams struct {
	Kind      Kind
	Magnitude decimal.Decimal
	Date      time.Time
}

// Record validates the entry, derives the signed amount from the kind, and
// appends it together with the balance update as one atomic unit.
func (s *Service) Record(ctx context.Context, clientID, accountID uuid.UUID, params RecordParams) (*Transaction, error) {
	if params.Magnitude.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	amount := params.Magnitude
	switch params.Kind {
	case KindPayment:
		amount = amount.Neg()
	case KindInvoice:
	default:
		return nil, ErrInvalidKind
	}

	date := params.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	tx := &Transaction{
		ClientID: clientID,
		Amount:   amount,
		Kind:     params.Kind,
		Date:     date,
	}
	if err := s.repo.RecordTransaction(ctx, accountID, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

// Delete removes the transaction and undoes exactly what Record applied to
// the client's balance. The ownership chain is verified down to accountID.
func (s *Service) Delete(ctx context.Context, txID, clientID, accountID uuid.UUID) error {
	return s.repo.DeleteTransaction(ctx, txID, clientID, accountID)
}

// ListForClient returns the client's transactions in insertion order.
func (s *Service) ListForClient(ctx context.Context, clientID, accountID uuid.UUID) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx, clientID, accountID)
}

// MonthlySummary groups the account's transactions by calendar month, most
// recent first. A storage failure degrades to an empty report instead of
// failing the caller.
func (s *Service) MonthlySummary(ctx context.Context, accountID uuid.UUID) []MonthSummary {
	summary, err := s.repo.MonthlySummary(ctx, accountID)
	if err != nil {
		slog.Error("monthly summary unavailable", "error", err)
		return []MonthSummary{}
	}

	return summary
}
