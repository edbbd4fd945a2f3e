package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lmachado/billfold/internal/ledger"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// lockClient locks the client row for the remainder of dbTx, verifying in the
// same statement that it belongs to accountID. The row lock serializes
// concurrent balance updates against the same client, and the ownership check
// cannot be separated from the rows it guards.
func lockClient(ctx context.Context, dbTx *sql.Tx, clientID, accountID uuid.UUID) error {
	var id uuid.UUID

	err := dbTx.QueryRowContext(ctx,
		`SELECT id FROM clients WHERE id = $1 AND account_id = $2 FOR UPDATE`,
		clientID, accountID,
	).Scan(&id)
	if err != nil {
		if err == sql.ErrNoRows {
			return ledger.ErrClientNotFound
		}

		return fmt.Errorf("locking client: %w", err)
	}

	return nil
}

// RecordTransaction inserts the entry and moves the client's balance by the
// signed amount inside one database transaction. Either both writes land or
// neither does.
func (s *Store) RecordTransaction(ctx context.Context, accountID uuid.UUID, tx *ledger.Transaction) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	if err := lockClient(ctx, dbTx, tx.ClientID, accountID); err != nil {
		return err
	}

	insertQuery := `
		INSERT INTO transactions (client_id, amount, kind, date, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	err = dbTx.QueryRowContext(ctx, insertQuery,
		tx.ClientID,
		tx.Amount,
		tx.Kind,
		tx.Date,
	).Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting transaction: %w", err)
	}

	updateQuery := `
		UPDATE clients
		SET balance = balance + $1
		WHERE id = $2
	`
	if _, err := dbTx.ExecContext(ctx, updateQuery, tx.Amount, tx.ClientID); err != nil {
		return fmt.Errorf("applying balance: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// DeleteTransaction reverses the entry's balance effect and removes the row
// inside one database transaction.
func (s *Store) DeleteTransaction(ctx context.Context, txID, clientID, accountID uuid.UUID) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	if err := lockClient(ctx, dbTx, clientID, accountID); err != nil {
		if err == ledger.ErrClientNotFound {
			// A foreign client and an absent transaction look the same.
			return ledger.ErrNotFound
		}

		return err
	}

	var amount decimal.Decimal

	err = dbTx.QueryRowContext(ctx,
		`SELECT amount FROM transactions WHERE id = $1 AND client_id = $2`,
		txID, clientID,
	).Scan(&amount)
	if err != nil {
		if err == sql.ErrNoRows {
			return ledger.ErrNotFound
		}

		return fmt.Errorf("getting transaction: %w", err)
	}

	updateQuery := `
		UPDATE clients
		SET balance = balance - $1
		WHERE id = $2
	`
	if _, err := dbTx.ExecContext(ctx, updateQuery, amount, clientID); err != nil {
		return fmt.Errorf("reversing balance: %w", err)
	}

	if _, err := dbTx.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, txID); err != nil {
		return fmt.Errorf("deleting transaction: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// ListTransactions returns the client's transactions in insertion order,
// after verifying the client belongs to accountID.
func (s *Store) ListTransactions(ctx context.Context, clientID, accountID uuid.UUID) ([]*ledger.Transaction, error) {
	var owned uuid.UUID

	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM clients WHERE id = $1 AND account_id = $2`,
		clientID, accountID,
	).Scan(&owned)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ledger.ErrClientNotFound
		}

		return nil, fmt.Errorf("checking client: %w", err)
	}

	query := `
		SELECT id, client_id, amount, kind, date, created_at
		FROM transactions
		WHERE client_id = $1
		ORDER BY created_at ASC, id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []*ledger.Transaction

	for rows.Next() {
		var tx ledger.Transaction

		var kind string

		if err := rows.Scan(&tx.ID, &tx.ClientID, &tx.Amount, &kind, &tx.Date, &tx.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		tx.Kind = ledger.Kind(kind)
		txs = append(txs, &tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transaction rows: %w", err)
	}

	return txs, nil
}

// MonthlySummary sums unsigned payment and invoice magnitudes per calendar
// month. Scoping runs through the client ownership chain so one account never
// sees another's entries.
func (s *Store) MonthlySummary(ctx context.Context, accountID uuid.UUID) ([]ledger.MonthSummary, error) {
	query := `
		SELECT to_char(t.date, 'YYYY-MM') AS month,
		       COALESCE(SUM(CASE WHEN t.kind = 'payment' THEN -t.amount ELSE 0 END), 0) AS total_payments,
		       COALESCE(SUM(CASE WHEN t.kind = 'invoice' THEN t.amount ELSE 0 END), 0) AS total_invoices
		FROM transactions t
		JOIN clients c ON c.id = t.client_id
		WHERE c.account_id = $1
		GROUP BY month
		ORDER BY month DESC
	`

	rows, err := s.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("summarizing months: %w", err)
	}
	defer rows.Close()

	var summary []ledger.MonthSummary

	for rows.Next() {
		var m ledger.MonthSummary

		if err := rows.Scan(&m.Month, &m.TotalPayments, &m.TotalInvoices); err != nil {
			return nil, fmt.Errorf("scanning month summary: %w", err)
		}

		summary = append(summary, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating summary rows: %w", err)
	}

	return summary, nil
}
