package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/lmachado/billfold/internal/client"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanClient(s scanner) (*client.Client, error) {
	var c client.Client

	if err := s.Scan(&c.ID, &c.Name, &c.Email, &c.Balance, &c.AccountID, &c.CreatedAt); err != nil {
		return nil, err
	}

	return &c, nil
}

const selectClientColumns = `c.id, c.name, c.email, c.balance, c.account_id, c.created_at`

func (s *Store) CreateClient(ctx context.Context, c *client.Client) error {
	query := `
		INSERT INTO clients (name, email, balance, account_id, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		c.Name,
		c.Email,
		c.Balance,
		c.AccountID,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating client: %w", err)
	}

	return nil
}

func (s *Store) GetClient(ctx context.Context, id, accountID uuid.UUID) (*client.Client, error) {
	query := `SELECT ` + selectClientColumns + `
		FROM clients c
		WHERE c.id = $1 AND c.account_id = $2`

	c, err := scanClient(s.db.QueryRowContext(ctx, query, id, accountID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, client.ErrNotFound
		}

		return nil, fmt.Errorf("getting client: %w", err)
	}

	return c, nil
}

// ListClients returns one page of the account's clients plus the total count
// of rows matching the filter. Both queries share the same predicates so the
// count always reflects the active name filter.
func (s *Store) ListClients(ctx context.Context, accountID uuid.UUID, filter client.ListFilter) ([]*client.Client, int, error) {
	where := ` WHERE c.account_id = $1`
	args := []any{accountID}

	if filter.Name != "" {
		where += ` AND c.name ILIKE '%' || $2 || '%'`

		args = append(args, filter.Name)
	}

	countQuery := `SELECT COUNT(*) FROM clients c` + where

	var total int
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting clients: %w", err)
	}

	query := `SELECT ` + selectClientColumns + `
		FROM clients c` + where + `
		ORDER BY c.name ASC, c.id ASC` +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)

	args = append(args, filter.PageSize, filter.Offset())

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing clients: %w", err)
	}
	defer rows.Close()

	var clients []*client.Client

	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning client: %w", err)
		}

		clients = append(clients, c)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating client rows: %w", err)
	}

	return clients, total, nil
}

func (s *Store) DeleteClient(ctx context.Context, id, accountID uuid.UUID) error {
	query := `
		DELETE FROM clients
		WHERE id = $1 AND account_id = $2
	`

	res, err := s.db.ExecContext(ctx, query, id, accountID)
	if err != nil {
		return fmt.Errorf("deleting client: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting client: %w", err)
	}

	if affected == 0 {
		return client.ErrNotFound
	}

	return nil
}

func (s *Store) ListNegativeClients(ctx context.Context, accountID uuid.UUID) ([]*client.Client, error) {
	query := `SELECT ` + selectClientColumns + `
		FROM clients c
		WHERE c.account_id = $1 AND c.balance < 0
		ORDER BY c.balance ASC`

	rows, err := s.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("listing negative balance clients: %w", err)
	}
	defer rows.Close()

	var clients []*client.Client

	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning client: %w", err)
		}

		clients = append(clients, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating client rows: %w", err)
	}

	return clients, nil
}
