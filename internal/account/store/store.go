package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/lmachado/billfold/internal/account"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const uniqueViolation = "23505"

func (s *Store) CreateAccount(ctx context.Context, acc *account.Account) error {
	query := `
		INSERT INTO accounts (handle, credential_hash, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query, acc.Handle, acc.CredentialHash).
		Scan(&acc.ID, &acc.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return account.ErrDuplicateHandle
		}

		return fmt.Errorf("creating account: %w", err)
	}

	return nil
}

func (s *Store) GetAccountByHandle(ctx context.Context, handle string) (*account.Account, error) {
	query := `
		SELECT id, handle, credential_hash, created_at
		FROM accounts
		WHERE handle = $1
	`

	var acc account.Account

	err := s.db.QueryRowContext(ctx, query, handle).
		Scan(&acc.ID, &acc.Handle, &acc.CredentialHash, &acc.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, account.ErrNotFound
		}

		return nil, fmt.Errorf("getting account by handle: %w", err)
	}

	return &acc, nil
}

func (s *Store) GetAccount(ctx context.Context, id string) (*account.Account, error) {
	query := `
		SELECT id, handle, credential_hash, created_at
		FROM accounts
		WHERE id = $1
	`

	var acc account.Account

	err := s.db.QueryRowContext(ctx, query, id).
		Scan(&acc.ID, &acc.Handle, &acc.CredentialHash, &acc.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, account.ErrNotFound
		}

		return nil, fmt.Errorf("getting account: %w", err)
	}

	return &acc, nil
}
