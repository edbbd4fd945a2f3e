package account

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=account
type Repository interface {
	CreateAccount(ctx context.Context, acc *Account) error
	GetAccountByHandle(ctx context.Context, handle string) (*Account, error)
	GetAccount(ctx context.Context, id string) (*Account, error)
}

type Service struct {
	repo       Repository
	bcryptCost int
}

func NewService(repo Repository, bcryptCost int) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}

	return &Service{repo: repo, bcryptCost: bcryptCost}
}

// Register creates a new account with a bcrypt-hashed credential.
func (s *Service) Register(ctx context.Context, handle, password string) (*Account, error) {
	if handle == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hashing credential: %w", err)
	}

	acc := &Account{
		Handle:         handle,
		CredentialHash: string(hash),
	}
	if err := s.repo.CreateAccount(ctx, acc); err != nil {
		return nil, err
	}

	return acc, nil
}

// Authenticate verifies the handle/password pair against the accounts table.
// An unknown handle and a wrong password are indistinguishable to the caller.
func (s *Service) Authenticate(ctx context.Context, handle, password string) (*Account, error) {
	acc, err := s.repo.GetAccountByHandle(ctx, handle)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}

		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acc.CredentialHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return acc, nil
}
