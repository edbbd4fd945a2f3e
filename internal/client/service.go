package client

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=client
type Repository interface {
	CreateClient(ctx context.Context, c *Client) error
	GetClient(ctx context.Context, id, accountID uuid.UUID) (*Client, error)
	ListClients(ctx context.Context, accountID uuid.UUID, filter ListFilter) ([]*Client, int, error)
	DeleteClient(ctx context.Context, id, accountID uuid.UUID) error
	ListNegativeClients(ctx context.Context, accountID uuid.UUID) ([]*Client, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name           string
	Email          string
	OpeningBalance decimal.Decimal
}

// ListFilter narrows and paginates a client listing. Name is matched as a
// case-insensitive substring when set.
type ListFilter struct {
	Name     string
	Page     int
	PageSize int
}

// DefaultPageSize is used when a listing does not ask for a page size.
const DefaultPageSize = 10

func (f ListFilter) normalize() ListFilter {
	if f.Page < 1 {
		f.Page = 1
	}

	if f.PageSize < 1 {
		f.PageSize = DefaultPageSize
	}

	return f
}

// Offset is the row offset implied by the filter's page and page size.
func (f ListFilter) Offset() int {
	return (f.Page - 1) * f.PageSize
}

func (s *Service) Create(ctx context.Context, accountID uuid.UUID, params CreateParams) (*Client, error) {
	c := &Client{
		Name:      params.Name,
		Email:     params.Email,
		Balance:   params.OpeningBalance,
		AccountID: accountID,
	}
	if err := s.repo.CreateClient(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Get(ctx context.Context, id, accountID uuid.UUID) (*Client, error) {
	return s.repo.GetClient(ctx, id, accountID)
}

// List returns one page of the account's clients together with the total
// count of clients matching the filter. The total respects the name filter,
// so pagination math stays consistent with what is shown.
func (s *Service) List(ctx context.Context, accountID uuid.UUID, filter ListFilter) ([]*Client, int, error) {
	return s.repo.ListClients(ctx, accountID, filter.normalize())
}

// Delete removes the client and, through the schema's cascade, all of its
// transactions. Fails with ErrNotFound unless the client belongs to accountID.
func (s *Service) Delete(ctx context.Context, id, accountID uuid.UUID) error {
	return s.repo.DeleteClient(ctx, id, accountID)
}

// ListNegative returns the account's clients with a balance below zero.
func (s *Service) ListNegative(ctx context.Context, accountID uuid.UUID) ([]*Client, error) {
	return s.repo.ListNegativeClients(ctx, accountID)
}
