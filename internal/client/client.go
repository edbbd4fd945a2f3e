package client

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a client does not exist or belongs to another
// account. The two cases are deliberately indistinguishable.
var ErrNotFound = errors.New("client not found")

// Client is a billable entity tracked by an account, with a running balance.
// Balance equals the opening balance plus the signed sum of the client's
// transactions; it is only mutated through the ledger.
type Client struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Balance   decimal.Decimal
	AccountID uuid.UUID
	CreatedAt time.Time
}
