package account

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrDuplicateHandle is returned when registering a handle that is already taken.
	ErrDuplicateHandle = errors.New("handle already in use")
	// ErrInvalidCredentials covers both an unknown handle and a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("account not found")
)

// Account is an authenticated tenant owning a set of clients.
type Account struct {
	ID             uuid.UUID
	Handle         string
	CredentialHash string
	CreatedAt      time.Time
}
