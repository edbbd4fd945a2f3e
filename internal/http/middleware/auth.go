package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type contextKey string

const accountIDKey contextKey = "account_id"

// AccountID returns the authenticated account id stored in the request
// context by Authenticator.
func AccountID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(accountIDKey).(uuid.UUID)
	return id, ok
}

// WithAccount returns a context carrying the authenticated account id.
func WithAccount(ctx context.Context, accountID uuid.UUID) context.Context {
	return context.WithValue(ctx, accountIDKey, accountID)
}

// IssueToken signs an HS256 bearer token carrying the account id as subject.
func IssueToken(secret []byte, accountID uuid.UUID, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := jwt.RegisteredClaims{
		Subject:   accountID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// Authenticator rejects requests without a valid bearer token and puts the
// token's account id into the request context.
func Authenticator(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")

			raw, found := strings.CutPrefix(header, "Bearer ")
			if !found || raw == "" {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			var claims jwt.RegisteredClaims

			_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
				return secret, nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			accountID, err := uuid.Parse(claims.Subject)
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithAccount(r.Context(), accountID)))
		})
	}
}
