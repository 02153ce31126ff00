package ports

import (
	"context"
	"time"
)

// PasswordHasher hashes and verifies passwords (Argon2id).
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// TokenIssuer signs and validates access tokens (RS256).
type TokenIssuer interface {
	IssueAccessToken(userID string, expiresInSeconds int64) (string, error)
	// ValidateAccessToken returns the user id and the token expiry.
	ValidateAccessToken(tokenString string) (userID string, expiresAt time.Time, err error)
}

// TokenBlacklist revokes tokens before their natural expiry. Entries expire
// on their own once the token would have expired anyway.
type TokenBlacklist interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}
