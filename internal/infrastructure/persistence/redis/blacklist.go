package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/nyinyi2714/hotel-del-luna-api/internal/application/ports"
)

const blacklistKeyPrefix = "blacklist:"

// TokenBlacklist implements ports.TokenBlacklist on Redis. Revoked tokens
// are stored under a SHA-256 of the token with a TTL equal to the token's
// remaining lifetime, so entries disappear once the token would have
// expired anyway and the set never grows without bound. Being persisted, it
// survives process restarts.
type TokenBlacklist struct {
	client *goredis.Client
}

func NewTokenBlacklist(client *goredis.Client) *TokenBlacklist {
	return &TokenBlacklist{client: client}
}

func (b *TokenBlacklist) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if err := b.client.Set(ctx, blacklistKey(token), time.Now().Unix(), ttl).Err(); err != nil {
		return fmt.Errorf("blacklist token: %w", err)
	}
	return nil
}

func (b *TokenBlacklist) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := b.client.Exists(ctx, blacklistKey(token)).Result()
	if err != nil {
		return false, fmt.Errorf("check blacklist: %w", err)
	}
	return n > 0, nil
}

func blacklistKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return blacklistKeyPrefix + hex.EncodeToString(sum[:])
}

// Ensure TokenBlacklist implements ports.TokenBlacklist.
var _ ports.TokenBlacklist = (*TokenBlacklist)(nil)
