package auth

import (
	"context"
	"errors"
	"time"

	"github.com/nyinyi2714/hotel-del-luna-api/internal/application/ports"
	domerrors "github.com/nyinyi2714/hotel-del-luna-api/internal/domain/errors"
)

type LogoutInput struct {
	Token string
}

type LogoutResult struct{}

// Logout revokes the presented access token before its natural expiry by
// writing it to the blacklist with a TTL equal to the token's remaining
// lifetime. Expired blacklist entries lapse on their own, so the store
// never grows without bound.
type Logout struct {
	issuer    ports.TokenIssuer
	blacklist ports.TokenBlacklist
}

func NewLogout(issuer ports.TokenIssuer, blacklist ports.TokenBlacklist) *Logout {
	return &Logout{issuer: issuer, blacklist: blacklist}
}

func (uc *Logout) Execute(ctx context.Context, input LogoutInput) (*LogoutResult, error) {
	if uc.blacklist == nil {
		return nil, errors.New("token revocation store not configured")
	}
	_, expiresAt, err := uc.issuer.ValidateAccessToken(input.Token)
	if err != nil {
		return nil, domerrors.ErrInvalidToken
	}
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		// Already expired; nothing to revoke.
		return &LogoutResult{}, nil
	}
	if err := uc.blacklist.Revoke(ctx, input.Token, ttl); err != nil {
		return nil, err
	}
	return &LogoutResult{}, nil
}
