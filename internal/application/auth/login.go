package auth

import (
	"context"

	"github.com/nyinyi2714/hotel-del-luna-api/internal/application/ports"
	"github.com/nyinyi2714/hotel-del-luna-api/internal/domain"
	domerrors "github.com/nyinyi2714/hotel-del-luna-api/internal/domain/errors"
)

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	User        *domain.User
	AccessToken string
	ExpiresIn   int64
}

// Login verifies credentials and issues an access token.
type Login struct {
	users     ports.UserRepository
	hasher    ports.PasswordHasher
	issuer    ports.TokenIssuer
	accessExp int64
}

func NewLogin(users ports.UserRepository, hasher ports.PasswordHasher, issuer ports.TokenIssuer, accessExp int64) *Login {
	if accessExp <= 0 {
		accessExp = DefaultAccessTokenExpiry
	}
	return &Login{users: users, hasher: hasher, issuer: issuer, accessExp: accessExp}
}

func (uc *Login) Execute(ctx context.Context, input LoginInput) (*LoginResult, error) {
	user, err := uc.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !uc.hasher.Verify(input.Password, user.PasswordHash) {
		return nil, domerrors.ErrInvalidCredentials
	}
	token, err := uc.issuer.IssueAccessToken(user.ID.String(), uc.accessExp)
	if err != nil {
		return nil, err
	}
	return &LoginResult{User: user, AccessToken: token, ExpiresIn: uc.accessExp}, nil
}
