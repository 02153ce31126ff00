package auth

import (
	"context"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/nyinyi2714/hotel-del-luna-api/internal/application/ports"
	"github.com/nyinyi2714/hotel-del-luna-api/internal/domain"
	domerrors "github.com/nyinyi2714/hotel-del-luna-api/internal/domain/errors"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// DefaultAccessTokenExpiry is used when config supplies no expiry.
const DefaultAccessTokenExpiry int64 = 86400 // 24h

type RegisterInput struct {
	Firstname string
	Lastname  string
	Email     string
	Password  string
}

type RegisterResult struct {
	User        *domain.User
	AccessToken string
	ExpiresIn   int64
}

// Register creates a guest account and signs the new user in.
type Register struct {
	users     ports.UserRepository
	hasher    ports.PasswordHasher
	issuer    ports.TokenIssuer
	accessExp int64
}

func NewRegister(users ports.UserRepository, hasher ports.PasswordHasher, issuer ports.TokenIssuer, accessExp int64) *Register {
	if accessExp <= 0 {
		accessExp = DefaultAccessTokenExpiry
	}
	return &Register{users: users, hasher: hasher, issuer: issuer, accessExp: accessExp}
}

func (uc *Register) Execute(ctx context.Context, input RegisterInput) (*RegisterResult, error) {
	if !emailRegex.MatchString(input.Email) {
		return nil, domerrors.ErrInvalidCredentials
	}
	existing, err := uc.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domerrors.ErrUserExists
	}
	hash, err := uc.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &domain.User{
		ID:           domain.NewUserID(uuid.New()),
		Firstname:    input.Firstname,
		Lastname:     input.Lastname,
		Email:        input.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	token, err := uc.issuer.IssueAccessToken(user.ID.String(), uc.accessExp)
	if err != nil {
		return nil, err
	}
	return &RegisterResult{User: user, AccessToken: token, ExpiresIn: uc.accessExp}, nil
}
