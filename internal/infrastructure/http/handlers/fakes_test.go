package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nyinyi2714/hotel-del-luna-api/internal/application/ports"
	"github.com/nyinyi2714/hotel-del-luna-api/internal/domain"
)

type fakeUserRepo struct {
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, userID domain.UserID) (*domain.User, error) {
	for _, u := range f.users {
		if u.ID == userID {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) AppendReservation(_ context.Context, _ domain.UserID, _ domain.ReservationID) error {
	return nil
}

func (f *fakeUserRepo) RemoveReservation(_ context.Context, _ domain.UserID, _ domain.ReservationID) error {
	return nil
}

func (f *fakeUserRepo) OwnedReservationIDs(_ context.Context, _ domain.UserID) ([]domain.ReservationID, error) {
	return nil, nil
}

var _ ports.UserRepository = (*fakeUserRepo)(nil)

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (fakeHasher) Verify(password, hash string) bool { return hash == "hashed:"+password }

var _ ports.PasswordHasher = fakeHasher{}

type fakeIssuer struct{}

func (fakeIssuer) IssueAccessToken(userID string, expiresInSeconds int64) (string, error) {
	expiresAt := time.Now().Add(time.Duration(expiresInSeconds) * time.Second)
	return fmt.Sprintf("tok|%s|%d", userID, expiresAt.Unix()), nil
}

func (fakeIssuer) ValidateAccessToken(tokenString string) (string, time.Time, error) {
	parts := strings.Split(tokenString, "|")
	if len(parts) != 3 || parts[0] != "tok" {
		return "", time.Time{}, errors.New("malformed token")
	}
	var unix int64
	if _, err := fmt.Sscanf(parts[2], "%d", &unix); err != nil {
		return "", time.Time{}, err
	}
	return parts[1], time.Unix(unix, 0), nil
}

var _ ports.TokenIssuer = fakeIssuer{}

type fakeBlacklist struct {
	revoked map[string]bool
}

func newFakeBlacklist() *fakeBlacklist {
	return &fakeBlacklist{revoked: make(map[string]bool)}
}

func (f *fakeBlacklist) Revoke(_ context.Context, token string, _ time.Duration) error {
	f.revoked[token] = true
	return nil
}

func (f *fakeBlacklist) IsRevoked(_ context.Context, token string) (bool, error) {
	return f.revoked[token], nil
}

var _ ports.TokenBlacklist = (*fakeBlacklist)(nil)
