package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nyinyi2714/hotel-del-luna-api/internal/application/ports"
	"github.com/nyinyi2714/hotel-del-luna-api/internal/domain"
)

// fakeUserRepo is a minimal in-memory ports.UserRepository keyed by email.
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

// fakeHasher marks hashes with a prefix so Verify is a pure string check.
type fakeHasher struct {
	hashErr error
}

func (f *fakeHasher) Hash(password string) (string, error) {
	if f.hashErr != nil {
		return "", f.hashErr
	}
	return "hashed:" + password, nil
}

func (f *fakeHasher) Verify(password, hash string) bool {
	return hash == "hashed:"+password
}

var _ ports.PasswordHasher = (*fakeHasher)(nil)

// fakeIssuer encodes user id and expiry into an opaque-looking token.
type fakeIssuer struct {
	issueErr error
}

func (f *fakeIssuer) IssueAccessToken(userID string, expiresInSeconds int64) (string, error) {
	if f.issueErr != nil {
		return "", f.issueErr
	}
	expiresAt := time.Now().Add(time.Duration(expiresInSeconds) * time.Second)
	return fmt.Sprintf("tok|%s|%d", userID, expiresAt.Unix()), nil
}

func (f *fakeIssuer) ValidateAccessToken(tokenString string) (string, time.Time, error) {
	parts := strings.Split(tokenString, "|")
	if len(parts) != 3 || parts[0] != "tok" {
		return "", time.Time{}, errors.New("malformed token")
	}
	if _, err := uuid.Parse(parts[1]); err != nil {
		return "", time.Time{}, err
	}
	var unix int64
	if _, err := fmt.Sscanf(parts[2], "%d", &unix); err != nil {
		return "", time.Time{}, err
	}
	return parts[1], time.Unix(unix, 0), nil
}

var _ ports.TokenIssuer = (*fakeIssuer)(nil)

// fakeBlacklist is an in-memory ports.TokenBlacklist.
type fakeBlacklist struct {
	mu        sync.Mutex
	revoked   map[string]time.Time
	revokeErr error
	checkErr  error
}

func newFakeBlacklist() *fakeBlacklist {
	return &fakeBlacklist{revoked: make(map[string]time.Time)}
}

func (f *fakeBlacklist) Revoke(_ context.Context, token string, ttl time.Duration) error {
	if f.revokeErr != nil {
		return f.revokeErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.revoked[token] = time.Now().Add(ttl)
	return nil
}

func (f *fakeBlacklist) IsRevoked(_ context.Context, token string) (bool, error) {
	if f.checkErr != nil {
		return false, f.checkErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	until, ok := f.revoked[token]
	return ok && time.Now().Before(until), nil
}

var _ ports.TokenBlacklist = (*fakeBlacklist)(nil)
