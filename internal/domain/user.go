package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserID is a value object for user identity.
type UserID struct{ uuid.UUID }

// NewUserID creates a UserID from a uuid.
func NewUserID(id uuid.UUID) UserID { return UserID{UUID: id} }

// ParseUserID parses the canonical string form.
func ParseUserID(s string) (UserID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UserID{}, err
	}
	return UserID{UUID: id}, nil
}

// String returns the canonical string form.
func (u UserID) String() string { return u.UUID.String() }

// User is a registered guest. Reservations holds the ids of the
// reservations the user owns; the booking workflow appends to and removes
// from this set.
type User struct {
	ID           UserID
	Firstname    string
	Lastname     string
	Email        string
	PasswordHash string
	Reservations []ReservationID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
