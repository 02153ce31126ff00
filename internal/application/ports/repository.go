package ports

import (
	"context"

	"github.com/nyinyi2714/hotel-del-luna-api/internal/domain"
)

// UserRepository defines persistence for users and their owned-reservation
// set.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, userID domain.UserID) (*domain.User, error)
	// AppendReservation adds a reservation id to the user's owned set.
	AppendReservation(ctx context.Context, userID domain.UserID, resID domain.ReservationID) error
	// RemoveReservation removes a reservation id from the user's owned set.
	// Removing an id that is not in the set is not an error.
	RemoveReservation(ctx context.Context, userID domain.UserID, resID domain.ReservationID) error
	// OwnedReservationIDs returns the ids of the reservations the user owns.
	OwnedReservationIDs(ctx context.Context, userID domain.UserID) ([]domain.ReservationID, error)
}

// ReservationRepository defines persistence for reservations.
type ReservationRepository interface {
	// Create persists the reservation under its id in a single write.
	Create(ctx context.Context, res *domain.Reservation) error
	// GetByID returns nil, nil when the id is absent.
	GetByID(ctx context.Context, id domain.ReservationID) (*domain.Reservation, error)
	// Update replaces the dates, guest count, room type and price of an
	// existing record. Returns errors.ErrReservationNotFound when absent.
	Update(ctx context.Context, res *domain.Reservation) error
	// Delete removes the record. Returns errors.ErrReservationNotFound when
	// absent, so a second delete of the same id reports NotFound.
	Delete(ctx context.Context, id domain.ReservationID) error
	// GetManyByIDs returns the reservations whose ids are in ids. Order is
	// not contractual; absent ids are skipped.
	GetManyByIDs(ctx context.Context, ids []domain.ReservationID) ([]*domain.Reservation, error)
}
