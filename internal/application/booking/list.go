package booking

import (
	"context"

	"github.com/nyinyi2714/hotel-del-luna-api/internal/application/ports"
	"github.com/nyinyi2714/hotel-del-luna-api/internal/domain"
)

// ListInput scopes the listing to the requesting user.
type ListInput struct {
	UserID domain.UserID
}

// ListResult carries the user's reservations.
type ListResult struct {
	Reservations []*domain.Reservation
}

// List returns the reservations whose ids are in the user's owned set, and
// no others.
type List struct {
	reservations ports.ReservationRepository
	users        ports.UserRepository
}

// NewList builds the use case.
func NewList(reservations ports.ReservationRepository, users ports.UserRepository) *List {
	return &List{reservations: reservations, users: users}
}

// Execute resolves the owned ids and fetches the records.
func (uc *List) Execute(ctx context.Context, input ListInput) (*ListResult, error) {
	ids, err := uc.users.OwnedReservationIDs(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return &ListResult{Reservations: []*domain.Reservation{}}, nil
	}
	reservations, err := uc.reservations.GetManyByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return &ListResult{Reservations: reservations}, nil
}
