package booking

import (
	"context"

	"github.com/nyinyi2714/hotel-del-luna-api/internal/application/ports"
	"github.com/nyinyi2714/hotel-del-luna-api/internal/domain"
	domerrors "github.com/nyinyi2714/hotel-del-luna-api/internal/domain/errors"
)

// UpdateInput replaces the mutable fields of an existing reservation.
type UpdateInput struct {
	UserID        domain.UserID
	ReservationID domain.ReservationID
	CheckinDate   domain.DateValue
	CheckoutDate  domain.DateValue
	NumOfGuests   int
	RoomType      string
}

// UpdateResult carries the updated reservation.
type UpdateResult struct {
	Reservation *domain.Reservation
}

// Update reprices and rewrites an existing reservation owned by the caller.
// The owner link is untouched; the reservation is already linked.
type Update struct {
	reservations ports.ReservationRepository
	users        ports.UserRepository
}

// NewUpdate builds the use case.
func NewUpdate(reservations ports.ReservationRepository, users ports.UserRepository) *Update {
	return &Update{reservations: reservations, users: users}
}

// Execute loads the reservation, recomputes the price from the new fields
// and persists the replacement. A reservation the caller does not own is
// reported as not found.
func (uc *Update) Execute(ctx context.Context, input UpdateInput) (*UpdateResult, error) {
	if !input.CheckoutDate.After(input.CheckinDate) {
		return nil, domerrors.ErrInvalidStay
	}
	owned, err := ownsReservation(ctx, uc.users, input.UserID, input.ReservationID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, domerrors.ErrReservationNotFound
	}
	res, err := uc.reservations.GetByID(ctx, input.ReservationID)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, domerrors.ErrReservationNotFound
	}

	res.CheckinDate = input.CheckinDate
	res.CheckoutDate = input.CheckoutDate
	res.NumOfGuests = input.NumOfGuests
	res.RoomType = domain.RoomType(input.RoomType)
	res.Price = domain.ComputePrice(input.CheckinDate, input.CheckoutDate, input.RoomType)

	if err := uc.reservations.Update(ctx, res); err != nil {
		return nil, err
	}
	return &UpdateResult{Reservation: res}, nil
}

// ownsReservation reports whether resID is in the user's owned set.
func ownsReservation(ctx context.Context, users ports.UserRepository, userID domain.UserID, resID domain.ReservationID) (bool, error) {
	ids, err := users.OwnedReservationIDs(ctx, userID)
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == resID {
			return true, nil
		}
	}
	return false, nil
}
