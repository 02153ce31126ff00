package booking

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/nyinyi2714/hotel-del-luna-api/internal/application/ports"
	"github.com/nyinyi2714/hotel-del-luna-api/internal/domain"
	domerrors "github.com/nyinyi2714/hotel-del-luna-api/internal/domain/errors"
)

// CancelInput identifies the reservation to remove.
type CancelInput struct {
	UserID        domain.UserID
	ReservationID domain.ReservationID
}

// CancelResult is empty; cancellation has no payload.
type CancelResult struct{}

// Cancel deletes a reservation and removes it from the owner's set.
type Cancel struct {
	reservations ports.ReservationRepository
	users        ports.UserRepository
	log          zerolog.Logger
}

// NewCancel builds the use case.
func NewCancel(reservations ports.ReservationRepository, users ports.UserRepository, log zerolog.Logger) *Cancel {
	return &Cancel{reservations: reservations, users: users, log: log}
}

// Execute deletes the reservation, then unlinks it from the owner. The
// delete is not rolled back when the unlink fails: the record is already
// gone and a retry of the unlink is harmless.
func (uc *Cancel) Execute(ctx context.Context, input CancelInput) (*CancelResult, error) {
	owned, err := ownsReservation(ctx, uc.users, input.UserID, input.ReservationID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, domerrors.ErrReservationNotFound
	}
	if err := uc.reservations.Delete(ctx, input.ReservationID); err != nil {
		return nil, err
	}
	if err := uc.users.RemoveReservation(ctx, input.UserID, input.ReservationID); err != nil {
		uc.log.Error().Err(err).
			Str("user_id", input.UserID.String()).
			Str("reservation_id", input.ReservationID.String()).
			Msg("unlink reservation from user failed after delete")
	}
	return &CancelResult{}, nil
}
