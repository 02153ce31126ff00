package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nyinyi2714/hotel-del-luna-api/internal/application/ports"
	"github.com/nyinyi2714/hotel-del-luna-api/internal/domain"
	domerrors "github.com/nyinyi2714/hotel-del-luna-api/internal/domain/errors"
)

// BookInput describes a new-booking request. Price is never an input; it is
// always computed from the other fields.
type BookInput struct {
	UserID       domain.UserID
	CheckinDate  domain.DateValue
	CheckoutDate domain.DateValue
	NumOfGuests  int
	RoomType     string
}

// BookResult carries the stored reservation.
type BookResult struct {
	Reservation *domain.Reservation
}

// Book runs the booking workflow: price the stay, persist the reservation,
// link it to the requesting user and enqueue the confirmation email.
type Book struct {
	reservations ports.ReservationRepository
	users        ports.UserRepository
	enqueuer     ports.TaskEnqueuer
	log          zerolog.Logger
}

// NewBook builds the use case.
func NewBook(reservations ports.ReservationRepository, users ports.UserRepository, enqueuer ports.TaskEnqueuer, log zerolog.Logger) *Book {
	return &Book{reservations: reservations, users: users, enqueuer: enqueuer, log: log}
}

// Execute books the stay. The reservation insert and the owner link are two
// separate writes: a link failure surfaces as an error but leaves the
// stored reservation in place. A confirmation enqueue failure is logged and
// never fails the booking.
func (uc *Book) Execute(ctx context.Context, input BookInput) (*BookResult, error) {
	if !input.CheckoutDate.After(input.CheckinDate) {
		return nil, domerrors.ErrInvalidStay
	}
	user, err := uc.users.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domerrors.ErrUserNotFound
	}

	res := &domain.Reservation{
		ID:           domain.NewReservationID(uuid.New()),
		CheckinDate:  input.CheckinDate,
		CheckoutDate: input.CheckoutDate,
		NumOfGuests:  input.NumOfGuests,
		RoomType:     domain.RoomType(input.RoomType),
		Price:        domain.ComputePrice(input.CheckinDate, input.CheckoutDate, input.RoomType),
		BookedDate:   time.Now().UTC(),
	}
	if err := uc.reservations.Create(ctx, res); err != nil {
		return nil, err
	}
	if err := uc.users.AppendReservation(ctx, user.ID, res.ID); err != nil {
		// The reservation row stays behind; there is no compensating delete.
		uc.log.Error().Err(err).
			Str("user_id", user.ID.String()).
			Str("reservation_id", res.ID.String()).
			Msg("link reservation to user failed; reservation persisted without owner link")
		return nil, err
	}

	if err := uc.enqueuer.EnqueueBookingConfirmation(ctx, ports.BookingConfirmation{
		Email:         user.Email,
		Name:          user.Firstname,
		ReservationID: res.ID.String(),
		CheckinDate:   res.CheckinDate.Format(),
		CheckoutDate:  res.CheckoutDate.Format(),
		RoomType:      string(res.RoomType),
		NumOfGuests:   res.NumOfGuests,
		Price:         res.Price,
	}); err != nil {
		uc.log.Warn().Err(err).
			Str("reservation_id", res.ID.String()).
			Msg("enqueue booking confirmation failed; booking unaffected")
	}
	return &BookResult{Reservation: res}, nil
}
