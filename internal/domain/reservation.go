package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReservationID is a value object for reservation identity.
type ReservationID struct{ uuid.UUID }

// NewReservationID creates a ReservationID from a uuid.
func NewReservationID(id uuid.UUID) ReservationID { return ReservationID{UUID: id} }

// ParseReservationID parses the canonical string form.
func ParseReservationID(s string) (ReservationID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return ReservationID{}, err
	}
	return ReservationID{UUID: id}, nil
}

// String returns the canonical string form.
func (r ReservationID) String() string { return r.UUID.String() }

// Reservation is a booked stay. Price is always derived by the pricing
// engine at create and update time; caller-supplied prices are discarded.
type Reservation struct {
	ID           ReservationID
	CheckinDate  DateValue
	CheckoutDate DateValue
	NumOfGuests  int
	RoomType     RoomType
	Price        int64
	BookedDate   time.Time
}
