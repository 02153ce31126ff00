package ports

import "context"

// BookingConfirmation is the data handed to the notification collaborator
// after a booking completes.
type BookingConfirmation struct {
	Email         string `json:"email"`
	Name          string `json:"name"`
	ReservationID string `json:"reservation_id"`
	CheckinDate   string `json:"checkin_date"`
	CheckoutDate  string `json:"checkout_date"`
	RoomType      string `json:"room_type"`
	NumOfGuests   int    `json:"num_of_guests"`
	Price         int64  `json:"price"`
}

// TaskEnqueuer enqueues async tasks (confirmation email). Enqueue failures
// are the enqueuer's to report; a booking never fails because of one.
type TaskEnqueuer interface {
	EnqueueBookingConfirmation(ctx context.Context, c BookingConfirmation) error
}
