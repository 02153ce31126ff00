package booking

import (
	"context"

	"github.com/nyinyi2714/hotel-del-luna-api/internal/domain"
)

// QuoteInput prices a prospective stay without persisting anything.
type QuoteInput struct {
	CheckinDate  domain.DateValue
	CheckoutDate domain.DateValue
	RoomType     string
}

// QuoteResult carries the computed total.
type QuoteResult struct {
	CalculatedPrice int64
}

// Quote exposes the raw pricing engine. It requires no authentication and
// applies no stay validation, so an inverted stay quotes negative.
type Quote struct{}

// NewQuote builds the use case.
func NewQuote() *Quote { return &Quote{} }

// Execute computes the price for the given stay.
func (uc *Quote) Execute(_ context.Context, input QuoteInput) (*QuoteResult, error) {
	return &QuoteResult{
		CalculatedPrice: domain.ComputePrice(input.CheckinDate, input.CheckoutDate, input.RoomType),
	}, nil
}
