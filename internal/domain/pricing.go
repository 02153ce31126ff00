package domain

import "math"

// Nights returns the number of nights between checkin and checkout as the
// ceiling of the day difference. When checkout precedes checkin the result
// is negative; callers that care must validate the stay first.
func Nights(checkin, checkout DateValue) int {
	diff := checkout.Time().Sub(checkin.Time())
	return int(math.Ceil(diff.Hours() / 24))
}

// ComputePrice returns the total cost of a stay: nights times the nightly
// rate for roomType, with unknown types priced at DefaultNightlyRate.
//
// The function is pure and applies no floor: an inverted stay yields a
// negative price. The booking workflow rejects inverted stays before
// calling it; the quote endpoint exposes the raw arithmetic.
func ComputePrice(checkin, checkout DateValue, roomType string) int64 {
	return int64(Nights(checkin, checkout)) * NightlyRate(RoomType(roomType))
}
