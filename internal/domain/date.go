package domain

import "time"

// DateValue is a plain (year, month, day) calendar triple as supplied by
// clients. Month is 1-12 and day is 1-31; the day is not checked against
// the month length. Out-of-range components normalize the same way
// time.Date normalizes them.
type DateValue struct {
	Year  int `json:"year" validate:"required"`
	Month int `json:"month" validate:"required,min=1,max=12"`
	Day   int `json:"day" validate:"required,min=1,max=31"`
}

// Time returns the date at UTC midnight.
func (d DateValue) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// Before reports whether d falls before other in calendar order.
func (d DateValue) Before(other DateValue) bool {
	return d.Time().Before(other.Time())
}

// After reports whether d falls after other in calendar order.
func (d DateValue) After(other DateValue) bool {
	return d.Time().After(other.Time())
}

// Equal reports whether both values name the same calendar day.
func (d DateValue) Equal(other DateValue) bool {
	return d.Time().Equal(other.Time())
}

// IsZero reports whether the value is the empty triple, i.e. the field was
// missing from a request body.
func (d DateValue) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// Format renders the date as "2 January, 2006", the shape used in
// confirmation emails.
func (d DateValue) Format() string {
	return d.Time().Format("2 January, 2006")
}
