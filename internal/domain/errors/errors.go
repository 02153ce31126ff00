package errors

import "errors"

// Sentinel errors for handlers to map to HTTP status.
var (
	ErrUserExists          = errors.New("email already exists")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrUserNotFound        = errors.New("user not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrInvalidStay         = errors.New("checkout date must be after checkin date")
	ErrInvalidToken        = errors.New("invalid or expired token")
	ErrTokenRevoked        = errors.New("token has been revoked")
)
