package booking

import (
	"errors"

	"hotelbooking/internal/domain"
)

var (
	ErrValidation        = errors.New("validation error")
	ErrConflict          = errors.New("booking conflict")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNotFound          = errors.New("booking not found")
	ErrRoomUnavailable   = errors.New("room not bookable")
)

// ConflictError carries the bookings blocking a requested date range so the
// caller can offer alternatives. errors.Is(err, ErrConflict) matches it.
type ConflictError struct {
	Blocking []domain.Booking
}

func (e *ConflictError) Error() string { return ErrConflict.Error() }

func (e *ConflictError) Unwrap() error { return ErrConflict }
