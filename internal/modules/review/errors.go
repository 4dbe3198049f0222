package review

import "errors"

var (
	ErrValidation      = errors.New("validation error")
	ErrNotFound        = errors.New("booking not found")
	ErrNotEligible     = errors.New("booking not eligible for review")
	ErrAlreadyReviewed = errors.New("booking already reviewed")
	ErrInvalidRating   = errors.New("rating out of bounds")
)
