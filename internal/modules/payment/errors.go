package payment

import "errors"

var (
	ErrValidation      = errors.New("validation error")
	ErrNotFound        = errors.New("booking not found")
	ErrForbiddenStatus = errors.New("payment status reserved for cancellation path")
)
