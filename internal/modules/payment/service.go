package payment

import (
	"context"

	"hotelbooking/internal/domain"
)

// BookingStore exposes only the payment_status write: the payment
// collaborator supplies payment transitions and must never touch the
// booking status itself.
type BookingStore interface {
	UpdatePaymentStatus(ctx context.Context, id string, status domain.PaymentStatus) (bool, error)
}

type Service struct {
	bookings BookingStore
}

func NewService(bookings BookingStore) *Service {
	return &Service{bookings: bookings}
}

// Update sets a booking's payment status. refunded and no-refund are
// written by the cancellation and no-show paths together with the refund
// amount; letting a gateway callback set them here would desynchronize the
// refund bookkeeping.
func (s *Service) Update(ctx context.Context, bookingID string, status domain.PaymentStatus) error {
	if !status.Valid() {
		return ErrValidation
	}
	switch status {
	case domain.PaymentRefunded, domain.PaymentNoRefund:
		return ErrForbiddenStatus
	}

	ok, err := s.bookings.UpdatePaymentStatus(ctx, bookingID, status)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
