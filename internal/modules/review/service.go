package review

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"hotelbooking/internal/domain"
)

// BookingStore is the slice of the booking repository the review gate
// needs. AttachReview must be conditional on the stored state so a lost
// race still cannot produce a second review.
type BookingStore interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	AttachReview(ctx context.Context, id string, rating int, comment string) (bool, error)
}

type Service struct {
	bookings BookingStore
}

func NewService(bookings BookingStore) *Service {
	return &Service{bookings: bookings}
}

// Attach records exactly one review on a checked-out booking. There is no
// update or delete path: revision belongs to a collaborator, not here.
func (s *Service) Attach(ctx context.Context, bookingID string, rating int, comment string) (*domain.Booking, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}
	if strings.TrimSpace(comment) == "" {
		return nil, ErrValidation
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.Status != domain.BookingCheckedOut {
		return nil, ErrNotEligible
	}
	if b.HasReview {
		return nil, ErrAlreadyReviewed
	}

	ok, err := s.bookings.AttachReview(ctx, bookingID, rating, comment)
	if err != nil {
		return nil, err
	}
	if !ok {
		// The precondition held a moment ago, so a concurrent reviewer won.
		return nil, ErrAlreadyReviewed
	}

	b, err = s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	return b, nil
}
