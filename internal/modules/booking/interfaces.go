package booking

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"hotelbooking/internal/domain"
)

// BookingRepository is the persistence contract for the lifecycle engine.
// Conditional writes return false when the guarding predicate no longer
// holds, which the service maps to ErrInvalidTransition.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListActiveForRoom(ctx context.Context, roomID int64, from, to time.Time) ([]domain.Booking, error)
	ListByCustomer(ctx context.Context, customerID int64, limit, offset int) ([]domain.Booking, error)
	ListByHotel(ctx context.Context, hotelID int64, limit, offset int) ([]domain.Booking, error)
	TransitionStatus(ctx context.Context, id string, from, to domain.BookingStatus) (bool, error)
	MarkNoShow(ctx context.Context, id string) (bool, error)
	Cancel(ctx context.Context, id string, refund decimal.Decimal, pay domain.PaymentStatus,
		reason string, by domain.CancelActor, at time.Time) (bool, error)
}

type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// NotificationSender observes successful transitions. Delivery failures
// never fail the transition itself.
type NotificationSender interface {
	NotifyStatusChanged(ctx context.Context, b *domain.Booking, previous domain.BookingStatus) error
}
