package repository

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"hotelbooking/internal/domain"
)

// ErrOverlap is returned when the transactional recheck inside Create finds
// a competing active booking for the same room and dates.
var ErrOverlap = errors.New("overlapping active booking")

var activeExcluded = []string{
	string(domain.BookingCancelled),
	string(domain.BookingNoShow),
}

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID                 string          `gorm:"column:id;primaryKey"`
	HotelID            int64           `gorm:"column:hotel_id;index"`
	RoomID             int64           `gorm:"column:room_id;index"`
	CustomerID         int64           `gorm:"column:customer_id;index"`
	CheckIn            time.Time       `gorm:"column:check_in"`
	CheckOut           time.Time       `gorm:"column:check_out"`
	GuestsAdults       int             `gorm:"column:guests_adults"`
	GuestsChildren     int             `gorm:"column:guests_children"`
	Status             string          `gorm:"column:status;index"`
	PaymentStatus      string          `gorm:"column:payment_status"`
	TotalAmount        decimal.Decimal `gorm:"column:total_amount;type:numeric(12,2)"`
	RefundAmount       decimal.Decimal `gorm:"column:refund_amount;type:numeric(12,2)"`
	CancellationReason *string         `gorm:"column:cancellation_reason"`
	CancelledBy        *string         `gorm:"column:cancelled_by"`
	CancelledAt        *time.Time      `gorm:"column:cancelled_at"`
	HasReview          bool            `gorm:"column:has_review"`
	ReviewRating       *int            `gorm:"column:review_rating"`
	ReviewComment      *string         `gorm:"column:review_comment"`
	CreatedAt          time.Time       `gorm:"column:created_at"`
	UpdatedAt          time.Time       `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	b := &domain.Booking{
		ID:            m.ID,
		HotelID:       m.HotelID,
		RoomID:        m.RoomID,
		CustomerID:    m.CustomerID,
		CheckIn:       m.CheckIn,
		CheckOut:      m.CheckOut,
		Guests:        domain.Guests{Adults: m.GuestsAdults, Children: m.GuestsChildren},
		Status:        domain.BookingStatus(m.Status),
		PaymentStatus: domain.PaymentStatus(m.PaymentStatus),
		TotalAmount:   m.TotalAmount,
		RefundAmount:  m.RefundAmount,
		CancelledAt:   m.CancelledAt,
		HasReview:     m.HasReview,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.CancellationReason != nil {
		b.CancellationReason = *m.CancellationReason
	}
	if m.CancelledBy != nil {
		b.CancelledBy = domain.CancelActor(*m.CancelledBy)
	}
	if m.HasReview && m.ReviewRating != nil && m.ReviewComment != nil {
		b.Review = &domain.Review{Rating: *m.ReviewRating, Comment: *m.ReviewComment}
	}
	return b
}

func toBookingModel(b *domain.Booking) bookingModel {
	m := bookingModel{
		ID:             b.ID,
		HotelID:        b.HotelID,
		RoomID:         b.RoomID,
		CustomerID:     b.CustomerID,
		CheckIn:        b.CheckIn,
		CheckOut:       b.CheckOut,
		GuestsAdults:   b.Guests.Adults,
		GuestsChildren: b.Guests.Children,
		Status:         string(b.Status),
		PaymentStatus:  string(b.PaymentStatus),
		TotalAmount:    b.TotalAmount,
		RefundAmount:   b.RefundAmount,
		CancelledAt:    b.CancelledAt,
		HasReview:      b.HasReview,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
	if b.CancellationReason != "" {
		v := b.CancellationReason
		m.CancellationReason = &v
	}
	if b.CancelledBy != "" {
		v := string(b.CancelledBy)
		m.CancelledBy = &v
	}
	if b.Review != nil {
		rating := b.Review.Rating
		comment := b.Review.Comment
		m.ReviewRating = &rating
		m.ReviewComment = &comment
	}
	return m
}

// Create inserts the booking after rechecking for overlap inside the same
// transaction, so two concurrent creates for the same room and dates cannot
// both commit. Postgres deployments back this up with the
// idx_no_room_overlap exclusion constraint.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cnt int64
		q := tx.Model(&bookingModel{}).
			Where("room_id = ? AND status NOT IN ? AND check_in < ? AND ? < check_out",
				m.RoomID, activeExcluded, m.CheckOut, m.CheckIn).
			Count(&cnt)
		if q.Error != nil {
			return q.Error
		}
		if cnt > 0 {
			return ErrOverlap
		}
		return tx.Create(&m).Error
	})
	if err != nil {
		return err
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) ListActiveForRoom(ctx context.Context, roomID int64, from, to time.Time) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).
		Where("room_id = ? AND status NOT IN ? AND check_in < ? AND ? < check_out",
			roomID, activeExcluded, to, from).
		Order("check_in").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) ListByCustomer(ctx context.Context, customerID int64, limit, offset int) ([]domain.Booking, error) {
	return r.list(ctx, "customer_id = ?", customerID, limit, offset)
}

func (r *BookingRepository) ListByHotel(ctx context.Context, hotelID int64, limit, offset int) ([]domain.Booking, error) {
	return r.list(ctx, "hotel_id = ?", hotelID, limit, offset)
}

func (r *BookingRepository) list(ctx context.Context, cond string, arg int64, limit, offset int) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).
		Where(cond, arg).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// TransitionStatus moves the status only when the stored value still equals
// from. A false return means a concurrent writer got there first.
func (r *BookingRepository) TransitionStatus(ctx context.Context, id string, from, to domain.BookingStatus) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("id = ? AND status = ?", id, string(from)).
		Update("status", string(to))
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

// MarkNoShow writes status, payment status and the zero refund in one
// conditional update; only a confirmed booking can become a no-show.
func (r *BookingRepository) MarkNoShow(ctx context.Context, id string) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("id = ? AND status = ?", id, string(domain.BookingConfirmed)).
		Updates(map[string]any{
			"status":         string(domain.BookingNoShow),
			"payment_status": string(domain.PaymentNoRefund),
			"refund_amount":  decimal.Zero,
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

// Cancel atomically writes the terminal state together with its refund
// bookkeeping, guarded on the booking still being cancellable.
func (r *BookingRepository) Cancel(ctx context.Context, id string, refund decimal.Decimal, pay domain.PaymentStatus,
	reason string, by domain.CancelActor, at time.Time) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("id = ? AND status IN ?", id, []string{
			string(domain.BookingPending),
			string(domain.BookingConfirmed),
		}).
		Updates(map[string]any{
			"status":              string(domain.BookingCancelled),
			"payment_status":      string(pay),
			"refund_amount":       refund,
			"cancellation_reason": reason,
			"cancelled_by":        string(by),
			"cancelled_at":        at,
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

// AttachReview is one-shot by construction: the predicate only matches a
// checked-out booking that has no review yet.
func (r *BookingRepository) AttachReview(ctx context.Context, id string, rating int, comment string) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("id = ? AND status = ? AND has_review = ?", id, string(domain.BookingCheckedOut), false).
		Updates(map[string]any{
			"has_review":     true,
			"review_rating":  rating,
			"review_comment": comment,
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

// UpdatePaymentStatus is the payment collaborator's write path: it touches
// payment_status and nothing else.
func (r *BookingRepository) UpdatePaymentStatus(ctx context.Context, id string, status domain.PaymentStatus) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("id = ?", id).
		Update("payment_status", string(status))
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}
