package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingCheckedIn  BookingStatus = "checked-in"
	BookingCheckedOut BookingStatus = "checked-out"
	BookingCancelled  BookingStatus = "cancelled"
	BookingNoShow     BookingStatus = "no-show"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
	PaymentFailed   PaymentStatus = "failed"
	PaymentNoRefund PaymentStatus = "no-refund"
)

type CancelActor string

const (
	CancelledByCustomer CancelActor = "customer"
	CancelledByHotel    CancelActor = "hotel"
)

type Guests struct {
	Adults   int `json:"adults" validate:"required,gte=1"`
	Children int `json:"children" validate:"gte=0"`
}

type Review struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"required"`
}

type Booking struct {
	ID                 string          `json:"id"`
	HotelID            int64           `json:"hotel_id" validate:"required"`
	RoomID             int64           `json:"room_id" validate:"required"`
	CustomerID         int64           `json:"customer_id" validate:"required"`
	CheckIn            time.Time       `json:"check_in" validate:"required"`
	CheckOut           time.Time       `json:"check_out" validate:"required"`
	Guests             Guests          `json:"guests"`
	Status             BookingStatus   `json:"status"`
	PaymentStatus      PaymentStatus   `json:"payment_status"`
	TotalAmount        decimal.Decimal `json:"total_amount"`
	RefundAmount       decimal.Decimal `json:"refund_amount"`
	CancellationReason string          `json:"cancellation_reason,omitempty"`
	CancelledBy        CancelActor     `json:"cancelled_by,omitempty"`
	CancelledAt        *time.Time      `json:"cancelled_at,omitempty"`
	HasReview          bool            `json:"has_review"`
	Review             *Review         `json:"review,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// IsActive reports whether the booking occupies its room for overlap
// purposes. Cancelled and no-show bookings release their dates.
func (b *Booking) IsActive() bool {
	return b.Status != BookingCancelled && b.Status != BookingNoShow
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s BookingStatus) IsTerminal() bool {
	switch s {
	case BookingCheckedOut, BookingCancelled, BookingNoShow:
		return true
	}
	return false
}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCheckedIn,
		BookingCheckedOut, BookingCancelled, BookingNoShow:
		return true
	}
	return false
}

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentRefunded, PaymentFailed, PaymentNoRefund:
		return true
	}
	return false
}
