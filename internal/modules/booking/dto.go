package booking

import (
	"github.com/shopspring/decimal"

	"hotelbooking/internal/domain"
)

// Calendar dates cross the wire as plain days, not instants.
const DateLayout = "2006-01-02"

type CreateBookingRequest struct {
	HotelID       int64           `json:"hotel_id" binding:"required" validate:"required,gt=0"`
	RoomID        int64           `json:"room_id" binding:"required" validate:"required,gt=0"`
	CustomerID    int64           `json:"customer_id" binding:"required" validate:"required,gt=0"`
	CheckIn       string          `json:"check_in" binding:"required" validate:"required,datetime=2006-01-02"`
	CheckOut      string          `json:"check_out" binding:"required" validate:"required,datetime=2006-01-02"`
	Guests        domain.Guests   `json:"guests"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaymentStatus string          `json:"payment_status"`
}

type TransitionRequest struct {
	Status string `json:"status" binding:"required"`
}

type CancelRequest struct {
	Reason      string `json:"reason" binding:"required"`
	CancelledBy string `json:"cancelled_by" binding:"required"`
}

type CancelResult struct {
	Booking      *domain.Booking `json:"booking"`
	RefundAmount decimal.Decimal `json:"refund_amount"`
}

type RoomCalendar struct {
	RoomID int64         `json:"room_id"`
	Year   int           `json:"year"`
	Month  int           `json:"month"`
	Days   []CalendarDay `json:"days"`
}
