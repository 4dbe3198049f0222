package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type RoomType string

const (
	RoomSingle RoomType = "single"
	RoomDouble RoomType = "double"
	RoomTwin   RoomType = "twin"
	RoomSuite  RoomType = "suite"
	RoomFamily RoomType = "family"
	RoomDeluxe RoomType = "deluxe"
)

type OperationalStatus string

const (
	RoomReady       OperationalStatus = "ready"
	RoomOccupied    OperationalStatus = "occupied"
	RoomMaintenance OperationalStatus = "maintenance"
	RoomBlocked     OperationalStatus = "blocked"
	RoomCleaning    OperationalStatus = "cleaning"
)

type RoomCapacity struct {
	Adults   int `json:"adults" validate:"required,gte=1"`
	Children int `json:"children" validate:"gte=0"`
}

type Room struct {
	ID                int64             `json:"id"`
	HotelID           int64             `json:"hotel_id" validate:"required"`
	RoomNumber        string            `json:"room_number" validate:"required"`
	RoomType          RoomType          `json:"room_type" validate:"required"`
	Capacity          RoomCapacity      `json:"capacity"`
	PricePerNight     decimal.Decimal   `json:"price_per_night"`
	IsAvailable       bool              `json:"is_available"`
	OperationalStatus OperationalStatus `json:"operational_status"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// Bookable reports whether the room accepts new bookings at all: the staff
// toggle must be on and the room must not be under maintenance or blocked.
// Date conflicts are a separate check.
func (r *Room) Bookable() bool {
	return r.IsAvailable &&
		r.OperationalStatus != RoomMaintenance &&
		r.OperationalStatus != RoomBlocked
}
