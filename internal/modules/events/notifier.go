package events

import (
	"context"
	"time"

	"hotelbooking/internal/domain"
)

type BookingEvent struct {
	Type           string    `json:"type"`
	BookingID      string    `json:"booking_id"`
	HotelID        int64     `json:"hotel_id"`
	RoomID         int64     `json:"room_id"`
	CustomerID     int64     `json:"customer_id"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previous_status,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// Notifier implements booking.NotificationSender on top of the hub.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) NotifyStatusChanged(_ context.Context, b *domain.Booking, previous domain.BookingStatus) error {
	evType := "booking.status_changed"
	if previous == "" {
		evType = "booking.created"
	}
	n.hub.Broadcast(BookingEvent{
		Type:           evType,
		BookingID:      b.ID,
		HotelID:        b.HotelID,
		RoomID:         b.RoomID,
		CustomerID:     b.CustomerID,
		Status:         string(b.Status),
		PreviousStatus: string(previous),
		OccurredAt:     time.Now().UTC(),
	})
	return nil
}
