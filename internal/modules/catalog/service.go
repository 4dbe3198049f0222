package catalog

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/modules/booking"
)

type RoomStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	ListByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error)
	SetAvailability(ctx context.Context, id int64, available bool) (bool, error)
	SetOperationalStatus(ctx context.Context, id int64, status domain.OperationalStatus) (bool, error)
}

type BookingStore interface {
	ListActiveForRoom(ctx context.Context, roomID int64, from, to time.Time) ([]domain.Booking, error)
}

type HotelStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Hotel, error)
	List(ctx context.Context, limit, offset int) ([]domain.Hotel, error)
}

type Service struct {
	hotels   HotelStore
	rooms    RoomStore
	bookings BookingStore
}

func NewService(hotels HotelStore, rooms RoomStore, bookings BookingStore) *Service {
	return &Service{hotels: hotels, rooms: rooms, bookings: bookings}
}

// SearchAvailableRooms lists a hotel's rooms that can actually be booked
// for the requested range: staff toggle on, not under maintenance or
// blocked, and no active booking overlapping the dates.
func (s *Service) SearchAvailableRooms(ctx context.Context, hotelID int64, checkIn, checkOut time.Time) ([]domain.Room, error) {
	if !checkOut.After(checkIn) {
		return nil, ErrValidation
	}

	if _, err := s.hotels.GetByID(ctx, hotelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rooms, err := s.rooms.ListByHotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Room, 0, len(rooms))
	for _, room := range rooms {
		if !room.Bookable() {
			continue
		}
		existing, err := s.bookings.ListActiveForRoom(ctx, room.ID, checkIn, checkOut)
		if err != nil {
			return nil, err
		}
		if booking.HasConflict(checkIn, checkOut, existing) {
			continue
		}
		out = append(out, room)
	}
	return out, nil
}

func (s *Service) GetRoom(ctx context.Context, id int64) (*domain.Room, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return room, nil
}

func (s *Service) ListHotels(ctx context.Context, limit, offset int) ([]domain.Hotel, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.hotels.List(ctx, limit, offset)
}

// SetRoomAvailability is the staff toggle; it is independent of bookings.
func (s *Service) SetRoomAvailability(ctx context.Context, roomID int64, available bool) error {
	ok, err := s.rooms.SetAvailability(ctx, roomID, available)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (s *Service) SetRoomOperationalStatus(ctx context.Context, roomID int64, status domain.OperationalStatus) error {
	switch status {
	case domain.RoomReady, domain.RoomOccupied, domain.RoomMaintenance, domain.RoomBlocked, domain.RoomCleaning:
	default:
		return ErrValidation
	}
	ok, err := s.rooms.SetOperationalStatus(ctx, roomID, status)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
