package catalog

import "hotelbooking/internal/domain"

type SearchRoomsResponse struct {
	HotelID  int64         `json:"hotel_id"`
	CheckIn  string        `json:"check_in"`
	CheckOut string        `json:"check_out"`
	Rooms    []domain.Room `json:"rooms"`
}

type SetAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" binding:"required"`
}

type SetOperationalStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
