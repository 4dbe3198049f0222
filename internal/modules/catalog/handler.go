package catalog

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/modules/booking"
	"hotelbooking/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/hotels", h.ListHotels)
	rg.GET("/hotels/:id/rooms", h.SearchRooms)
	rg.GET("/rooms/:id", h.GetRoom)
}

// RegisterStaffRoutes mounts the room management toggles, which sit behind
// the hotel-staff role check.
func (h *Handler) RegisterStaffRoutes(rg *gin.RouterGroup) {
	rg.PATCH("/rooms/:id/availability", h.SetAvailability)
	rg.PATCH("/rooms/:id/operational-status", h.SetOperationalStatus)
}

func (h *Handler) ListHotels(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	hotels, err := h.service.ListHotels(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list hotels")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"hotels": hotels})
}

func (h *Handler) SearchRooms(c *gin.Context) {
	hotelID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid hotel id")
		return
	}
	checkIn, err := time.Parse(booking.DateLayout, c.Query("check_in"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid check_in date")
		return
	}
	checkOut, err := time.Parse(booking.DateLayout, c.Query("check_out"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid check_out date")
		return
	}

	rooms, err := h.service.SearchAvailableRooms(c.Request.Context(), hotelID, checkIn, checkOut)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, SearchRoomsResponse{
		HotelID:  hotelID,
		CheckIn:  c.Query("check_in"),
		CheckOut: c.Query("check_out"),
		Rooms:    rooms,
	})
}

func (h *Handler) GetRoom(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid room id")
		return
	}

	room, err := h.service.GetRoom(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"room": room})
}

func (h *Handler) SetAvailability(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid room id")
		return
	}
	var req SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.SetRoomAvailability(c.Request.Context(), id, *req.IsAvailable); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"room_id": id, "is_available": *req.IsAvailable})
}

func (h *Handler) SetOperationalStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid room id")
		return
	}
	var req SetOperationalStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.SetRoomOperationalStatus(c.Request.Context(), id, domain.OperationalStatus(req.Status)); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"room_id": id, "operational_status": req.Status})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Hotel or room not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
	}
}
