package booking

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/response"
	"hotelbooking/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateBooking)
	rg.GET("/bookings/:id", h.GetBooking)
	rg.GET("/bookings", h.ListMyBookings)
	rg.POST("/bookings/:id/transition", h.TransitionBooking)
	rg.POST("/bookings/:id/cancel", h.CancelBooking)
	rg.GET("/hotels/:id/bookings", h.ListHotelBookings)
	rg.GET("/rooms/:id/calendar", h.GetRoomCalendar)
	rg.GET("/rooms/:id/availability", h.GetRoomAvailability)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking request", fields)
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func (h *Handler) GetBooking(c *gin.Context) {
	b, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) ListMyBookings(c *gin.Context) {
	customerID := c.GetInt64("customer_id")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	items, err := h.service.ListByCustomer(c.Request.Context(), customerID, limit, offset)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": items})
}

func (h *Handler) ListHotelBookings(c *gin.Context) {
	hotelID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid hotel id")
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	items, err := h.service.ListByHotel(c.Request.Context(), hotelID, limit, offset)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": items})
}

func (h *Handler) TransitionBooking(c *gin.Context) {
	var req TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.Transition(c.Request.Context(), c.Param("id"), domain.BookingStatus(req.Status))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) CancelBooking(c *gin.Context) {
	var req CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.Cancel(c.Request.Context(), c.Param("id"), req.Reason,
		domain.CancelActor(req.CancelledBy), time.Time{})
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"booking":       res.Booking,
		"refund_amount": res.RefundAmount,
	})
}

func (h *Handler) GetRoomCalendar(c *gin.Context) {
	roomID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid room id")
		return
	}
	year, _ := strconv.Atoi(c.Query("year"))
	month, _ := strconv.Atoi(c.Query("month"))

	cal, err := h.service.GetRoomCalendar(c.Request.Context(), roomID, year, time.Month(month))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"calendar": cal})
}

func (h *Handler) GetRoomAvailability(c *gin.Context) {
	roomID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid room id")
		return
	}
	checkIn, err := time.Parse(DateLayout, c.Query("check_in"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid check_in date")
		return
	}
	checkOut, err := time.Parse(DateLayout, c.Query("check_out"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid check_out date")
		return
	}

	available, err := h.service.IsRoomAvailable(c.Request.Context(), roomID, checkIn, checkOut)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"room_id": roomID, "available": available})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	var conflict *ConflictError
	if errors.As(err, &conflict) {
		blocking := make([]string, 0, len(conflict.Blocking))
		for _, b := range conflict.Blocking {
			blocking = append(blocking, b.ID)
		}
		response.ErrorWithDetails(c, http.StatusConflict, "BOOKING_CONFLICT",
			"Room is already booked for the selected dates", gin.H{"blocking_booking_ids": blocking})
		return
	}

	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking request")
	case errors.Is(err, ErrConflict):
		response.Error(c, http.StatusConflict, "BOOKING_CONFLICT", "Room is already booked for the selected dates")
	case errors.Is(err, ErrInvalidTransition):
		response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Status transition is not allowed")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking or room not found")
	case errors.Is(err, ErrRoomUnavailable):
		response.Error(c, http.StatusConflict, "ROOM_UNAVAILABLE", "Room is not accepting bookings")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
	}
}
