package review

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelbooking/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings/:id/review", h.AttachReview)
}

func (h *Handler) AttachReview(c *gin.Context) {
	var req AttachReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.Attach(c.Request.Context(), c.Param("id"), req.Rating, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRating):
			response.Error(c, http.StatusBadRequest, "INVALID_RATING", "Rating must be between 1 and 5")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Comment must not be empty")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case errors.Is(err, ErrNotEligible):
			response.Error(c, http.StatusConflict, "NOT_ELIGIBLE", "Only checked-out stays can be reviewed")
		case errors.Is(err, ErrAlreadyReviewed):
			response.Error(c, http.StatusConflict, "ALREADY_REVIEWED", "Booking already has a review")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to attach review")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}
