package payment

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the collaborator surface; main puts it behind the
// internal-token middleware since it is called by the payment gateway
// integration, not by end users.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.PUT("/bookings/:id/payment-status", h.UpdatePaymentStatus)
}

func (h *Handler) UpdatePaymentStatus(c *gin.Context) {
	var req UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	err := h.service.Update(c.Request.Context(), c.Param("id"), domain.PaymentStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown payment status")
		case errors.Is(err, ErrForbiddenStatus):
			response.Error(c, http.StatusForbidden, "FORBIDDEN_STATUS", "Refund statuses are set by the cancellation path")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update payment status")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking_id": c.Param("id"), "payment_status": req.Status})
}
