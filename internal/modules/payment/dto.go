package payment

type UpdatePaymentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
