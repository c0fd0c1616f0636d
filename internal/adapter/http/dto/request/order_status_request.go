package request

// OrderStatusUpdateRequest is the PATCH /orders/:id/status payload.
type OrderStatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}
