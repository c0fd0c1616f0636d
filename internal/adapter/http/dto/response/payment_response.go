package response

import (
	"time"

	"barcraft/internal/domain/entities"
)

type PaymentResponse struct {
	IntentID  string    `json:"intent_id"`
	OrderID   string    `json:"order_id"`
	Amount    string    `json:"amount"`
	Currency  string    `json:"currency"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		IntentID:  p.IntentID,
		OrderID:   p.OrderID,
		Amount:    p.Amount.StringFixed(2),
		Currency:  p.Currency,
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func FromPayments(payments []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromPayment(p))
	}
	return out
}
