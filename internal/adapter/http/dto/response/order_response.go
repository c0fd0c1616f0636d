package response

import (
	"time"

	"barcraft/internal/domain/entities"
)

type SubmitResponse struct {
	OrderID string `json:"order_id"`
}

type CheckoutResponse struct {
	CheckoutURL string `json:"checkout_url"`
}

type OrderResponse struct {
	OrderID           string     `json:"order_id"`
	VenueID           string     `json:"venue_id"`
	SessionID         string     `json:"session_id"`
	RecipeID          string     `json:"recipe_id,omitempty"`
	Amount            string     `json:"amount"`
	Currency          string     `json:"currency"`
	Status            string     `json:"status"`
	CheckoutSessionID string     `json:"checkout_session_id,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	FulfilledAt       *time.Time `json:"fulfilled_at,omitempty"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		OrderID:           o.ID,
		VenueID:           o.VenueID,
		SessionID:         o.SessionID,
		RecipeID:          o.RecipeID,
		Amount:            o.Amount.StringFixed(2),
		Currency:          o.Currency,
		Status:            string(o.Status),
		CheckoutSessionID: o.CheckoutSessionID,
		CreatedAt:         o.CreatedAt,
		FulfilledAt:       o.FulfilledAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
