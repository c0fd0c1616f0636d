package entities

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the order state machine: created -> paid -> fulfilled, with a
// terminal cancelled state reachable from created/paid via administrative paths.
//
// Transitions:
//   - created -> paid: webhook reconciler only, never a direct user action.
//   - paid -> fulfilled: authorized staff/admin action.

type OrderStatus string

const (
	OrderStatusCreated   OrderStatus = "created"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusFulfilled OrderStatus = "fulfilled"
	OrderStatusCancelled OrderStatus = "cancelled"
)

var ErrUnknownOrderStatus = errors.New("unknown order status")

func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case OrderStatusCreated, OrderStatusPaid, OrderStatusFulfilled, OrderStatusCancelled:
		return OrderStatus(s), nil
	}
	return "", ErrUnknownOrderStatus
}

// Order is the payable unit derived from a Recipe.
//
// Storage model (DynamoDB):
//   - PK: id (string)
//   - GSI: venue_id-index (PK: venue_id, SK: created_at) for newest-first listing
//   - a session#<session_id> claim item in the same table guarantees at most
//     one order per session
//
// Amount is fixed at creation from venue pricing; only the webhook reconciler
// may overwrite it, when the provider reports a different settled amount.
type Order struct {
	ID                string          `json:"id"`
	VenueID           string          `json:"venue_id"`
	SessionID         string          `json:"session_id"`
	RecipeID          string          `json:"recipe_id,omitempty"`
	Amount            decimal.Decimal `json:"amount"`
	Currency          string          `json:"currency"`
	Status            OrderStatus     `json:"status"`
	CheckoutSessionID string          `json:"checkout_session_id,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	FulfilledAt       *time.Time      `json:"fulfilled_at,omitempty"`
}
