package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a ledger record of a provider-reported payment event tied to one
// Order.
//
// Storage model (DynamoDB):
//   - PK: intent_id (string) — the provider payment-intent id is the natural
//     idempotency key; duplicate webhook deliveries update this record in place
//   - GSI: order_id-index (PK: order_id)
//
// Raw keeps the original event payload (JSON) for traceability/audit.
type Payment struct {
	IntentID string          `json:"intent_id"`
	OrderID  string          `json:"order_id"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	Status   string          `json:"status"`

	Raw       json.RawMessage `json:"raw,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
