package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Venue is the read model the order flow needs from a bar venue: pricing and
// an optional ingredient whitelist. Branding and the rest of the venue record
// are owned by collaborating services.
//
// Storage model (DynamoDB):
//   - PK: id (string)
type Venue struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	DrinkPrice  decimal.Decimal `json:"drink_price"`
	Currency    string          `json:"currency"`
	Ingredients []string        `json:"ingredients,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
