package interfaces

import (
	"context"
	"errors"
	"time"

	"barcraft/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ErrSessionOrderExists is returned by CreateForSession when the storage-level
// one-order-per-session guard rejects the insert. The orchestrator treats it
// as "already submitted" and re-reads the existing order.
var ErrSessionOrderExists = errors.New("order already exists for session")

// IOrderRepository abstracts DynamoDB persistence for orders.
//
// All status writes are compare-and-set on the current status: the methods
// return the zero Order (and a nil error) when the condition does not hold,
// so concurrent webhook and staff writes never blind-overwrite each other.

type IOrderRepository interface {
	// CreateForSession atomically writes the order and the session claim item.
	CreateForSession(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	GetBySessionID(ctx context.Context, sessionID string) (entities.Order, error)
	// DeleteWithSessionClaim is the compensation path: it removes the order and
	// releases the session claim so a later submission may retry.
	DeleteWithSessionClaim(ctx context.Context, orderID, sessionID string) error

	AttachRecipe(ctx context.Context, orderID, recipeID string) (entities.Order, error)
	SetCheckoutSession(ctx context.Context, orderID, checkoutSessionID, currency string) (entities.Order, error)
	UpdateAmount(ctx context.Context, orderID string, amount decimal.Decimal, currency string) (entities.Order, error)

	TransitionStatus(ctx context.Context, orderID string, from, to entities.OrderStatus) (entities.Order, error)
	// Fulfill sets status fulfilled plus the fulfillment timestamp, conditioned
	// on the order being paid.
	Fulfill(ctx context.Context, orderID string, at time.Time) (entities.Order, error)
	// SetFulfilledAt backfills a missing timestamp on an already-fulfilled order.
	SetFulfilledAt(ctx context.Context, orderID string, at time.Time) (entities.Order, error)

	ListByVenueID(ctx context.Context, venueID string, status *entities.OrderStatus, limit int32) ([]entities.Order, error)
}
