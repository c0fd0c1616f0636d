package interfaces

import (
	"context"

	"barcraft/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for payment ledger rows.
//
// Upsert is keyed by the provider intent id: a duplicate delivery for the same
// intent updates amount/status/raw payload in place instead of inserting.

type IPaymentRepository interface {
	Upsert(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByIntentID(ctx context.Context, intentID string) (entities.Payment, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.Payment, error)
}
