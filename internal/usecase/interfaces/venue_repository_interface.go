package interfaces

import (
	"context"

	"barcraft/internal/domain/entities"
)

// IVenueRepository abstracts DynamoDB persistence for venue settings. Venue
// CRUD lives in a collaborating service; the order flow only reads pricing
// and the ingredient whitelist. Put exists for seeding and operations.

type IVenueRepository interface {
	GetByID(ctx context.Context, id string) (entities.Venue, error)
	Put(ctx context.Context, v entities.Venue) (entities.Venue, error)
}
