package interfaces

import (
	"context"

	"barcraft/internal/domain/entities"
)

// IRecipeRepository abstracts DynamoDB persistence for generated recipes.
// Recipes are created once and never updated.

type IRecipeRepository interface {
	Create(ctx context.Context, r entities.Recipe) (entities.Recipe, error)
	GetByID(ctx context.Context, id string) (entities.Recipe, error)
}
