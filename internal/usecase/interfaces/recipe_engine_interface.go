package interfaces

import (
	"context"
	"encoding/json"

	"barcraft/internal/domain/entities"
)

// RecipeEngineRequest carries everything the external generation service
// needs: recorded answers, the venue's ingredient whitelist and a seed that is
// deterministic per session so repeated generation is reproducible.
type RecipeEngineRequest struct {
	VenueID             string
	SessionID           string
	Answers             map[string]entities.AnswerValue
	IngredientWhitelist []string
	Seed                uint32
}

// RecipeEngineResult is the parsed recipe document plus the raw upstream
// response kept for traceability.
type RecipeEngineResult struct {
	Name        string
	Description string
	Spec        entities.RecipeSpec
	Raw         json.RawMessage
}

// IRecipeEngine abstracts the external recipe-generation service. One HTTP
// call per invocation, no retries, no side effects; the caller owns
// compensation on failure.
type IRecipeEngine interface {
	BuildRecipe(ctx context.Context, req RecipeEngineRequest) (RecipeEngineResult, error)
}
