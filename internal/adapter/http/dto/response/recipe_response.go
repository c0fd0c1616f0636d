package response

import (
	"time"

	"barcraft/internal/domain/entities"
)

type IngredientResponse struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity,omitempty"`
}

type RecipeResponse struct {
	RecipeID    string               `json:"recipe_id"`
	Name        string               `json:"name"`
	Description string               `json:"description,omitempty"`
	Ingredients []IngredientResponse `json:"ingredients"`
	Method      string               `json:"method"`
	Glassware   string               `json:"glassware"`
	Garnish     string               `json:"garnish"`
	Warnings    []string             `json:"warnings,omitempty"`
	Notes       string               `json:"notes,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
}

func FromRecipe(r entities.Recipe) RecipeResponse {
	ingredients := make([]IngredientResponse, 0, len(r.Spec.Ingredients))
	for _, ing := range r.Spec.Ingredients {
		ingredients = append(ingredients, IngredientResponse{Name: ing.Name, Quantity: ing.Quantity})
	}
	return RecipeResponse{
		RecipeID:    r.ID,
		Name:        r.Name,
		Description: r.Description,
		Ingredients: ingredients,
		Method:      r.Spec.Method,
		Glassware:   r.Spec.Glassware,
		Garnish:     r.Spec.Garnish,
		Warnings:    r.Spec.Warnings,
		Notes:       r.Spec.Notes,
		CreatedAt:   r.CreatedAt,
	}
}

// OrderRecipeResponse is the customer-facing receipt: the order summary plus
// its recipe.
type OrderRecipeResponse struct {
	Order  OrderResponse  `json:"order"`
	Recipe RecipeResponse `json:"recipe"`
}

func FromOrderRecipe(o entities.Order, r entities.Recipe) OrderRecipeResponse {
	return OrderRecipeResponse{Order: FromOrder(o), Recipe: FromRecipe(r)}
}
