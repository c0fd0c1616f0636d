package entities

import (
	"encoding/json"
	"time"
)

// IngredientEntry is one ordered ingredient line of a generated recipe.
type IngredientEntry struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity,omitempty"`
}

// RecipeSpec is the structured body of a generated drink specification.
type RecipeSpec struct {
	Ingredients []IngredientEntry `json:"ingredients"`
	Method      string            `json:"method"`
	Glassware   string            `json:"glassware"`
	Garnish     string            `json:"garnish"`
	Warnings    []string          `json:"warnings,omitempty"`
	Notes       string            `json:"notes,omitempty"`
}

// Recipe is the generated drink specification tied to exactly one Session.
// Created once per successful generation and immutable thereafter.
//
// Storage model (DynamoDB):
//   - PK: id (string)
//
// Raw keeps the upstream engine response (JSON) for traceability/audit.
type Recipe struct {
	ID          string     `json:"id"`
	SessionID   string     `json:"session_id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Spec        RecipeSpec `json:"spec"`

	Raw       json.RawMessage `json:"raw,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
