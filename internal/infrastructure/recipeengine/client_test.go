package recipeengine

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"barcraft/internal/domain/entities"
	"barcraft/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
)

func engineRequest() interfaces.RecipeEngineRequest {
	return interfaces.RecipeEngineRequest{
		VenueID:   "venue-1",
		SessionID: "sess-1",
		Answers: map[string]entities.AnswerValue{
			"q-spirit":    {Choice: "gin"},
			"q-sweetness": {Choice: "dry"},
		},
		IngredientWhitelist: []string{"gin", "lime juice"},
		Seed:                42,
	}
}

func TestClient_BuildRecipe(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost || r.URL.Path != "/generate" {
				t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
			}

			auth := r.Header.Get("Authorization")
			if len(auth) < 8 || auth[:7] != "Bearer " {
				t.Fatalf("missing bearer token, got %q", auth)
			}
			claims := jwt.RegisteredClaims{}
			_, err := jwt.ParseWithClaims(auth[7:], &claims, func(*jwt.Token) (any, error) {
				return []byte("engine-secret"), nil
			}, jwt.WithIssuer("barcraft-api"), jwt.WithAudience("recipe-engine"))
			if err != nil {
				t.Fatalf("token verification failed: %v", err)
			}
			if claims.Subject != "sess-1" {
				t.Fatalf("expected session subject, got %q", claims.Subject)
			}

			var body struct {
				SessionID string `json:"session_id"`
				Answers   []struct {
					QuestionID string `json:"question_id"`
					Value      string `json:"value"`
				} `json:"answers"`
				Seed uint32 `json:"seed"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Fatalf("invalid request body: %v", err)
			}
			if body.SessionID != "sess-1" || body.Seed != 42 {
				t.Fatalf("unexpected body: %+v", body)
			}
			if len(body.Answers) != 2 || body.Answers[0].QuestionID != "q-spirit" {
				t.Fatalf("expected sorted answers, got %+v", body.Answers)
			}

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"cocktail_name": "Velvet Alibi",
				"description": "Dry, aromatic, with a long citrus finish.",
				"ingredients": [{"name": "gin", "quantity": "50ml"}, "lime juice"],
				"method": "Shake hard over ice and double strain.",
				"glassware": "coupe",
				"garnish": "lime wheel"
			}`))
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "engine-secret")
		doc, err := c.BuildRecipe(context.Background(), engineRequest())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.Name != "Velvet Alibi" {
			t.Fatalf("unexpected name: %q", doc.Name)
		}
		if len(doc.Spec.Ingredients) != 2 || doc.Spec.Ingredients[1].Name != "lime juice" {
			t.Fatalf("expected string ingredient to parse, got %+v", doc.Spec.Ingredients)
		}
		if len(doc.Raw) == 0 {
			t.Fatalf("expected raw response to be kept")
		}
	})

	t.Run("missing name falls back", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"ingredients": ["gin"], "method": "Stir."}`))
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "engine-secret")
		doc, err := c.BuildRecipe(context.Background(), engineRequest())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.Name != "Bespoke Cocktail" {
			t.Fatalf("expected fallback name, got %q", doc.Name)
		}
	})

	t.Run("non-success response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "engine-secret")
		_, err := c.BuildRecipe(context.Background(), engineRequest())
		if !errors.Is(err, ErrRecipeEngineUnavailable) {
			t.Fatalf("expected ErrRecipeEngineUnavailable, got %v", err)
		}
	})

	t.Run("incomplete document", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"cocktail_name": "Ghost", "ingredients": []}`))
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "engine-secret")
		_, err := c.BuildRecipe(context.Background(), engineRequest())
		if !errors.Is(err, ErrRecipeEngineUnavailable) {
			t.Fatalf("expected ErrRecipeEngineUnavailable, got %v", err)
		}
	})

	t.Run("unreachable engine", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		c := NewClient(srv.URL, "engine-secret")
		_, err := c.BuildRecipe(context.Background(), engineRequest())
		if !errors.Is(err, ErrRecipeEngineUnavailable) {
			t.Fatalf("expected ErrRecipeEngineUnavailable, got %v", err)
		}
	})
}
