package recipeengine

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"sort"
	"time"

	"barcraft/internal/domain/entities"
	"barcraft/internal/usecase/interfaces"
	"barcraft/pkg"

	"github.com/golang-jwt/jwt/v5"
)

// ErrRecipeEngineUnavailable is the single error surfaced for transport
// failures, non-success responses and malformed bodies. The quiz orchestrator
// owns compensation; this client performs no retries.
var ErrRecipeEngineUnavailable = errors.New("recipe engine unavailable")

const (
	defaultTimeout = 10 * time.Second
	tokenTTL       = 5 * time.Minute
	tokenIssuer    = "barcraft-api"
	tokenAudience  = "recipe-engine"
)

// Client calls the external recipe-generation service: one POST /generate per
// BuildRecipe, authenticated with a short-lived signed token.

type Client struct {
	baseURL       string
	signingSecret []byte
	httpClient    *http.Client
}

var _ interfaces.IRecipeEngine = (*Client)(nil)

func NewClient(baseURL, signingSecret string) *Client {
	return &Client{
		baseURL:       baseURL,
		signingSecret: []byte(signingSecret),
		httpClient:    &http.Client{Timeout: defaultTimeout},
	}
}

type generateAnswer struct {
	QuestionID string `json:"question_id"`
	Value      string `json:"value"`
}

type generateRequest struct {
	VenueID             string           `json:"venue_id"`
	SessionID           string           `json:"session_id"`
	Answers             []generateAnswer `json:"answers"`
	IngredientWhitelist []string         `json:"ingredient_whitelist"`
	Seed                uint32           `json:"seed"`
}

// wireIngredient tolerates both `{"name":...,"quantity":...}` objects and
// bare strings, which older engine versions emit.
type wireIngredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
}

func (w *wireIngredient) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		w.Name = s
		return nil
	}
	type plain wireIngredient
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*w = wireIngredient(p)
	return nil
}

type generateResponse struct {
	CocktailName string           `json:"cocktail_name"`
	Description  string           `json:"description"`
	Ingredients  []wireIngredient `json:"ingredients"`
	Method       string           `json:"method"`
	Glassware    string           `json:"glassware"`
	Garnish      string           `json:"garnish"`
	Warnings     []string         `json:"warnings"`
	Notes        string           `json:"notes"`
}

func (c *Client) BuildRecipe(ctx context.Context, req interfaces.RecipeEngineRequest) (interfaces.RecipeEngineResult, error) {
	token, err := c.signToken(req.SessionID)
	if err != nil {
		return interfaces.RecipeEngineResult{}, err
	}

	body, err := json.Marshal(generateRequest{
		VenueID:             req.VenueID,
		SessionID:           req.SessionID,
		Answers:             flattenAnswers(req.Answers),
		IngredientWhitelist: req.IngredientWhitelist,
		Seed:                req.Seed,
	})
	if err != nil {
		return interfaces.RecipeEngineResult{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/generate", bytes.NewReader(body))
	if err != nil {
		return interfaces.RecipeEngineResult{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+token)
	if rid := pkg.RequestIDFromContext(ctx); rid != "" {
		httpReq.Header.Set(pkg.HeaderRequestID, rid)
	}

	log.Printf("[recipe][client] generate start session_id=%s answers=%d whitelist=%d seed=%d", req.SessionID, len(req.Answers), len(req.IngredientWhitelist), req.Seed)
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		log.Printf("[recipe][client] transport failure session_id=%s err=%v", req.SessionID, err)
		return interfaces.RecipeEngineResult{}, ErrRecipeEngineUnavailable
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[recipe][client] body read failure session_id=%s err=%v", req.SessionID, err)
		return interfaces.RecipeEngineResult{}, ErrRecipeEngineUnavailable
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		log.Printf("[recipe][client] non-success response session_id=%s status=%d body_len=%d", req.SessionID, resp.StatusCode, len(raw))
		return interfaces.RecipeEngineResult{}, ErrRecipeEngineUnavailable
	}

	var doc generateResponse
	if err := json.Unmarshal(raw, &doc); err != nil {
		log.Printf("[recipe][client] malformed response session_id=%s err=%v", req.SessionID, err)
		return interfaces.RecipeEngineResult{}, ErrRecipeEngineUnavailable
	}
	if len(doc.Ingredients) == 0 || doc.Method == "" {
		log.Printf("[recipe][client] incomplete recipe document session_id=%s ingredients=%d", req.SessionID, len(doc.Ingredients))
		return interfaces.RecipeEngineResult{}, ErrRecipeEngineUnavailable
	}

	name := doc.CocktailName
	if name == "" {
		name = "Bespoke Cocktail"
	}
	ingredients := make([]entities.IngredientEntry, 0, len(doc.Ingredients))
	for _, ing := range doc.Ingredients {
		ingredients = append(ingredients, entities.IngredientEntry{Name: ing.Name, Quantity: ing.Quantity})
	}

	log.Printf("[recipe][client] generate success session_id=%s cocktail=%q", req.SessionID, name)
	return interfaces.RecipeEngineResult{
		Name:        name,
		Description: doc.Description,
		Spec: entities.RecipeSpec{
			Ingredients: ingredients,
			Method:      doc.Method,
			Glassware:   doc.Glassware,
			Garnish:     doc.Garnish,
			Warnings:    doc.Warnings,
			Notes:       doc.Notes,
		},
		Raw: raw,
	}, nil
}

func (c *Client) signToken(sessionID string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   sessionID,
		Issuer:    tokenIssuer,
		Audience:  jwt.ClaimStrings{tokenAudience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.signingSecret)
}

// flattenAnswers produces a stable wire ordering so identical sessions send
// identical payloads.
func flattenAnswers(answers map[string]entities.AnswerValue) []generateAnswer {
	out := make([]generateAnswer, 0, len(answers))
	for qid, v := range answers {
		out = append(out, generateAnswer{QuestionID: qid, Value: v.Choice})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].QuestionID < out[j].QuestionID })
	return out
}
