package usecase

import (
	"context"
	"errors"
	"hash/fnv"
	"log"
	"os"
	"strings"
	"time"

	"barcraft/internal/domain/entities"
	"barcraft/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrSessionNotFound         = errors.New("session not found")
	ErrSessionAlreadySubmitted = errors.New("session already submitted")
	ErrInvalidSessionID        = errors.New("invalid session id")
	ErrInvalidVenueID          = errors.New("invalid venue_id")
	ErrInvalidAnswers          = errors.New("invalid answers")
	ErrRecipeGenerationFailed  = errors.New("recipe generation failed")
)

// defaultIngredientWhitelist is used when a venue has not configured its own
// inventory list.
var defaultIngredientWhitelist = []string{
	"gin", "vodka", "white rum", "dark rum", "tequila", "bourbon",
	"triple sec", "sugar syrup", "lime juice", "lemon juice",
	"orange juice", "cranberry juice", "ginger beer", "soda water",
	"angostura bitters", "mint", "egg white",
}

// IQuizUseCase encapsulates the quiz-to-order workflow.
//
// Submit is the core orchestration: it sequences recipe generation, recipe +
// order persistence and exposes exactly one order per session, compensating
// (delete the provisional order, restore the session status) when generation
// fails downstream of the order insert.

type IQuizUseCase interface {
	RecordAnswers(ctx context.Context, venueID, sessionID string, answers map[string]entities.AnswerValue) (entities.Session, error)
	Submit(ctx context.Context, sessionID string, finalAnswers map[string]entities.AnswerValue) (string, error)
}

type QuizUseCase struct {
	sessionRepo interfaces.ISessionRepository
	orderRepo   interfaces.IOrderRepository
	recipeRepo  interfaces.IRecipeRepository
	venueRepo   interfaces.IVenueRepository
	engine      interfaces.IRecipeEngine
}

var _ IQuizUseCase = (*QuizUseCase)(nil)

func NewQuizUseCase(
	sessionRepo interfaces.ISessionRepository,
	orderRepo interfaces.IOrderRepository,
	recipeRepo interfaces.IRecipeRepository,
	venueRepo interfaces.IVenueRepository,
	engine interfaces.IRecipeEngine,
) *QuizUseCase {
	return &QuizUseCase{
		sessionRepo: sessionRepo,
		orderRepo:   orderRepo,
		recipeRepo:  recipeRepo,
		venueRepo:   venueRepo,
		engine:      engine,
	}
}

// RecordAnswers merges a batch of answers into the session, creating the
// session on the first write. Merge is by question id, last write wins.
func (u *QuizUseCase) RecordAnswers(ctx context.Context, venueID, sessionID string, answers map[string]entities.AnswerValue) (entities.Session, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.Session{}, ErrInvalidSessionID
	}
	if len(answers) == 0 {
		return entities.Session{}, ErrInvalidAnswers
	}

	sess, err := u.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return entities.Session{}, err
	}
	if sess.ID == "" {
		venueID = strings.TrimSpace(venueID)
		if venueID == "" {
			return entities.Session{}, ErrInvalidVenueID
		}
		now := time.Now().UTC()
		log.Printf("[quiz][usecase] creating session session_id=%s venue_id=%s", sessionID, venueID)
		return u.sessionRepo.Create(ctx, entities.Session{
			ID:        sessionID,
			VenueID:   venueID,
			Status:    entities.SessionStatusInProgress,
			Answers:   answers,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	if sess.Status == entities.SessionStatusSubmitted {
		return entities.Session{}, ErrSessionAlreadySubmitted
	}
	return u.sessionRepo.MergeAnswers(ctx, sessionID, answers)
}

// Submit runs the quiz-to-order workflow and returns the order id.
//
// Resubmission is idempotent: if an order already exists for the session the
// existing id is returned without a second engine call. A duplicate insert
// that slips past the fast path is rejected by the storage guard and resolved
// the same way.
func (u *QuizUseCase) Submit(ctx context.Context, sessionID string, finalAnswers map[string]entities.AnswerValue) (string, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return "", ErrInvalidSessionID
	}
	log.Printf("[quiz][usecase] submit start session_id=%s final_answers=%d", sessionID, len(finalAnswers))

	sess, err := u.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if sess.ID == "" {
		return "", ErrSessionNotFound
	}

	if existing, err := u.orderRepo.GetBySessionID(ctx, sessionID); err != nil {
		return "", err
	} else if existing.ID != "" {
		log.Printf("[quiz][usecase] idempotent resubmission session_id=%s order_id=%s", sessionID, existing.ID)
		return existing.ID, nil
	}

	if len(finalAnswers) > 0 {
		sess, err = u.sessionRepo.MergeAnswers(ctx, sessionID, finalAnswers)
		if err != nil {
			return "", err
		}
	}

	venue, err := u.venueRepo.GetByID(ctx, sess.VenueID)
	if err != nil {
		return "", err
	}
	amount, currency := resolveDrinkPrice(venue)
	whitelist := venue.Ingredients
	if len(whitelist) == 0 {
		whitelist = defaultIngredientWhitelist
	}

	order := entities.Order{
		ID:        uuid.NewString(),
		VenueID:   sess.VenueID,
		SessionID: sessionID,
		Amount:    amount,
		Currency:  currency,
		Status:    entities.OrderStatusCreated,
		CreatedAt: time.Now().UTC(),
	}
	created, err := u.orderRepo.CreateForSession(ctx, order)
	if errors.Is(err, interfaces.ErrSessionOrderExists) {
		// Lost a race with a concurrent submit; the storage guard is the
		// authoritative check, so re-read the winner.
		existing, rerr := u.orderRepo.GetBySessionID(ctx, sessionID)
		if rerr != nil {
			return "", rerr
		}
		if existing.ID != "" {
			log.Printf("[quiz][usecase] concurrent submit resolved session_id=%s order_id=%s", sessionID, existing.ID)
			return existing.ID, nil
		}
		return "", err
	}
	if err != nil {
		return "", err
	}

	// From here every failure must tear the provisional order down so no
	// payable order without a recipe stays visible.
	compensate := func() {
		cctx := context.WithoutCancel(ctx)
		if derr := u.orderRepo.DeleteWithSessionClaim(cctx, created.ID, sessionID); derr != nil {
			log.Printf("[quiz][usecase] compensation delete failed session_id=%s order_id=%s err=%v", sessionID, created.ID, derr)
		}
		if _, serr := u.sessionRepo.UpdateStatus(cctx, sessionID, entities.SessionStatusSubmitted, entities.SessionStatusInProgress); serr != nil {
			log.Printf("[quiz][usecase] compensation status revert failed session_id=%s err=%v", sessionID, serr)
		}
	}

	doc, err := u.engine.BuildRecipe(ctx, interfaces.RecipeEngineRequest{
		VenueID:             sess.VenueID,
		SessionID:           sessionID,
		Answers:             sess.Answers,
		IngredientWhitelist: whitelist,
		Seed:                sessionSeed(sessionID),
	})
	if err != nil {
		log.Printf("[quiz][usecase] recipe engine failed session_id=%s err=%v", sessionID, err)
		compensate()
		return "", ErrRecipeGenerationFailed
	}

	recipe := entities.Recipe{
		ID:          uuid.NewString(),
		SessionID:   sessionID,
		Name:        doc.Name,
		Description: doc.Description,
		Spec:        doc.Spec,
		Raw:         doc.Raw,
		CreatedAt:   time.Now().UTC(),
	}
	if _, err := u.recipeRepo.Create(ctx, recipe); err != nil {
		log.Printf("[quiz][usecase] recipe persist failed session_id=%s err=%v", sessionID, err)
		compensate()
		return "", err
	}
	if _, err := u.orderRepo.AttachRecipe(ctx, created.ID, recipe.ID); err != nil {
		log.Printf("[quiz][usecase] recipe attach failed session_id=%s order_id=%s err=%v", sessionID, created.ID, err)
		compensate()
		return "", err
	}
	if _, err := u.sessionRepo.UpdateStatus(ctx, sessionID, entities.SessionStatusInProgress, entities.SessionStatusSubmitted); err != nil {
		log.Printf("[quiz][usecase] session status flip failed session_id=%s err=%v", sessionID, err)
		compensate()
		return "", err
	}

	log.Printf("[quiz][usecase] submit success session_id=%s order_id=%s recipe_id=%s amount=%s %s", sessionID, created.ID, recipe.ID, amount.StringFixed(2), currency)
	return created.ID, nil
}

// sessionSeed derives a deterministic generation seed from the session id so
// repeated generation for the same session is reproducible.
func sessionSeed(sessionID string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(sessionID))
	return h.Sum32()
}

func resolveDrinkPrice(venue entities.Venue) (decimal.Decimal, string) {
	amount := venue.DrinkPrice
	if amount.LessThanOrEqual(decimal.Zero) {
		amount = defaultDrinkPrice()
	}
	currency := strings.ToUpper(strings.TrimSpace(venue.Currency))
	if currency == "" {
		currency = strings.ToUpper(getenvDefault("DEFAULT_CURRENCY", "GBP"))
	}
	return amount, currency
}

func defaultDrinkPrice() decimal.Decimal {
	raw := getenvDefault("DEFAULT_DRINK_PRICE", "12.00")
	price, err := decimal.NewFromString(raw)
	if err != nil || price.LessThanOrEqual(decimal.Zero) {
		log.Printf("[quiz][usecase] invalid DEFAULT_DRINK_PRICE=%q, using 12.00", raw)
		return decimal.NewFromInt(12)
	}
	return price
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
