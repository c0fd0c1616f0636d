package usecase

import (
	"context"
	"errors"
	"testing"

	"barcraft/internal/domain/entities"
	"barcraft/internal/usecase/interfaces"
	mock_interfaces "barcraft/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestQuizUseCase_RecordAnswers(t *testing.T) {
	answers := map[string]entities.AnswerValue{"q-spirit": {Choice: "gin"}}

	t.Run("empty session id", func(t *testing.T) {
		uc := NewQuizUseCase(nil, nil, nil, nil, nil)
		_, err := uc.RecordAnswers(context.Background(), "venue-1", "  ", answers)
		if !errors.Is(err, ErrInvalidSessionID) {
			t.Fatalf("expected ErrInvalidSessionID, got %v", err)
		}
	})

	t.Run("empty answers", func(t *testing.T) {
		uc := NewQuizUseCase(nil, nil, nil, nil, nil)
		_, err := uc.RecordAnswers(context.Background(), "venue-1", "sess-1", nil)
		if !errors.Is(err, ErrInvalidAnswers) {
			t.Fatalf("expected ErrInvalidAnswers, got %v", err)
		}
	})

	t.Run("new session requires venue id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessionRepo := mock_interfaces.NewMockISessionRepository(ctrl)
		uc := NewQuizUseCase(sessionRepo, nil, nil, nil, nil)

		sessionRepo.EXPECT().GetByID(gomock.Any(), "sess-1").Return(entities.Session{}, nil)

		_, err := uc.RecordAnswers(context.Background(), "  ", "sess-1", answers)
		if !errors.Is(err, ErrInvalidVenueID) {
			t.Fatalf("expected ErrInvalidVenueID, got %v", err)
		}
	})

	t.Run("first contact creates the session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessionRepo := mock_interfaces.NewMockISessionRepository(ctrl)
		uc := NewQuizUseCase(sessionRepo, nil, nil, nil, nil)

		sessionRepo.EXPECT().GetByID(gomock.Any(), "sess-1").Return(entities.Session{}, nil)
		sessionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Session) (entities.Session, error) {
				if s.ID != "sess-1" || s.VenueID != "venue-1" || s.Status != entities.SessionStatusInProgress {
					t.Fatalf("unexpected session passed to Create: %+v", s)
				}
				return s, nil
			})

		sess, err := uc.RecordAnswers(context.Background(), "venue-1", "sess-1", answers)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sess.Answers["q-spirit"].Choice != "gin" {
			t.Fatalf("expected answers to be stored, got %+v", sess.Answers)
		}
	})

	t.Run("later batches merge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessionRepo := mock_interfaces.NewMockISessionRepository(ctrl)
		uc := NewQuizUseCase(sessionRepo, nil, nil, nil, nil)

		sessionRepo.EXPECT().GetByID(gomock.Any(), "sess-1").Return(entities.Session{ID: "sess-1", Status: entities.SessionStatusInProgress}, nil)
		sessionRepo.EXPECT().MergeAnswers(gomock.Any(), "sess-1", answers).Return(entities.Session{ID: "sess-1", Answers: answers}, nil)

		if _, err := uc.RecordAnswers(context.Background(), "", "sess-1", answers); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("submitted session rejects new answers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessionRepo := mock_interfaces.NewMockISessionRepository(ctrl)
		uc := NewQuizUseCase(sessionRepo, nil, nil, nil, nil)

		sessionRepo.EXPECT().GetByID(gomock.Any(), "sess-1").Return(entities.Session{ID: "sess-1", Status: entities.SessionStatusSubmitted}, nil)

		_, err := uc.RecordAnswers(context.Background(), "", "sess-1", answers)
		if !errors.Is(err, ErrSessionAlreadySubmitted) {
			t.Fatalf("expected ErrSessionAlreadySubmitted, got %v", err)
		}
	})
}

func TestQuizUseCase_Submit(t *testing.T) {
	session := entities.Session{
		ID:      "sess-1",
		VenueID: "venue-1",
		Status:  entities.SessionStatusInProgress,
		Answers: map[string]entities.AnswerValue{"q-spirit": {Choice: "gin"}},
	}

	t.Run("empty session id", func(t *testing.T) {
		uc := NewQuizUseCase(nil, nil, nil, nil, nil)
		_, err := uc.Submit(context.Background(), "  ", nil)
		if !errors.Is(err, ErrInvalidSessionID) {
			t.Fatalf("expected ErrInvalidSessionID, got %v", err)
		}
	})

	t.Run("session not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessionRepo := mock_interfaces.NewMockISessionRepository(ctrl)
		uc := NewQuizUseCase(sessionRepo, nil, nil, nil, nil)

		sessionRepo.EXPECT().GetByID(gomock.Any(), "sess-1").Return(entities.Session{}, nil)

		_, err := uc.Submit(context.Background(), "sess-1", nil)
		if !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("idempotent resubmission returns existing order without engine call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessionRepo := mock_interfaces.NewMockISessionRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		engine := mock_interfaces.NewMockIRecipeEngine(ctrl)
		uc := NewQuizUseCase(sessionRepo, orderRepo, nil, nil, engine)

		sessionRepo.EXPECT().GetByID(gomock.Any(), "sess-1").Return(session, nil)
		orderRepo.EXPECT().GetBySessionID(gomock.Any(), "sess-1").Return(entities.Order{ID: "order-1"}, nil)

		orderID, err := uc.Submit(context.Background(), "sess-1", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if orderID != "order-1" {
			t.Fatalf("expected order-1, got %s", orderID)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessionRepo := mock_interfaces.NewMockISessionRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		recipeRepo := mock_interfaces.NewMockIRecipeRepository(ctrl)
		venueRepo := mock_interfaces.NewMockIVenueRepository(ctrl)
		engine := mock_interfaces.NewMockIRecipeEngine(ctrl)
		uc := NewQuizUseCase(sessionRepo, orderRepo, recipeRepo, venueRepo, engine)

		sessionRepo.EXPECT().GetByID(gomock.Any(), "sess-1").Return(session, nil)
		orderRepo.EXPECT().GetBySessionID(gomock.Any(), "sess-1").Return(entities.Order{}, nil)
		venueRepo.EXPECT().GetByID(gomock.Any(), "venue-1").Return(entities.Venue{
			ID:         "venue-1",
			DrinkPrice: decimal.RequireFromString("14.50"),
			Currency:   "gbp",
		}, nil)

		var createdID string
		orderRepo.EXPECT().CreateForSession(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.SessionID != "sess-1" || o.VenueID != "venue-1" {
					t.Fatalf("unexpected order passed to CreateForSession: %+v", o)
				}
				if o.Status != entities.OrderStatusCreated {
					t.Fatalf("expected created status, got %s", o.Status)
				}
				if !o.Amount.Equal(decimal.RequireFromString("14.50")) || o.Currency != "GBP" {
					t.Fatalf("expected venue price 14.50 GBP, got %s %s", o.Amount, o.Currency)
				}
				createdID = o.ID
				return o, nil
			})

		engine.EXPECT().BuildRecipe(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req interfaces.RecipeEngineRequest) (interfaces.RecipeEngineResult, error) {
				if req.SessionID != "sess-1" || req.VenueID != "venue-1" {
					t.Fatalf("unexpected engine request: %+v", req)
				}
				if req.Seed != sessionSeed("sess-1") {
					t.Fatalf("expected deterministic seed, got %d", req.Seed)
				}
				return interfaces.RecipeEngineResult{Name: "Velvet Alibi"}, nil
			})

		recipeRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.Recipe) (entities.Recipe, error) {
				if r.SessionID != "sess-1" || r.Name != "Velvet Alibi" {
					t.Fatalf("unexpected recipe passed to Create: %+v", r)
				}
				return r, nil
			})
		orderRepo.EXPECT().AttachRecipe(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, orderID, recipeID string) (entities.Order, error) {
				if orderID != createdID {
					t.Fatalf("expected attach on %s, got %s", createdID, orderID)
				}
				return entities.Order{ID: orderID, RecipeID: recipeID}, nil
			})
		sessionRepo.EXPECT().UpdateStatus(gomock.Any(), "sess-1", entities.SessionStatusInProgress, entities.SessionStatusSubmitted).Return(session, nil)

		orderID, err := uc.Submit(context.Background(), "sess-1", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if orderID != createdID {
			t.Fatalf("expected %s, got %s", createdID, orderID)
		}
	})

	t.Run("engine failure compensates the provisional order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessionRepo := mock_interfaces.NewMockISessionRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		recipeRepo := mock_interfaces.NewMockIRecipeRepository(ctrl)
		venueRepo := mock_interfaces.NewMockIVenueRepository(ctrl)
		engine := mock_interfaces.NewMockIRecipeEngine(ctrl)
		uc := NewQuizUseCase(sessionRepo, orderRepo, recipeRepo, venueRepo, engine)

		sessionRepo.EXPECT().GetByID(gomock.Any(), "sess-1").Return(session, nil)
		orderRepo.EXPECT().GetBySessionID(gomock.Any(), "sess-1").Return(entities.Order{}, nil)
		venueRepo.EXPECT().GetByID(gomock.Any(), "venue-1").Return(entities.Venue{}, nil)

		var createdID string
		orderRepo.EXPECT().CreateForSession(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				createdID = o.ID
				return o, nil
			})
		engine.EXPECT().BuildRecipe(gomock.Any(), gomock.Any()).Return(interfaces.RecipeEngineResult{}, errors.New("engine down"))

		orderRepo.EXPECT().DeleteWithSessionClaim(gomock.Any(), gomock.Any(), "sess-1").DoAndReturn(
			func(_ context.Context, orderID, _ string) error {
				if orderID != createdID {
					t.Fatalf("expected compensation delete on %s, got %s", createdID, orderID)
				}
				return nil
			})
		sessionRepo.EXPECT().UpdateStatus(gomock.Any(), "sess-1", entities.SessionStatusSubmitted, entities.SessionStatusInProgress).Return(entities.Session{}, nil)

		_, err := uc.Submit(context.Background(), "sess-1", nil)
		if !errors.Is(err, ErrRecipeGenerationFailed) {
			t.Fatalf("expected ErrRecipeGenerationFailed, got %v", err)
		}
	})

	t.Run("concurrent submit resolves to the winner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessionRepo := mock_interfaces.NewMockISessionRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		recipeRepo := mock_interfaces.NewMockIRecipeRepository(ctrl)
		venueRepo := mock_interfaces.NewMockIVenueRepository(ctrl)
		engine := mock_interfaces.NewMockIRecipeEngine(ctrl)
		uc := NewQuizUseCase(sessionRepo, orderRepo, recipeRepo, venueRepo, engine)

		sessionRepo.EXPECT().GetByID(gomock.Any(), "sess-1").Return(session, nil)
		orderRepo.EXPECT().GetBySessionID(gomock.Any(), "sess-1").Return(entities.Order{}, nil)
		venueRepo.EXPECT().GetByID(gomock.Any(), "venue-1").Return(entities.Venue{}, nil)
		orderRepo.EXPECT().CreateForSession(gomock.Any(), gomock.Any()).Return(entities.Order{}, interfaces.ErrSessionOrderExists)
		orderRepo.EXPECT().GetBySessionID(gomock.Any(), "sess-1").Return(entities.Order{ID: "order-winner"}, nil)

		orderID, err := uc.Submit(context.Background(), "sess-1", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if orderID != "order-winner" {
			t.Fatalf("expected order-winner, got %s", orderID)
		}
	})

	t.Run("final answers merge before generation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessionRepo := mock_interfaces.NewMockISessionRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		recipeRepo := mock_interfaces.NewMockIRecipeRepository(ctrl)
		venueRepo := mock_interfaces.NewMockIVenueRepository(ctrl)
		engine := mock_interfaces.NewMockIRecipeEngine(ctrl)
		uc := NewQuizUseCase(sessionRepo, orderRepo, recipeRepo, venueRepo, engine)

		final := map[string]entities.AnswerValue{"q-sweetness": {Choice: "dry"}}
		merged := entities.Session{
			ID:      "sess-1",
			VenueID: "venue-1",
			Status:  entities.SessionStatusInProgress,
			Answers: map[string]entities.AnswerValue{
				"q-spirit":    {Choice: "gin"},
				"q-sweetness": {Choice: "dry"},
			},
		}

		sessionRepo.EXPECT().GetByID(gomock.Any(), "sess-1").Return(session, nil)
		orderRepo.EXPECT().GetBySessionID(gomock.Any(), "sess-1").Return(entities.Order{}, nil)
		sessionRepo.EXPECT().MergeAnswers(gomock.Any(), "sess-1", final).Return(merged, nil)
		venueRepo.EXPECT().GetByID(gomock.Any(), "venue-1").Return(entities.Venue{}, nil)
		orderRepo.EXPECT().CreateForSession(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil })
		engine.EXPECT().BuildRecipe(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req interfaces.RecipeEngineRequest) (interfaces.RecipeEngineResult, error) {
				if len(req.Answers) != 2 {
					t.Fatalf("expected merged answers in engine request, got %+v", req.Answers)
				}
				return interfaces.RecipeEngineResult{Name: "Dry Run"}, nil
			})
		recipeRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.Recipe) (entities.Recipe, error) { return r, nil })
		orderRepo.EXPECT().AttachRecipe(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Order{ID: "order-1"}, nil)
		sessionRepo.EXPECT().UpdateStatus(gomock.Any(), "sess-1", entities.SessionStatusInProgress, entities.SessionStatusSubmitted).Return(merged, nil)

		if _, err := uc.Submit(context.Background(), "sess-1", final); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
