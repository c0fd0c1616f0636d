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

func checkoutOrder() entities.Order {
	return entities.Order{
		ID:        "order-1",
		VenueID:   "venue-1",
		SessionID: "sess-1",
		RecipeID:  "recipe-1",
		Amount:    decimal.RequireFromString("12.00"),
		Currency:  "GBP",
		Status:    entities.OrderStatusCreated,
	}
}

func TestCheckoutUseCase_CreateCheckout(t *testing.T) {
	cfg := CheckoutConfig{SuccessURL: "https://bar.example/thanks", CancelURL: "https://bar.example/cancel"}

	t.Run("empty order id", func(t *testing.T) {
		uc := NewCheckoutUseCase(nil, nil, nil, cfg)
		_, err := uc.CreateCheckout(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewCheckoutUseCase(nil, nil, nil, cfg)
		_, err := uc.CreateCheckout(context.Background(), "order-1")
		if !errors.Is(err, ErrCheckoutGatewayNotConfigured) {
			t.Fatalf("expected ErrCheckoutGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockICheckoutGateway(ctrl)
		uc := NewCheckoutUseCase(orderRepo, nil, gateway, cfg)

		orderRepo.EXPECT().GetByID(gomock.Any(), "order-1").Return(entities.Order{}, nil)

		_, err := uc.CreateCheckout(context.Background(), "order-1")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("creates a session with the recipe name and minor units", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		recipeRepo := mock_interfaces.NewMockIRecipeRepository(ctrl)
		gateway := mock_interfaces.NewMockICheckoutGateway(ctrl)
		uc := NewCheckoutUseCase(orderRepo, recipeRepo, gateway, cfg)

		orderRepo.EXPECT().GetByID(gomock.Any(), "order-1").Return(checkoutOrder(), nil)
		recipeRepo.EXPECT().GetByID(gomock.Any(), "recipe-1").Return(entities.Recipe{ID: "recipe-1", Name: "Velvet Alibi"}, nil)
		gateway.EXPECT().CreateSession(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req interfaces.CheckoutSessionRequest) (interfaces.CheckoutSession, error) {
				if req.AmountMinor != 1200 || req.Currency != "GBP" {
					t.Fatalf("expected 1200 GBP minor units, got %d %s", req.AmountMinor, req.Currency)
				}
				if req.ProductName != "Velvet Alibi" {
					t.Fatalf("expected recipe name as product, got %s", req.ProductName)
				}
				if req.OrderID != "order-1" || req.SessionID != "sess-1" {
					t.Fatalf("expected order metadata, got %+v", req)
				}
				return interfaces.CheckoutSession{ID: "cs_123", URL: "https://pay.example/cs_123", Currency: "gbp"}, nil
			})
		orderRepo.EXPECT().SetCheckoutSession(gomock.Any(), "order-1", "cs_123", "GBP").Return(checkoutOrder(), nil)

		url, err := uc.CreateCheckout(context.Background(), "order-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if url != "https://pay.example/cs_123" {
			t.Fatalf("unexpected url: %s", url)
		}
	})

	t.Run("reuses a live session without creating another", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockICheckoutGateway(ctrl)
		uc := NewCheckoutUseCase(orderRepo, nil, gateway, cfg)

		order := checkoutOrder()
		order.CheckoutSessionID = "cs_123"
		orderRepo.EXPECT().GetByID(gomock.Any(), "order-1").Return(order, nil)
		gateway.EXPECT().GetSession(gomock.Any(), "cs_123").Return(interfaces.CheckoutSession{ID: "cs_123", URL: "https://pay.example/cs_123", Currency: "GBP"}, nil)

		url, err := uc.CreateCheckout(context.Background(), "order-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if url != "https://pay.example/cs_123" {
			t.Fatalf("unexpected url: %s", url)
		}
	})

	t.Run("expired session falls through to a fresh one", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		recipeRepo := mock_interfaces.NewMockIRecipeRepository(ctrl)
		gateway := mock_interfaces.NewMockICheckoutGateway(ctrl)
		uc := NewCheckoutUseCase(orderRepo, recipeRepo, gateway, cfg)

		order := checkoutOrder()
		order.CheckoutSessionID = "cs_old"
		orderRepo.EXPECT().GetByID(gomock.Any(), "order-1").Return(order, nil)
		gateway.EXPECT().GetSession(gomock.Any(), "cs_old").Return(interfaces.CheckoutSession{ID: "cs_old", URL: "https://pay.example/cs_old", Expired: true}, nil)
		recipeRepo.EXPECT().GetByID(gomock.Any(), "recipe-1").Return(entities.Recipe{ID: "recipe-1", Name: "Velvet Alibi"}, nil)
		gateway.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(interfaces.CheckoutSession{ID: "cs_new", URL: "https://pay.example/cs_new", Currency: "GBP"}, nil)
		orderRepo.EXPECT().SetCheckoutSession(gomock.Any(), "order-1", "cs_new", "GBP").Return(order, nil)

		url, err := uc.CreateCheckout(context.Background(), "order-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if url != "https://pay.example/cs_new" {
			t.Fatalf("unexpected url: %s", url)
		}
	})

	t.Run("provider failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		recipeRepo := mock_interfaces.NewMockIRecipeRepository(ctrl)
		gateway := mock_interfaces.NewMockICheckoutGateway(ctrl)
		uc := NewCheckoutUseCase(orderRepo, recipeRepo, gateway, cfg)

		orderRepo.EXPECT().GetByID(gomock.Any(), "order-1").Return(checkoutOrder(), nil)
		recipeRepo.EXPECT().GetByID(gomock.Any(), "recipe-1").Return(entities.Recipe{ID: "recipe-1", Name: "Velvet Alibi"}, nil)
		gateway.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(interfaces.CheckoutSession{}, errors.New("timeout"))

		_, err := uc.CreateCheckout(context.Background(), "order-1")
		if !errors.Is(err, ErrPaymentProviderUnavailable) {
			t.Fatalf("expected ErrPaymentProviderUnavailable, got %v", err)
		}
	})

	t.Run("provider returns no url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		recipeRepo := mock_interfaces.NewMockIRecipeRepository(ctrl)
		gateway := mock_interfaces.NewMockICheckoutGateway(ctrl)
		uc := NewCheckoutUseCase(orderRepo, recipeRepo, gateway, cfg)

		orderRepo.EXPECT().GetByID(gomock.Any(), "order-1").Return(checkoutOrder(), nil)
		recipeRepo.EXPECT().GetByID(gomock.Any(), "recipe-1").Return(entities.Recipe{ID: "recipe-1", Name: "Velvet Alibi"}, nil)
		gateway.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(interfaces.CheckoutSession{ID: "cs_123"}, nil)

		_, err := uc.CreateCheckout(context.Background(), "order-1")
		if !errors.Is(err, ErrCheckoutURLMissing) {
			t.Fatalf("expected ErrCheckoutURLMissing, got %v", err)
		}
	})

	t.Run("provider currency reconciles the stored order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockICheckoutGateway(ctrl)
		uc := NewCheckoutUseCase(orderRepo, nil, gateway, cfg)

		order := checkoutOrder()
		order.CheckoutSessionID = "cs_123"
		orderRepo.EXPECT().GetByID(gomock.Any(), "order-1").Return(order, nil)
		gateway.EXPECT().GetSession(gomock.Any(), "cs_123").Return(interfaces.CheckoutSession{ID: "cs_123", URL: "https://pay.example/cs_123", Currency: "EUR"}, nil)
		orderRepo.EXPECT().UpdateAmount(gomock.Any(), "order-1", order.Amount, "EUR").Return(order, nil)

		if _, err := uc.CreateCheckout(context.Background(), "order-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
