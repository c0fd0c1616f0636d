package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"barcraft/internal/adapter/http/handlers/mocks"
	"barcraft/internal/adapter/http/middleware"
	"barcraft/internal/domain/entities"
	"barcraft/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func withActor(actor entities.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextActorKey, actor)
	}
}

func TestOrderHandler_CreateCheckout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		checkoutUC := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewOrderHandler(mocks.NewMockIOrderUseCase(ctrl), checkoutUC)

		r := gin.New()
		r.POST("/v1/orders/:id/checkout", h.CreateCheckout)

		checkoutUC.EXPECT().CreateCheckout(gomock.Any(), "order-1").Return("https://pay.example/cs_123", nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/order-1/checkout", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["checkout_url"] != "https://pay.example/cs_123" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("provider outage maps to bad gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		checkoutUC := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewOrderHandler(mocks.NewMockIOrderUseCase(ctrl), checkoutUC)

		r := gin.New()
		r.POST("/v1/orders/:id/checkout", h.CreateCheckout)

		checkoutUC.EXPECT().CreateCheckout(gomock.Any(), "order-1").Return("", usecase.ErrPaymentProviderUnavailable)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/order-1/checkout", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("unknown order maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		checkoutUC := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewOrderHandler(mocks.NewMockIOrderUseCase(ctrl), checkoutUC)

		r := gin.New()
		r.POST("/v1/orders/:id/checkout", h.CreateCheckout)

		checkoutUC.EXPECT().CreateCheckout(gomock.Any(), "order-missing").Return("", usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/order-missing/checkout", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestOrderHandler_GetOrderRecipe(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderUC := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(orderUC, mocks.NewMockICheckoutUseCase(ctrl))

		r := gin.New()
		r.GET("/v1/orders/:id/recipe", h.GetOrderRecipe)

		order := entities.Order{ID: "order-1", VenueID: "venue-1", Amount: decimal.RequireFromString("12.00"), Currency: "GBP", Status: entities.OrderStatusPaid, RecipeID: "recipe-1"}
		recipe := entities.Recipe{ID: "recipe-1", Name: "Velvet Alibi", Spec: entities.RecipeSpec{
			Ingredients: []entities.IngredientEntry{{Name: "gin", Quantity: "50ml"}},
			Method:      "Shake hard over ice and double strain.",
			Glassware:   "coupe",
			Garnish:     "lemon twist",
		}}
		orderUC.EXPECT().GetOrderRecipe(gomock.Any(), "order-1").Return(order, recipe, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/order-1/recipe", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Order  map[string]any `json:"order"`
			Recipe map[string]any `json:"recipe"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.Order["amount"] != "12.00" || body.Recipe["name"] != "Velvet Alibi" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("missing recipe maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderUC := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(orderUC, mocks.NewMockICheckoutUseCase(ctrl))

		r := gin.New()
		r.GET("/v1/orders/:id/recipe", h.GetOrderRecipe)

		orderUC.EXPECT().GetOrderRecipe(gomock.Any(), "order-1").Return(entities.Order{}, entities.Recipe{}, usecase.ErrRecipeNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/order-1/recipe", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	staff := entities.Actor{ID: "staff-1", Role: entities.RoleStaff, VenueID: "venue-1"}

	t.Run("missing actor is unauthorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewOrderHandler(mocks.NewMockIOrderUseCase(ctrl), mocks.NewMockICheckoutUseCase(ctrl))

		r := gin.New()
		r.PATCH("/v1/orders/:id/status", h.UpdateStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/order-1/status", bytes.NewBufferString(`{"status":"fulfilled"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("missing status field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewOrderHandler(mocks.NewMockIOrderUseCase(ctrl), mocks.NewMockICheckoutUseCase(ctrl))

		r := gin.New()
		r.PATCH("/v1/orders/:id/status", withActor(staff), h.UpdateStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/order-1/status", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unpaid order maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderUC := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(orderUC, mocks.NewMockICheckoutUseCase(ctrl))

		r := gin.New()
		r.PATCH("/v1/orders/:id/status", withActor(staff), h.UpdateStatus)

		orderUC.EXPECT().UpdateStatus(gomock.Any(), staff, "order-1", "fulfilled").Return(entities.Order{}, usecase.ErrOrderNotPaid)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/order-1/status", bytes.NewBufferString(`{"status":"fulfilled"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("cross-venue staff maps to forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderUC := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(orderUC, mocks.NewMockICheckoutUseCase(ctrl))

		r := gin.New()
		r.PATCH("/v1/orders/:id/status", withActor(staff), h.UpdateStatus)

		orderUC.EXPECT().UpdateStatus(gomock.Any(), staff, "order-1", "fulfilled").Return(entities.Order{}, usecase.ErrVenueForbidden)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/order-1/status", bytes.NewBufferString(`{"status":"fulfilled"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderUC := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(orderUC, mocks.NewMockICheckoutUseCase(ctrl))

		r := gin.New()
		r.PATCH("/v1/orders/:id/status", withActor(staff), h.UpdateStatus)

		fulfilled := entities.Order{ID: "order-1", VenueID: "venue-1", Amount: decimal.RequireFromString("12.00"), Currency: "GBP", Status: entities.OrderStatusFulfilled}
		orderUC.EXPECT().UpdateStatus(gomock.Any(), staff, "order-1", "fulfilled").Return(fulfilled, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/order-1/status", bytes.NewBufferString(`{"status":"fulfilled"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["status"] != "fulfilled" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestOrderHandler_ListVenueOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	staff := entities.Actor{ID: "staff-1", Role: entities.RoleStaff, VenueID: "venue-1"}

	t.Run("forwards status and limit query params", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderUC := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(orderUC, mocks.NewMockICheckoutUseCase(ctrl))

		r := gin.New()
		r.GET("/v1/venues/:id/orders", withActor(staff), h.ListVenueOrders)

		orderUC.EXPECT().ListByVenue(gomock.Any(), staff, "venue-1", "paid", 5).Return([]entities.Order{
			{ID: "order-1", VenueID: "venue-1", Amount: decimal.RequireFromString("12.00"), Currency: "GBP", Status: entities.OrderStatusPaid},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/venues/venue-1/orders?status=paid&limit=5", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(body) != 1 || body[0]["order_id"] != "order-1" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("invalid filter maps to bad request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderUC := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(orderUC, mocks.NewMockICheckoutUseCase(ctrl))

		r := gin.New()
		r.GET("/v1/venues/:id/orders", withActor(staff), h.ListVenueOrders)

		orderUC.EXPECT().ListByVenue(gomock.Any(), staff, "venue-1", "delivered", 0).Return(nil, usecase.ErrInvalidStatusFilter)

		req := httptest.NewRequest(http.MethodGet, "/v1/venues/venue-1/orders?status=delivered", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestOrderHandler_ListPayments(t *testing.T) {
	gin.SetMode(gin.TestMode)
	staff := entities.Actor{ID: "staff-1", Role: entities.RoleStaff, VenueID: "venue-1"}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderUC := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(orderUC, mocks.NewMockICheckoutUseCase(ctrl))

		r := gin.New()
		r.GET("/v1/orders/:id/payments", withActor(staff), h.ListPayments)

		orderUC.EXPECT().ListPayments(gomock.Any(), staff, "order-1").Return([]entities.Payment{
			{IntentID: "pi_1", OrderID: "order-1", Amount: decimal.RequireFromString("12.00"), Currency: "GBP", Status: "paid"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/order-1/payments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(body) != 1 || body[0]["intent_id"] != "pi_1" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}
