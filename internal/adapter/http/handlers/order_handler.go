package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	request "barcraft/internal/adapter/http/dto/request"
	response "barcraft/internal/adapter/http/dto/response"
	"barcraft/internal/adapter/http/middleware"
	"barcraft/internal/usecase"
	"barcraft/pkg"

	"github.com/gin-gonic/gin"
)

var errMissingActor = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)

// OrderHandler exposes the order lifecycle: checkout, the customer receipt
// view and the staff venue console.

type OrderHandler struct {
	orderUseCase    usecase.IOrderUseCase
	checkoutUseCase usecase.ICheckoutUseCase
}

func NewOrderHandler(orderUC usecase.IOrderUseCase, checkoutUC usecase.ICheckoutUseCase) *OrderHandler {
	return &OrderHandler{orderUseCase: orderUC, checkoutUseCase: checkoutUC}
}

// CreateCheckout returns a provider-hosted payment URL for the order.
// Calling it again before payment returns the same live URL.
func (h *OrderHandler) CreateCheckout(c *gin.Context) {
	orderID := c.Param("id")
	log.Printf("[order][handler] checkout start order_id=%s", orderID)

	url, err := h.checkoutUseCase.CreateCheckout(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[order][handler] checkout failed order_id=%s err=%v", orderID, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[order][handler] checkout success order_id=%s", orderID)

	c.JSON(http.StatusOK, response.CheckoutResponse{CheckoutURL: url})
}

// GetOrderRecipe is the anonymous receipt view: the order plus its recipe.
func (h *OrderHandler) GetOrderRecipe(c *gin.Context) {
	orderID := c.Param("id")

	order, recipe, err := h.orderUseCase.GetOrderRecipe(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[order][handler] get-recipe failed order_id=%s err=%v", orderID, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrderRecipe(order, recipe))
}

// ListVenueOrders returns the venue's most recent orders, newest first.
// Accepts optional ?status= and ?limit= query parameters.
func (h *OrderHandler) ListVenueOrders(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}
	venueID := c.Param("id")
	statusFilter := c.Query("status")
	limit, _ := strconv.Atoi(c.Query("limit"))

	orders, err := h.orderUseCase.ListByVenue(c.Request.Context(), actor, venueID, statusFilter, limit)
	if err != nil {
		log.Printf("[order][handler] list-venue failed venue_id=%s actor=%s err=%v", venueID, actor.ID, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// UpdateStatus applies a staff/admin transition to the order.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}
	orderID := c.Param("id")

	var payload request.OrderStatusUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[order][handler] update-status invalid payload order_id=%s err=%v", orderID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[order][handler] update-status start order_id=%s status=%s actor=%s", orderID, payload.Status, actor.ID)

	order, err := h.orderUseCase.UpdateStatus(c.Request.Context(), actor, orderID, payload.Status)
	if err != nil {
		log.Printf("[order][handler] update-status failed order_id=%s err=%v", orderID, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[order][handler] update-status success order_id=%s status=%s", order.ID, order.Status)

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// ListPayments returns the payment ledger rows recorded for an order.
func (h *OrderHandler) ListPayments(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}
	orderID := c.Param("id")

	payments, err := h.orderUseCase.ListPayments(c.Request.Context(), actor, orderID)
	if err != nil {
		log.Printf("[order][handler] list-payments failed order_id=%s err=%v", orderID, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayments(payments))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidVenueID),
		errors.Is(err, usecase.ErrInvalidStatusValue), errors.Is(err, usecase.ErrInvalidStatusFilter):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRecipeNotFound):
		return pkg.NewDomainErrorSimple("RECIPE_NOT_FOUND", "Recipe not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVenueForbidden), errors.Is(err, usecase.ErrCancelRequiresAdmin):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Actor may not perform this action", http.StatusForbidden)
	case errors.Is(err, usecase.ErrOrderNotPaid):
		return pkg.NewDomainErrorSimple("ORDER_NOT_PAID", "Only paid orders can be fulfilled", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderNotCancellable):
		return pkg.NewDomainErrorSimple("ORDER_NOT_CANCELLABLE", "Order can no longer be cancelled", http.StatusConflict)
	case errors.Is(err, usecase.ErrUnsupportedTransition):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_TRANSITION", "Unsupported status transition", http.StatusConflict)
	case errors.Is(err, usecase.ErrCheckoutGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("CHECKOUT_NOT_CONFIGURED", "Checkout is not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPaymentProviderUnavailable), errors.Is(err, usecase.ErrCheckoutURLMissing):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider is temporarily unavailable", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
