package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"barcraft/internal/domain/entities"
	"barcraft/internal/usecase/interfaces"
)

var (
	ErrCheckoutGatewayNotConfigured = errors.New("checkout gateway not configured")
	ErrPaymentProviderUnavailable   = errors.New("payment provider unavailable")
	ErrCheckoutURLMissing           = errors.New("payment provider returned no checkout url")
)

const defaultProductName = "Bespoke cocktail"

// ICheckoutUseCase brokers external checkout sessions for orders,
// idempotently: an order with a live checkout session reuses it instead of
// presenting the customer a second payment link.

type ICheckoutUseCase interface {
	CreateCheckout(ctx context.Context, orderID string) (string, error)
}

type CheckoutConfig struct {
	SuccessURL string
	CancelURL  string
}

type CheckoutUseCase struct {
	orderRepo  interfaces.IOrderRepository
	recipeRepo interfaces.IRecipeRepository
	gateway    interfaces.ICheckoutGateway
	cfg        CheckoutConfig
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(orderRepo interfaces.IOrderRepository, recipeRepo interfaces.IRecipeRepository, gateway interfaces.ICheckoutGateway, cfg CheckoutConfig) *CheckoutUseCase {
	return &CheckoutUseCase{orderRepo: orderRepo, recipeRepo: recipeRepo, gateway: gateway, cfg: cfg}
}

// CreateCheckout returns a provider-hosted payment URL for the order.
func (u *CheckoutUseCase) CreateCheckout(ctx context.Context, orderID string) (string, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return "", ErrInvalidOrderID
	}
	if u.gateway == nil {
		return "", ErrCheckoutGatewayNotConfigured
	}

	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return "", err
	}
	if order.ID == "" {
		return "", ErrOrderNotFound
	}

	if order.CheckoutSessionID != "" {
		existing, err := u.gateway.GetSession(ctx, order.CheckoutSessionID)
		if err == nil && !existing.Expired && existing.URL != "" {
			// The provider is authoritative for the currency it charged in.
			if existing.Currency != "" && !strings.EqualFold(existing.Currency, order.Currency) {
				if _, uerr := u.orderRepo.UpdateAmount(ctx, order.ID, order.Amount, strings.ToUpper(existing.Currency)); uerr != nil {
					return "", uerr
				}
			}
			log.Printf("[checkout][usecase] reusing session order_id=%s checkout_session_id=%s", order.ID, existing.ID)
			return existing.URL, nil
		}
		log.Printf("[checkout][usecase] stored session unusable, creating new order_id=%s checkout_session_id=%s err=%v expired=%t", order.ID, order.CheckoutSessionID, err, existing.Expired)
	}

	created, err := u.gateway.CreateSession(ctx, interfaces.CheckoutSessionRequest{
		OrderID:     order.ID,
		VenueID:     order.VenueID,
		SessionID:   order.SessionID,
		AmountMinor: order.Amount.Shift(2).IntPart(),
		Currency:    order.Currency,
		ProductName: u.productName(ctx, order),
		SuccessURL:  u.cfg.SuccessURL,
		CancelURL:   u.cfg.CancelURL,
	})
	if err != nil {
		log.Printf("[checkout][usecase] create session failed order_id=%s err=%v", order.ID, err)
		return "", ErrPaymentProviderUnavailable
	}
	if created.URL == "" {
		log.Printf("[checkout][usecase] provider returned no url order_id=%s checkout_session_id=%s", order.ID, created.ID)
		return "", ErrCheckoutURLMissing
	}

	currency := order.Currency
	if created.Currency != "" {
		currency = strings.ToUpper(created.Currency)
	}
	if _, err := u.orderRepo.SetCheckoutSession(ctx, order.ID, created.ID, currency); err != nil {
		return "", err
	}

	log.Printf("[checkout][usecase] session created order_id=%s checkout_session_id=%s amount_minor=%d currency=%s", order.ID, created.ID, order.Amount.Shift(2).IntPart(), currency)
	return created.URL, nil
}

func (u *CheckoutUseCase) productName(ctx context.Context, order entities.Order) string {
	if order.RecipeID == "" || u.recipeRepo == nil {
		return defaultProductName
	}
	recipe, err := u.recipeRepo.GetByID(ctx, order.RecipeID)
	if err != nil || recipe.Name == "" {
		return defaultProductName
	}
	return recipe.Name
}
