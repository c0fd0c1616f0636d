package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"

	"barcraft/internal/domain/entities"
	"barcraft/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

var (
	ErrInvalidWebhookSignature = errors.New("invalid webhook signature")
	ErrInvalidWebhookPayload   = errors.New("invalid webhook payload")
	ErrWebhookSecretMissing    = errors.New("webhook secret not configured")
)

// IWebhookUseCase reconciles asynchronous payment-provider events against
// order state. Deliveries are at-least-once: every step after signature
// verification is idempotent.

type IWebhookUseCase interface {
	HandleEvent(ctx context.Context, payload []byte, sigHeader string) error
}

type WebhookUseCase struct {
	orderRepo   interfaces.IOrderRepository
	paymentRepo interfaces.IPaymentRepository
	secret      string
	environment string
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

func NewWebhookUseCase(orderRepo interfaces.IOrderRepository, paymentRepo interfaces.IPaymentRepository, secret, environment string) *WebhookUseCase {
	return &WebhookUseCase{orderRepo: orderRepo, paymentRepo: paymentRepo, secret: secret, environment: environment}
}

// HandleEvent verifies and applies one provider event. Errors after a
// successful signature check surface to the handler as 5xx so the provider
// retries; events we cannot act on (foreign metadata, vanished order) are
// acknowledged without action so retries stop.
func (u *WebhookUseCase) HandleEvent(ctx context.Context, payload []byte, sigHeader string) error {
	event, err := u.verifyEvent(payload, sigHeader)
	if err != nil {
		return err
	}

	if event.Type != stripe.EventTypeCheckoutSessionCompleted {
		log.Printf("[webhook][usecase] ignoring event id=%s type=%s", event.ID, event.Type)
		return nil
	}

	var cs stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &cs); err != nil {
		log.Printf("[webhook][usecase] event object unmarshal failed id=%s err=%v", event.ID, err)
		return err
	}

	orderID := cs.Metadata["order_id"]
	if orderID == "" {
		log.Printf("[webhook][usecase] no order_id in session metadata, acknowledging id=%s checkout_session_id=%s", event.ID, cs.ID)
		return nil
	}

	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.ID == "" {
		log.Printf("[webhook][usecase] order gone, acknowledging id=%s order_id=%s", event.ID, orderID)
		return nil
	}

	amount := order.Amount
	if cs.AmountTotal > 0 {
		amount = decimal.New(cs.AmountTotal, -2)
	}
	currency := order.Currency
	if cs.Currency != "" {
		currency = strings.ToUpper(string(cs.Currency))
	}
	status := "completed"
	if cs.PaymentStatus != "" {
		status = string(cs.PaymentStatus)
	}
	intentID := event.ID
	if cs.PaymentIntent != nil && cs.PaymentIntent.ID != "" {
		intentID = cs.PaymentIntent.ID
	}

	if _, err := u.paymentRepo.Upsert(ctx, entities.Payment{
		IntentID: intentID,
		OrderID:  order.ID,
		Amount:   amount,
		Currency: currency,
		Status:   status,
		Raw:      event.Data.Raw,
	}); err != nil {
		return err
	}

	// The settled amount/currency reported by the provider wins over what we
	// priced at creation.
	if !amount.Equal(order.Amount) || currency != order.Currency {
		if _, err := u.orderRepo.UpdateAmount(ctx, order.ID, amount, currency); err != nil {
			return err
		}
		log.Printf("[webhook][usecase] settled amount reconciled order_id=%s amount=%s %s", order.ID, amount.StringFixed(2), currency)
	}

	updated, err := u.orderRepo.TransitionStatus(ctx, order.ID, entities.OrderStatusCreated, entities.OrderStatusPaid)
	if err != nil {
		return err
	}
	if updated.ID == "" {
		current, err := u.orderRepo.GetByID(ctx, order.ID)
		if err != nil {
			return err
		}
		switch current.Status {
		case entities.OrderStatusPaid, entities.OrderStatusFulfilled:
			log.Printf("[webhook][usecase] duplicate delivery, order already settled order_id=%s status=%s intent_id=%s", order.ID, current.Status, intentID)
		default:
			log.Printf("[webhook][usecase] not transitioning order_id=%s status=%s intent_id=%s", order.ID, current.Status, intentID)
		}
		return nil
	}

	log.Printf("[webhook][usecase] order paid order_id=%s intent_id=%s amount=%s %s", order.ID, intentID, amount.StringFixed(2), currency)
	return nil
}

func (u *WebhookUseCase) verifyEvent(payload []byte, sigHeader string) (stripe.Event, error) {
	if u.secret == "" {
		if isProductionEnvironment(u.environment) {
			log.Printf("[webhook][usecase] STRIPE_WEBHOOK_SECRET not configured in %s environment", u.environment)
			return stripe.Event{}, ErrWebhookSecretMissing
		}
		// Permissive parsing for local/dev setups without a webhook secret.
		log.Printf("[webhook][usecase] no webhook secret configured, skipping signature verification")
		var event stripe.Event
		if err := json.Unmarshal(payload, &event); err != nil {
			return stripe.Event{}, ErrInvalidWebhookPayload
		}
		return event, nil
	}

	event, err := webhook.ConstructEventWithOptions(payload, sigHeader, u.secret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		log.Printf("[webhook][usecase] signature verification failed err=%v", err)
		return stripe.Event{}, ErrInvalidWebhookSignature
	}
	return event, nil
}

func isProductionEnvironment(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "production", "prod", "live":
		return true
	}
	return false
}
