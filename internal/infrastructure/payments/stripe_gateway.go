package payments

import (
	"context"
	"errors"
	"log"
	"strings"

	"barcraft/internal/usecase/interfaces"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

var ErrMissingStripeSecretKey = errors.New("missing STRIPE_SECRET_KEY")

// StripeCheckoutGateway wraps the Stripe Checkout Session API behind
// ICheckoutGateway. The API client is constructed once at startup and
// injected, so connection reuse happens without hidden global state.

type StripeCheckoutGateway struct {
	api *client.API
}

var _ interfaces.ICheckoutGateway = (*StripeCheckoutGateway)(nil)

func NewStripeCheckoutGateway(secretKey string) (*StripeCheckoutGateway, error) {
	if secretKey == "" {
		log.Printf("[checkout][gateway] missing STRIPE_SECRET_KEY")
		return nil, ErrMissingStripeSecretKey
	}
	log.Printf("[checkout][gateway] Stripe client initialized")
	return &StripeCheckoutGateway{api: client.New(secretKey, nil)}, nil
}

func (g *StripeCheckoutGateway) CreateSession(ctx context.Context, req interfaces.CheckoutSessionRequest) (interfaces.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			Quantity: stripe.Int64(1),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(strings.ToLower(req.Currency)),
				UnitAmount: stripe.Int64(req.AmountMinor),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(req.ProductName),
				},
			},
		}},
	}
	params.Context = ctx
	// The webhook path recovers these without any lookup by content.
	params.AddMetadata("order_id", req.OrderID)
	params.AddMetadata("venue_id", req.VenueID)
	params.AddMetadata("session_id", req.SessionID)

	cs, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		log.Printf("[checkout][gateway] create failed order_id=%s err=%v", req.OrderID, err)
		return interfaces.CheckoutSession{}, err
	}
	log.Printf("[checkout][gateway] create success order_id=%s checkout_session_id=%s", req.OrderID, cs.ID)
	return fromStripeSession(cs), nil
}

func (g *StripeCheckoutGateway) GetSession(ctx context.Context, id string) (interfaces.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	cs, err := g.api.CheckoutSessions.Get(id, params)
	if err != nil {
		log.Printf("[checkout][gateway] get failed checkout_session_id=%s err=%v", id, err)
		return interfaces.CheckoutSession{}, err
	}
	return fromStripeSession(cs), nil
}

func fromStripeSession(cs *stripe.CheckoutSession) interfaces.CheckoutSession {
	return interfaces.CheckoutSession{
		ID:       cs.ID,
		URL:      cs.URL,
		Currency: strings.ToUpper(string(cs.Currency)),
		Expired:  cs.Status == stripe.CheckoutSessionStatusExpired,
	}
}
