package interfaces

import "context"

// CheckoutSessionRequest describes the hosted payment page to create for an
// order. Metadata identifiers let the webhook path recover the order without
// a lookup by content.
type CheckoutSessionRequest struct {
	OrderID     string
	VenueID     string
	SessionID   string
	AmountMinor int64
	Currency    string
	ProductName string
	SuccessURL  string
	CancelURL   string
}

// CheckoutSession is the provider's view of a hosted payment page.
type CheckoutSession struct {
	ID       string
	URL      string
	Currency string
	Expired  bool
}

// ICheckoutGateway abstracts the external payment provider's checkout-session
// API (e.g. Stripe Checkout).
type ICheckoutGateway interface {
	CreateSession(ctx context.Context, req CheckoutSessionRequest) (CheckoutSession, error)
	GetSession(ctx context.Context, id string) (CheckoutSession, error)
}
