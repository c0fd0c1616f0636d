package pkg

import "context"

// HeaderRequestID is the correlation header propagated end to end: inbound
// requests may carry it, and outbound calls to the recipe engine echo it.
const HeaderRequestID = "x-request-id"

type requestIDKey struct{}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

func RequestIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey{}).(string); ok {
		return v
	}
	return ""
}
