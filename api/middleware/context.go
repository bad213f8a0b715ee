package middleware

import "context"

type contextKey string

const (
	ctxSellerID    contextKey = "seller_id"
	ctxSellerEmail contextKey = "seller_email"
	ctxSessionID   contextKey = "session_id"
)

func SellerIDFromContext(ctx context.Context) int64 {
	if ctx == nil {
		return 0
	}
	if v, ok := ctx.Value(ctxSellerID).(int64); ok {
		return v
	}
	return 0
}

func SellerEmailFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxSellerEmail).(string); ok {
		return v
	}
	return ""
}

func SessionIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxSessionID).(string); ok {
		return v
	}
	return ""
}

// WithSellerID injects the seller identifier into the context.
func WithSellerID(ctx context.Context, sellerID int64) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxSellerID, sellerID)
}

// WithSellerEmail injects the seller email into the context.
func WithSellerEmail(ctx context.Context, email string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxSellerEmail, email)
}

// WithSessionID injects the resolved session identifier into the context.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxSessionID, sessionID)
}
