package httpx

import "context"

type ctxKey string

const (
	// CtxKeyIdentityID holds the authenticated caller's identity id.
	CtxKeyIdentityID ctxKey = "identity_id"
)

// WithIdentityID attaches the authenticated caller's identity id.
func WithIdentityID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CtxKeyIdentityID, id)
}

// IdentityIDFromContext returns the caller's identity id, or "" when the
// request is unauthenticated.
func IdentityIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyIdentityID).(string); ok {
		return v
	}
	return ""
}
