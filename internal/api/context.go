package api

import "context"

type tokenKey struct{}

// WithToken returns a context carrying the bearer token for upstream calls.
// The route guard attaches the session token here; anonymous requests leave
// it unset and no Authorization header is sent.
func WithToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext extracts the bearer token, or "" when none is attached.
func TokenFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(tokenKey{}).(string); ok {
		return v
	}
	return ""
}
