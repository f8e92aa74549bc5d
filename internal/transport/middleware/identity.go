package middleware

import "context"

type holderKey struct{}

// identityHolder lets the session middleware report the resolved user back
// to the access log, which wraps it and never sees the inner context.
type identityHolder struct {
	userID string
}

func withIdentityHolder(ctx context.Context, h *identityHolder) context.Context {
	return context.WithValue(ctx, holderKey{}, h)
}

func recordIdentity(ctx context.Context, userID string) {
	if h, ok := ctx.Value(holderKey{}).(*identityHolder); ok {
		h.userID = userID
	}
}
