package middleware

import (
	"context"
	"feedback/internal/core"
)

const identityKey ctxKey = "identity"

func WithIdentity(ctx context.Context, who core.Identity) context.Context {
	return context.WithValue(ctx, identityKey, who)
}

// IdentityFrom returns the identity resolved for the request. Requests that
// never went through the session middleware are anonymous.
func IdentityFrom(ctx context.Context) core.Identity {
	who, _ := ctx.Value(identityKey).(core.Identity)
	return who
}
