package httpapi

import (
	"context"

	"github.com/lifeboat-community/leaderboard-api/internal/domain/profile"
)

type contextKey string

const principalContextKey contextKey = "auth_principal"

func withPrincipal(ctx context.Context, p profile.Principal) context.Context {
	return context.WithValue(ctx, principalContextKey, p)
}

func principalFromContext(ctx context.Context) (profile.Principal, bool) {
	p, ok := ctx.Value(principalContextKey).(profile.Principal)
	return p, ok
}
