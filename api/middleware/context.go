package middleware

import "context"

type contextKey string

const (
	ctxSessionID  contextKey = "session_id"
	ctxShopID     contextKey = "shop_id"
	ctxAdminToken contextKey = "admin_token"
	ctxAdminShop  contextKey = "admin_shop_id"
)

func SessionIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxSessionID).(string); ok {
		return v
	}
	return ""
}

func ShopIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxShopID).(string); ok {
		return v
	}
	return ""
}

// AdminTokenFromContext returns the raw bearer token of an authenticated
// owner request, for passthrough to the platform.
func AdminTokenFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxAdminToken).(string); ok {
		return v
	}
	return ""
}

// AdminShopIDFromContext returns the shop claim of an authenticated owner.
func AdminShopIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxAdminShop).(string); ok {
		return v
	}
	return ""
}

func WithSessionID(ctx context.Context, sessionID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxSessionID, sessionID)
}

func WithShopID(ctx context.Context, shopID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxShopID, shopID)
}

func withAdminClaims(ctx context.Context, token, shopID string) context.Context {
	ctx = context.WithValue(ctx, ctxAdminToken, token)
	return context.WithValue(ctx, ctxAdminShop, shopID)
}
