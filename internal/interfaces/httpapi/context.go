package httpapi

import (
	"context"
)

type contextKey string

const userIDContextKey contextKey = "user_id"

const userIDHeader = "X-User-ID"

func withUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDContextKey, userID)
}

func userIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDContextKey).(string)
	return userID, ok && userID != ""
}
