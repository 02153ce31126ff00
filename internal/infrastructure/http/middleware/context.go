package middleware

import (
	"context"

	"github.com/nyinyi2714/hotel-del-luna-api/internal/domain"
)

type contextKey string

const userIDContextKey contextKey = "user_id"

// WithUserID injects the authenticated user id into the context.
func WithUserID(ctx context.Context, userID domain.UserID) context.Context {
	return context.WithValue(ctx, userIDContextKey, userID)
}

// UserIDFromContext returns the authenticated user id, or false when the
// request carried no valid token.
func UserIDFromContext(ctx context.Context) (domain.UserID, bool) {
	v := ctx.Value(userIDContextKey)
	if v == nil {
		return domain.UserID{}, false
	}
	id, ok := v.(domain.UserID)
	return id, ok
}
