package auth

import "context"

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// userIDKey is the context key for the authenticated user identity.
const userIDKey contextKey = "user_id"

// ContextWithUserID adds the authenticated user id to the context.
func ContextWithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext retrieves the authenticated user id from the context.
// The second return value reports whether an identity was present.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// MustUserIDFromContext retrieves the authenticated user id from the context.
// Panics if not present (use only when the auth middleware has run).
func MustUserIDFromContext(ctx context.Context) int64 {
	id, ok := UserIDFromContext(ctx)
	if !ok {
		panic("user id not found in context - ensure auth middleware is applied")
	}
	return id
}
