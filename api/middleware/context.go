package middleware

import "context"

type contextKey string

const (
	ctxFirebaseUID contextKey = "firebase_uid"
	ctxRole        contextKey = "role"
)

func FirebaseUIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxFirebaseUID).(string); ok {
		return v
	}
	return ""
}

func RoleFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxRole).(string); ok {
		return v
	}
	return ""
}

// WithFirebaseUID injects the caller identity into the context.
func WithFirebaseUID(ctx context.Context, uid string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxFirebaseUID, uid)
}
