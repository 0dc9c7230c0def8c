package reqctx

import "context"

type ctxKey string

const (
	keyRID    ctxKey = "astro_rid"
	keyObject ctxKey = "astro_object"
)

// WithRID stores the request correlation id for pipeline logs.
func WithRID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, keyRID, rid)
}

// RID returns correlation id if present.
func RID(ctx context.Context) string {
	v, _ := ctx.Value(keyRID).(string)
	return v
}

// WithObject stores the user-supplied object name for pipeline logs.
func WithObject(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, keyObject, name)
}

// Object returns the object name if present.
func Object(ctx context.Context) string {
	v, _ := ctx.Value(keyObject).(string)
	return v
}
