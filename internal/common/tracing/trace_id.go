// Package tracing tags contexts with an ID so every log line of one
// watch session can be correlated.
package tracing

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey struct{}

var traceIDCtxKey = ctxKey{}

// WithTraceID returns a context carrying a fresh trace ID, or ctx
// unchanged when one is already present.
func WithTraceID(ctx context.Context) context.Context {
	if _, ok := ctx.Value(traceIDCtxKey).(string); ok {
		return ctx
	}

	return context.WithValue(ctx, traceIDCtxKey, generateTraceID())
}

func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(traceIDCtxKey).(string)
	if !ok {
		return ""
	}

	return traceID
}

func generateTraceID() string {
	v, _ := uuid.NewV7()
	return v.String()
}
