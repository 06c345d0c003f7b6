package mirror

import (
	"context"

	"github.com/ngoiyaeric/dash/internal/fault"
)

type ctxKey struct{}

// NewContext returns a context carrying the mirror. The owner that calls
// Start is responsible for calling Close on teardown.
func NewContext(ctx context.Context, m *Mirror) context.Context {
	return context.WithValue(ctx, ctxKey{}, m)
}

// FromContext returns the mirror installed by NewContext. Calling it
// outside a provider scope is a programmer error and panics with a
// configuration fault; it is not a runtime condition to recover from.
func FromContext(ctx context.Context) *Mirror {
	m, ok := ctx.Value(ctxKey{}).(*Mirror)
	if !ok || m == nil {
		panic(fault.Configuration("mirror must be used within a provider"))
	}
	return m
}
