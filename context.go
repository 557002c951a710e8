package cruddals

import "context"

type modelContextKey struct{}

// NewContext returns ctx carrying the built model. Every wrapped resolver
// runs with its model already attached, so resolvers and hooks can recover
// the types and names of the model they serve.
func NewContext(ctx context.Context, m *Model) context.Context {
	return context.WithValue(ctx, modelContextKey{}, m)
}

// FromContext returns the model attached by NewContext, if any.
func FromContext(ctx context.Context) (*Model, bool) {
	if ctx == nil {
		return nil, false
	}
	m, ok := ctx.Value(modelContextKey{}).(*Model)
	return m, ok
}
