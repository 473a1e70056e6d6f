package visitor

import "context"

// VisitContext provides contextual information about the current node being
// visited. It follows the http.Request pattern for context access.
type VisitContext struct {
	// Path is the slash-delimited address of the current node.
	// Always populated. Example: "#/definitions/Pet/properties/name"
	Path string

	// TypeHint is the naming hint for the current node: the map key or
	// struct field name it was reached through. Empty for sequence elements
	// and single-child slots. Example: "Pet", "name"
	TypeHint string

	ctx context.Context
}

// Context returns the context.Context for cancellation and deadline
// propagation. Returns context.Background() if no context was set.
func (wc *VisitContext) Context() context.Context {
	if wc.ctx == nil {
		return context.Background()
	}
	return wc.ctx
}

// WithContext returns a shallow copy of VisitContext with the new context.
func (wc *VisitContext) WithContext(ctx context.Context) *VisitContext {
	wc2 := *wc
	wc2.ctx = ctx
	return &wc2
}
