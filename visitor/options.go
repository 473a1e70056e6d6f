package visitor

import "context"

// WithSchemaHook sets the hook called for each schema node.
func WithSchemaHook(fn SchemaHook) Option {
	return func(v *Visitor) { v.onSchema = fn }
}

// WithReferenceHook sets the hook called for each node carrying reference
// semantics. For schema nodes, it runs after the schema hook on whatever node
// the schema hook left in the slot.
func WithReferenceHook(fn ReferenceHook) Option {
	return func(v *Visitor) { v.onReference = fn }
}

// WithSkipHandler sets the handler called when an already-visited node is
// skipped (cycle or diamond pruning).
func WithSkipHandler(fn SkipHandler) Option {
	return func(v *Visitor) { v.onSkip = fn }
}

// WithContext sets the context for cancellation and deadline propagation.
// The context is available to hooks via wc.Context(); the engine itself does
// not observe it, so long-running hooks must honor cancellation themselves.
func WithContext(ctx context.Context) Option {
	return func(v *Visitor) { v.userCtx = ctx }
}

// WithLogger sets the structured logger used for traversal diagnostics.
// The default is NopLogger.
func WithLogger(logger Logger) Option {
	return func(v *Visitor) {
		if logger != nil {
			v.logger = logger
		}
	}
}
