package leytext

import "context"

// Tracer is the observability side-channel of a pipeline run. One tracer is
// created per run and carries a run-scoped identifier; there is no
// process-wide singleton. Emission is fire-and-forget: a tracer must never
// block or fail the pipeline.
type Tracer interface {
	// Start begins a named operation and returns a span to finish it.
	Start(ctx context.Context, name string) (context.Context, Span)
}

// Span represents one in-flight named operation.
type Span interface {
	// SetAttr attaches an attribute to the span.
	SetAttr(key string, value any)

	// End finishes the span. A non-nil error marks the operation failed.
	End(err error)
}

// NopTracer is a Tracer that discards everything.
type NopTracer struct{}

var _ Tracer = (*NopTracer)(nil)

func (NopTracer) Start(ctx context.Context, name string) (context.Context, Span) {
	return ctx, nopSpan{}
}

type nopSpan struct{}

func (nopSpan) SetAttr(string, any) {}
func (nopSpan) End(error)           {}
