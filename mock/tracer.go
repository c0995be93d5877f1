package mock

import (
	"context"

	"github.com/smendoza/leytext"
)

var _ leytext.Tracer = (*Tracer)(nil)

// Tracer is a mock implementation of leytext.Tracer that records span
// names in order.
type Tracer struct {
	Started []string
}

func (t *Tracer) Start(ctx context.Context, name string) (context.Context, leytext.Span) {
	t.Started = append(t.Started, name)
	return ctx, &Span{Name: name}
}

// Span records the attributes and final error of one operation.
type Span struct {
	Name  string
	Attrs map[string]any
	Err   error
	Ended bool
}

func (s *Span) SetAttr(key string, value any) {
	if s.Attrs == nil {
		s.Attrs = make(map[string]any)
	}
	s.Attrs[key] = value
}

func (s *Span) End(err error) {
	s.Ended = true
	s.Err = err
}
