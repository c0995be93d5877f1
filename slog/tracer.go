// Package slog provides log/slog-backed observability: the run tracer and
// logging decorators for domain interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/smendoza/leytext"
)

// Ensure Tracer implements leytext.Tracer at compile time.
var _ leytext.Tracer = (*Tracer)(nil)

// Tracer emits span start/end events through a slog.Logger. Each tracer is
// created once per pipeline run and stamps every event with a run-scoped
// identifier, so there is no process-wide tracing state. Emission cannot
// fail, which satisfies the requirement that observability never blocks
// the pipeline.
type Tracer struct {
	logger *slog.Logger
	runID  string
}

// NewTracer creates a run-scoped tracer with a fresh run identifier.
func NewTracer(logger *slog.Logger) *Tracer {
	return &Tracer{
		logger: logger,
		runID:  uuid.NewString(),
	}
}

// RunID returns the identifier stamped on every span of this run.
func (t *Tracer) RunID() string {
	return t.runID
}

// Start begins a named operation.
func (t *Tracer) Start(ctx context.Context, name string) (context.Context, leytext.Span) {
	t.logger.Debug("span start", "run", t.runID, "op", name)
	return ctx, &span{
		tracer: t,
		name:   name,
		begin:  time.Now(),
	}
}

type span struct {
	tracer *Tracer
	name   string
	begin  time.Time
	attrs  []any
}

func (s *span) SetAttr(key string, value any) {
	s.attrs = append(s.attrs, slog.Any(key, value))
}

func (s *span) End(err error) {
	args := []any{
		"run", s.tracer.runID,
		"op", s.name,
		"duration", time.Since(s.begin),
	}
	args = append(args, s.attrs...)

	if err != nil {
		args = append(args, "error", err, "code", leytext.ErrorCode(err))
		s.tracer.logger.Error("span end", args...)
		return
	}
	s.tracer.logger.Info("span end", args...)
}
