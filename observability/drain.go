package observability

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/asyncit/logger"
)

// Span attribute keys set on drain spans.
const (
	AttrDrainID   = "asyncit.drain.id"
	AttrItems     = "asyncit.drain.items"
	AttrCapped    = "asyncit.drain.capped"
	AttrStrategy  = "asyncit.partition.strategy"
	AttrSuccesses = "asyncit.partition.successes"
	AttrErrors    = "asyncit.partition.errors"
)

// Drain tracks one exhaustive pull of an iterator: a span, an id shared with
// the logs, and the start time for the duration metric.
type Drain struct {
	ID        string
	Operation string

	span  trace.Span
	start time.Time
}

// StartDrain opens a span named after operation and returns a context that
// carries both the span and the drain id.
func StartDrain(ctx context.Context, operation string) (context.Context, *Drain) {
	id := uuid.NewString()
	ctx, span := StartSpan(ctx, operation, trace.WithAttributes(attribute.String(AttrDrainID, id)))
	ctx = logger.ContextWithDrainID(ctx, id)
	return ctx, &Drain{ID: id, Operation: operation, span: span, start: time.Now()}
}

// Span returns the drain's span.
func (d *Drain) Span() trace.Span { return d.span }

// Finish ends the span and records drain metrics. It returns the elapsed time.
func (d *Drain) Finish(ctx context.Context, items int, capped bool, err error) time.Duration {
	elapsed := time.Since(d.start)
	status := "ok"
	d.span.SetAttributes(
		attribute.Int(AttrItems, items),
		attribute.Bool(AttrCapped, capped),
	)
	if err != nil {
		status = "error"
		d.span.RecordError(err)
		d.span.SetStatus(codes.Error, err.Error())
	}
	if m := DefaultMetrics(); m != nil {
		m.RecordDrain(ctx, d.Operation, status, items, capped, elapsed)
	}
	d.span.End()
	return elapsed
}
