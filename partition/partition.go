package partition

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/asyncit/asynciter"
	"github.com/kbukum/asyncit/future"
	"github.com/kbukum/asyncit/logger"
	"github.com/kbukum/asyncit/observability"
	"github.com/kbukum/asyncit/result"
)

// Partition is the classified outcome of a drained result stream. Both lists
// keep arrival order.
type Partition[T any] struct {
	successes []T
	errs      []error
}

// Successes returns the successful values.
func (p *Partition[T]) Successes() []T { return p.successes }

// Errors returns the collected errors.
func (p *Partition[T]) Errors() []error { return p.errs }

// Len returns the total number of classified items.
func (p *Partition[T]) Len() int { return len(p.successes) + len(p.errs) }

// IntoOutcome returns the successes when no error was collected, otherwise
// the first error.
func (p *Partition[T]) IntoOutcome() ([]T, error) {
	if len(p.errs) > 0 {
		return nil, p.errs[0]
	}
	return p.successes, nil
}

// IntoSuccesses discards the errors.
func (p *Partition[T]) IntoSuccesses() []T { return p.successes }

// IntoErrors discards the successes.
func (p *Partition[T]) IntoErrors() []error { return p.errs }

func (p *Partition[T]) String() string {
	return fmt.Sprintf("Partition{successes: %v, errors: %v}", p.successes, p.errs)
}

// Processor drains a stream of results and classifies them with a Strategy.
// It is a future.Future of the classified Partition.
type Processor[T any] struct {
	source   asynciter.Iterator[result.Result[T]]
	strategy Strategy

	drain future.Future[*asynciter.SyncSeq[result.Result[T]]]
	out   *Partition[T]
	err   error

	ctx   context.Context
	span  trace.Span
	start time.Time
}

var _ future.Future[*Partition[int]] = (*Processor[int])(nil)

// Process starts configuring a processor over it. The default strategy is
// StrategyPartition.
func Process[T any](it asynciter.Iterator[result.Result[T]]) *Processor[T] {
	return &Processor[T]{source: it, strategy: StrategyPartition}
}

// WithStrategy sets the classification strategy.
func (p *Processor[T]) WithStrategy(s Strategy) *Processor[T] {
	p.strategy = s
	return p
}

// Run drains the source to exhaustion and classifies every result. An invalid
// strategy fails before anything is pulled.
func (p *Processor[T]) Run(ctx context.Context) (*Partition[T], error) {
	return future.Await[*Partition[T]](ctx, p)
}

// Poll advances the underlying drain by one pull.
func (p *Processor[T]) Poll(ctx context.Context) (*Partition[T], bool, error) {
	if p.out != nil || p.err != nil {
		return p.out, p.err == nil, p.err
	}
	if p.drain == nil {
		if !p.strategy.Valid() {
			p.err = invalidStrategy(p.strategy)
			return nil, false, p.err
		}
		p.ctx, p.span = observability.StartSpan(ctx, "partition.run",
			trace.WithAttributes(attribute.String(observability.AttrStrategy, p.strategy.String())))
		p.start = time.Now()
		p.drain = asynciter.Drain(p.source)
	}

	seq, ready, err := p.drain.Poll(p.ctx)
	if err != nil {
		p.finish(nil, err)
		return nil, false, err
	}
	if !ready {
		return nil, false, nil
	}
	p.finish(classify(seq, p.strategy), nil)
	return p.out, true, nil
}

func (p *Processor[T]) finish(out *Partition[T], err error) {
	p.out, p.err = out, err
	log := logger.Get("partition").WithContext(p.ctx)
	elapsed := time.Since(p.start)

	if err != nil {
		p.span.RecordError(err)
		p.span.SetStatus(codes.Error, err.Error())
		p.span.End()
		log.Debug("partition aborted", logger.ErrorFields("partition.run", err))
		return
	}

	p.span.SetAttributes(
		attribute.Int(observability.AttrSuccesses, len(out.successes)),
		attribute.Int(observability.AttrErrors, len(out.errs)),
	)
	p.span.End()
	if m := observability.DefaultMetrics(); m != nil {
		m.RecordOutcomes(p.ctx, p.strategy.String(), len(out.successes), len(out.errs))
	}
	log.Debug("partition finished", logger.MergeWithDuration(logger.Fields(
		logger.FieldStrategy, p.strategy.String(),
		logger.FieldSuccesses, len(out.successes),
		logger.FieldErrors, len(out.errs),
	), elapsed))
}

// classify walks the drained results in arrival order.
func classify[T any](seq *asynciter.SyncSeq[result.Result[T]], s Strategy) *Partition[T] {
	out := &Partition[T]{successes: []T{}, errs: []error{}}
	for r := range seq.All() {
		if r.Err != nil {
			if s == StrategyStopOnFirstError {
				return &Partition[T]{successes: []T{}, errs: []error{r.Err}}
			}
			out.errs = append(out.errs, r.Err)
			continue
		}
		out.successes = append(out.successes, r.Value)
	}
	return out
}
