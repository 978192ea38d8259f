package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/kbukum/asyncit/asynciter"
	"github.com/kbukum/asyncit/config"
	"github.com/kbukum/asyncit/errors"
	"github.com/kbukum/asyncit/logger"
	"github.com/kbukum/asyncit/partition"
	"github.com/kbukum/asyncit/result"
)

// runDemo checks every configured item, drops skipped multiples and
// partitions what is left.
func runDemo(ctx context.Context, cfg config.DemoConfig) (*partition.Partition[int], error) {
	strategy, err := partition.ParseStrategy(cfg.Strategy)
	if err != nil {
		return nil, err
	}
	log := logger.Get("demo")

	checked := asynciter.TryMap(asynciter.FromSlice(cfg.Items), func(ctx context.Context, n int) (int, error) {
		if cfg.Delay > 0 {
			select {
			case <-ctx.Done():
				return 0, ctx.Err()
			case <-time.After(cfg.Delay):
			}
		}
		if cfg.FailAbove > 0 && n > cfg.FailAbove {
			return 0, errors.InvalidInput("item", fmt.Sprintf("%d is above %d", n, cfg.FailAbove))
		}
		return n, nil
	})

	kept := asynciter.Filter(checked, func(_ context.Context, r result.Result[int]) bool {
		return cfg.SkipMultipleOf <= 0 || r.IsErr() || r.Value%cfg.SkipMultipleOf != 0
	})

	traced := asynciter.Tap[result.Result[int]](kept, func(ctx context.Context, r result.Result[int]) {
		log.WithContext(ctx).Debug("item processed", logger.Fields("result", r.String()))
	})

	return partition.Process[int](traced).WithStrategy(strategy).Run(ctx)
}

func report(w io.Writer, part *partition.Partition[int]) {
	fmt.Fprintf(w, "successes (%d): %v\n", len(part.Successes()), part.Successes())
	fmt.Fprintf(w, "errors (%d):\n", len(part.Errors()))
	for _, err := range part.Errors() {
		fmt.Fprintf(w, "  - %v\n", err)
	}
}
