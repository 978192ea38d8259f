// Package partition drains an iterator of result.Result values and sorts them
// into successes and errors.
//
// Element failures are data: a failed item never interrupts the drain. The
// Strategy only decides how the drained results are classified.
//
//	part, err := partition.Process(asynciter.TryMap(src, fetch)).
//	    WithStrategy(partition.StrategyStopOnFirstError).
//	    Run(ctx)
//	if err != nil {
//	    return err // cancellation or an invalid strategy
//	}
//	values, err := part.IntoOutcome()
//
// With StrategyPartition every error and every success is kept. With
// StrategyStopOnFirstError the outcome holds no successes and only the first
// error once any error is seen; the source is still drained to the end.
package partition
