// Package asynciter provides lazy, pull-based iteration where producing an
// item or transforming it may block on I/O.
//
// An Iterator yields one item per Next call. Combinators wrap an upstream
// iterator and pull from it only when they are pulled themselves, one item at
// a time and strictly in order. No goroutines are started.
//
// # Sources
//
//   - FromSlice, FromSeq, FromNext: plain sequences
//   - FromFunc: a context-aware pull function
//   - FromSyncSeq: re-enter from a materialized sequence
//
// # Combinators
//
//   - Map / TryMap: transform each item
//   - Filter: keep items matching a predicate
//   - Tap, Take, Concat
//
// Map and Filter return types that are both iterators and future.Future
// values. Awaiting one drains the chain and yields a SyncSeq that can be
// consumed without a context:
//
//	doubled := asynciter.Map(asynciter.FromSlice(ids), fetch)
//	seq, err := doubled.Await(ctx)
//	for v := range seq.Filter(isFresh) {
//	    ...
//	}
//
// # Terminals
//
// Collect, CollectInto, ToSlice, ForEach and Reduce consume and close the
// iterator. Collect and Await trust a bounded size hint: they pull at most
// SizeHint.Upper times.
package asynciter
