// Package future provides a minimal poll-based future and the bridge that
// drives one to completion.
//
// A Future is advanced one step per Poll call. Await turns any Future into a
// plain blocking call by polling it in a tight loop on the caller's goroutine,
// which is how a multi-step pull chain is presented as a single awaitable value.
//
// # Usage
//
//	ch := make(chan int, 1)
//	go func() { ch <- compute() }()
//	v, err := future.Await(ctx, future.FromChan(ch))
//
// Await never yields to sibling work while draining. Callers that need other
// goroutines to make progress during the drain must not rely on Await for that.
package future
