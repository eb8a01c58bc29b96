// Package async contains the channel-based counterparts of the capture and
// chaining functions. Every entry point runs the supplied operation on its own
// goroutine and delivers exactly one Result on a buffered channel, closed
// after the send; the caller is never blocked while the operation is pending.
//
// Cancellation policy: a context found done before the operation runs, and an
// Await interrupted by its context, both produce an ordinary failure carrying
// ctx.Err() rather than a crash or an uncaught propagation. Use
// result.IsCancellation to classify such failures.
package async
