// Package result provides a generic two-state container Result[T] that holds
// either a success value or a failure error, plus the combinators to chain
// fallible operations without panics as control flow.
//
// Highlights:
// - Success/Failure: construct Result[T] (Failure requires a non-nil error)
// - Try/TryWith/Call: invoke an operation and capture errors and panics
// - Then/ThenResult/ThenDo: chain on the success value, short-circuit on failure
// - Transform/TransformResult: run one of two sides, totalizing the outcome
// - Pipe: continue with the whole container, panic-free by construction
// - OnError family: recover, replace or rewrite the error of a failure
// - Match/MatchDefault/Switch/Unwrap: exit a pipeline into a plain value
// - FromNullable/RemoveNullable: choose whether absence means failure
//
// Interior combinators convert a panic from a supplied function into an
// ordinary failure. The declared exit points (Match, Switch, Unwrap on a
// failure, Failure with a nil error) treat misuse as a contract violation and
// terminate the process instead.
package result
