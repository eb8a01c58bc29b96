// Package chain provides a fluent, context-threading wrapper over
// result.Result[T] for same-type pipelines.
//
// Highlights:
// - Start/FromValue: open a chain from a result or a plain value
// - Then/ThenTry/Map: chain Result-returning, (T, error)-returning and pure steps
// - OnError: recover a failed pipeline
// - RepeatUntil/While: loop a step under a condition
// - Or/And: combine alternative and required chains
// - Ensure: side effects without changing the result
// - Finally/Unwrap: collapse the chain to a concrete value
package chain
