// Package chain provides a fluent wrapper around Option[T]
// for building synchronous Railway-Oriented chains using solo primitives.
//
// Key operations:
// - Start/FromValue/FromResult: begin a chain from an Option[T], a value or a Result[T]
// - Then: switch to a new Option[U] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - Unbox: recover a typed chain from a chain of boxed values
// - Ensure: run side effects on success without changing the option
// - Finally: collapse the chain into a final value via handlers
package chain
