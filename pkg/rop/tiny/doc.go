// Package tiny provides a minimal fluent Chain[T] for synchronous
// composition of Option[T] values that keep one payload type.
//
// - Start/FromValue: create a Chain
// - Then/ThenTry: compose option-returning or error-returning functions
// - RepeatUntil/While: loop a step while the chain stays successful
// - Or/And: pick among alternative chains
// - Map: transform the value
// - Ensure: trigger side effects per state
// - Finally: reduce to a concrete value via handlers
package tiny
