// Package solo contains single-value, synchronous ROP primitives that operate
// on rop.Option[T]. Failed and Canceled inputs short-circuit every step and are
// forwarded with their error and identity.
//
// Highlights:
// - Succeed/Fail/Cancel: construct Option[T]
// - FromResult/ToResult: move between Result[T] and Option[T]
// - Validate/AndValidate/ValidateAll: apply validation producing failure on invalid input
// - Switch: move from Option[In] to Option[Out]
// - Map/DoubleMap: transform successful values
// - Try: call a function (Out, error); context errors become Canceled
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Join: fold a sequence of steps, stopping when the context is done
// - Finally: reduce to a concrete value via success/error/cancel handlers
package solo
