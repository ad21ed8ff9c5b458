// Package rop contains the tagged-union value types used to carry outcomes
// through railway-oriented code, and the conversions between their typed and
// type-erased forms.
//
// Highlights:
// - Result[T]: Ok with an optional value, or Error with an error
// - Option[T], Dual[S, E], Triple[S, F, C]: Success, Failed or Canceled, each with its own payload slot
// - Boxed/BoxedOption: type-erased forms, built with Box
// - ToResult/ToOption/ToDual/ToTriple: checked recovery of typed values, reported as *Error
// - Assign*: the same conversions writing into an existing variable
// - Merge: collapse a Triple with equal Failed and Canceled types into a Dual
// - Match/Fold: exhaustive dispatch on the current state
//
// Zero values are valid and read as Error or Failed with ErrUninitialized.
package rop
