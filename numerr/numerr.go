// Package numerr declares the error classes shared by every layer of bnstr.
//
// Each class is a github.com/zeebo/errs class. Errors are tested for
// membership with Has, which follows wrapping:
//
//	if numerr.DivisionByZero.Has(err) {
//		...
//	}
package numerr

import "github.com/zeebo/errs"

var (
	// InvalidNumber is returned when an input cannot be parsed: NaN, a
	// missing value, an unrecognized string shape or a digit outside its
	// alphabet.
	InvalidNumber = errs.Class("invalid number")

	// EncodingDomain is returned when a negative or non-integer value is
	// base-encoded.
	EncodingDomain = errs.Class("encoding domain")

	// DivisionByZero is returned by division and modulo with a zero
	// divisor.
	DivisionByZero = errs.Class("division by zero")

	// Domain is returned when an operation has no real result, such as a
	// negative base raised to a non-integer exponent.
	Domain = errs.Class("domain")
)
