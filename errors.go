package bnstr

import "github.com/calebcase/bnstr/numerr"

var (
	// ErrInvalidNumber is the class of unparseable inputs.
	ErrInvalidNumber = &numerr.InvalidNumber

	// ErrEncodingDomain is the class of negative or fractional values given
	// to a base encoder.
	ErrEncodingDomain = &numerr.EncodingDomain

	// ErrDivisionByZero is the class of divisions and modulos by zero.
	ErrDivisionByZero = &numerr.DivisionByZero

	// ErrDomain is the class of operations without a real result.
	ErrDomain = &numerr.Domain
)
