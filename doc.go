// Package bnstr performs arbitrary-precision decimal arithmetic on numbers
// given in whatever shape is at hand and returns results as plain numeral
// strings.
//
// Inputs may be Go numbers, booleans, decimal numeral strings ("41258.31",
// "1.44e3"), prefixed strings ("0x8d75f7", "0b101", "0644"), big-endian
// byte slices, Bits, *big.Int, *apd.Decimal or decimal.Value. Every input
// is classified and decoded into a canonical decimal before use:
//
//	sum, err := bnstr.Add("0x8d75f7", 1) // "9270776"
//
// Arithmetic runs with a working precision of 80 significant digits and
// results are always fixed-point numerals, never scientific notation.
//
// Non-negative integers encode to hex, octal, binary, bits and bytes with an
// optional length. A positive length keeps or pads the least-significant
// digits while a negative length keeps or pads the most-significant:
//
//	bnstr.ToHex(4095, length.Of(2))  // "0xff"
//	bnstr.ToHex(4095, length.Of(-2)) // "0xff"
//	bnstr.ToHex(4096, length.Of(-2)) // "0x10"
//	bnstr.ToHex(1, length.Of(4))     // "0x0001"
//
// Errors belong to the classes ErrInvalidNumber, ErrEncodingDomain,
// ErrDivisionByZero and ErrDomain:
//
//	if bnstr.ErrDivisionByZero.Has(err) {
//		...
//	}
package bnstr
