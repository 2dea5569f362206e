// Package decimal provides the canonical arbitrary-precision signed decimal
// value.
//
// The equation for a decimal number is:
//
//  number = coefficient * 10 ^ exponent
//
// Arithmetic is carried out by github.com/cockroachdb/apd with a working
// precision of 80 significant digits. The engine context is built once when
// the package is initialized and is never modified afterwards; operations
// that need a different precision derive a private context for the call.
//
// Arithmetic results are cut off at 80 digits, so 2 / 3 ends in ...666.
// Only the explicit rounding operations round half away from zero.
//
// Canonical Form
//
// Every Value is kept in canonical form:
//
//  - trailing zeros of the coefficient are removed (1.500 is 15 * 10^-1),
//  - zero has no sign and an exponent of 0 (-0.00 is 0),
//  - only finite numbers are representable (no NaN, no Infinity).
//
// Values are immutable. Every operation returns a freshly constructed Value
// and the zero Value is the number 0.
//
// Formatting
//
// String renders fixed-point notation and never uses an exponent:
//
//  1.44e3   -> 1440
//  1e-5     -> 0.00001
//  -41258.0 -> -41258
//
// Encoding
//
// Values marshal to text (the fixed-point numeral), JSON (the numeral as a
// string) and a compact binary layout built from integer blocks:
//
//  | coefficient block | exponent block | exponent block length |
//  |-------------------|----------------|-----------------------|
//  | zigzag, N bytes   | zigzag, 1-5    | 1 byte                |
//
// Both blocks use the zigzag layout of package integer, so the sign of the
// number travels in bit 0 of the coefficient block. For example:
//
//  1.23    = 123 * 10^-2 -> 0b1111_0110 0b0000_0101 0x01
//  -1      = 1 * 10^0    -> 0b0000_0011 0b0000_0000 0x01
//  0       = 0 * 10^0    -> 0b0000_0000 0b0000_0000 0x01
package decimal
