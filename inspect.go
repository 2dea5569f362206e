package bnstr

import (
	"github.com/calebcase/bnstr/decimal"
	"github.com/calebcase/bnstr/input"
)

// Parts is a numeral split at its decimal point.
type Parts = decimal.Parts

// Sign returns -1 for negative values and +1 otherwise. Zero is +1.
func Sign(v any) (int, error) {
	x, err := input.Value(v)
	if err != nil {
		return 0, err
	}

	if x.Sign() < 0 {
		return -1, nil
	}

	return 1, nil
}

// Split returns the sign, integer digits and fraction digits of v.
func Split(v any) (Parts, error) {
	x, err := input.Value(v)
	if err != nil {
		return Parts{}, err
	}

	return x.Split(), nil
}

// SD returns the number of significant digits of v. Trailing zeros of an
// integer are not significant.
func SD(v any) (int, error) {
	x, err := input.Value(v)
	if err != nil {
		return 0, err
	}

	return x.Digits(), nil
}

// ToSD returns v rounded half away from zero to n significant digits.
func ToSD(v any, n int) (string, error) {
	return unary(v, func(x decimal.Value) (decimal.Value, error) { return x.RoundDigits(n) })
}

// DP returns the number of decimal places of v.
func DP(v any) (int, error) {
	x, err := input.Value(v)
	if err != nil {
		return 0, err
	}

	return x.Places(), nil
}

// ToDP returns v rounded half away from zero to n decimal places.
func ToDP(v any, n int) (string, error) {
	return unary(v, func(x decimal.Value) (decimal.Value, error) { return x.RoundPlaces(n) })
}

// ToNumber returns the float64 nearest to v. Digits beyond float64
// precision are lost.
func ToNumber(v any) (float64, error) {
	x, err := input.Value(v)
	if err != nil {
		return 0, err
	}

	return x.Float64(), nil
}
