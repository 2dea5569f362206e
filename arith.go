package bnstr

import (
	"github.com/calebcase/bnstr/decimal"
	"github.com/calebcase/bnstr/input"
)

type (
	unaryOp  func(v decimal.Value) (decimal.Value, error)
	binaryOp func(v, w decimal.Value) (decimal.Value, error)
)

func unary(v any, op unaryOp) (string, error) {
	x, err := input.Value(v)
	if err != nil {
		return "", err
	}

	r, err := op(x)
	if err != nil {
		return "", err
	}

	return r.String(), nil
}

func binary(a, b any, op binaryOp) (string, error) {
	x, err := input.Value(a)
	if err != nil {
		return "", err
	}

	y, err := input.Value(b)
	if err != nil {
		return "", err
	}

	r, err := op(x, y)
	if err != nil {
		return "", err
	}

	return r.String(), nil
}

// Expand returns v as a fixed-point numeral.
func Expand(v any) (string, error) {
	return unary(v, func(x decimal.Value) (decimal.Value, error) { return x, nil })
}

// Add returns a + b.
func Add(a, b any) (string, error) { return binary(a, b, decimal.Value.Add) }

// Sub returns a - b.
func Sub(a, b any) (string, error) { return binary(a, b, decimal.Value.Sub) }

// Mul returns a * b.
func Mul(a, b any) (string, error) { return binary(a, b, decimal.Value.Mul) }

// Div returns a / b.
func Div(a, b any) (string, error) { return binary(a, b, decimal.Value.Quo) }

// IDiv returns a / b truncated toward zero.
func IDiv(a, b any) (string, error) { return binary(a, b, decimal.Value.QuoInteger) }

// Mod returns the remainder of a / b. The result has the sign of a.
func Mod(a, b any) (string, error) { return binary(a, b, decimal.Value.Rem) }

// Pow returns x raised to y.
func Pow(x, y any) (string, error) { return binary(x, y, decimal.Value.Pow) }

// Sqrt returns x raised to 0.5.
func Sqrt(x any) (string, error) { return unary(x, decimal.Value.Sqrt) }

// Log returns the logarithm of v in base.
func Log(v, base any) (string, error) { return binary(v, base, decimal.Value.Log) }

// Ln returns the natural logarithm of v.
func Ln(v any) (string, error) { return unary(v, decimal.Value.Ln) }

// Exp returns e raised to v.
func Exp(v any) (string, error) { return unary(v, decimal.Value.Exp) }

// Neg returns -v.
func Neg(v any) (string, error) {
	return unary(v, func(x decimal.Value) (decimal.Value, error) { return x.Neg(), nil })
}

// Abs returns |v|.
func Abs(v any) (string, error) {
	return unary(v, func(x decimal.Value) (decimal.Value, error) { return x.Abs(), nil })
}

// Int returns the integer part of v.
func Int(v any) (string, error) { return unary(v, decimal.Value.Trunc) }

// Round returns v rounded half away from zero to an integer.
func Round(v any) (string, error) {
	return unary(v, func(x decimal.Value) (decimal.Value, error) { return x.RoundPlaces(0) })
}

// Sum returns the sum of vals. Slices of type []any and []string are
// flattened one level. The sum of nothing is 0.
func Sum(vals ...any) (string, error) {
	r := decimal.Zero

	for _, v := range flatten(vals) {
		x, err := input.Value(v)
		if err != nil {
			return "", err
		}

		r, err = r.Add(x)
		if err != nil {
			return "", err
		}
	}

	return r.String(), nil
}

func flatten(vals []any) (flat []any) {
	for _, v := range vals {
		switch x := v.(type) {
		case []any:
			flat = append(flat, x...)
		case []string:
			for _, s := range x {
				flat = append(flat, s)
			}
		default:
			flat = append(flat, v)
		}
	}

	return flat
}
