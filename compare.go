package bnstr

import (
	"github.com/calebcase/bnstr/decimal"
	"github.com/calebcase/bnstr/input"
	"github.com/calebcase/bnstr/numerr"
)

// Cmp returns -1, 0 or +1 when a is less than, equal to or greater than b.
func Cmp(a, b any) (int, error) {
	x, err := input.Value(a)
	if err != nil {
		return 0, err
	}

	y, err := input.Value(b)
	if err != nil {
		return 0, err
	}

	return x.Cmp(y), nil
}

func cmpIs(a, b any, ok func(c int) bool) (bool, error) {
	c, err := Cmp(a, b)
	if err != nil {
		return false, err
	}

	return ok(c), nil
}

// Eq returns a == b.
func Eq(a, b any) (bool, error) { return cmpIs(a, b, func(c int) bool { return c == 0 }) }

// Ne returns a != b.
func Ne(a, b any) (bool, error) { return cmpIs(a, b, func(c int) bool { return c != 0 }) }

// Gt returns a > b.
func Gt(a, b any) (bool, error) { return cmpIs(a, b, func(c int) bool { return c > 0 }) }

// Gte returns a >= b.
func Gte(a, b any) (bool, error) { return cmpIs(a, b, func(c int) bool { return c >= 0 }) }

// Lt returns a < b.
func Lt(a, b any) (bool, error) { return cmpIs(a, b, func(c int) bool { return c < 0 }) }

// Lte returns a <= b.
func Lte(a, b any) (bool, error) { return cmpIs(a, b, func(c int) bool { return c <= 0 }) }

func pick(vals []any, better func(c int) bool) (string, error) {
	vals = flatten(vals)
	if len(vals) == 0 {
		return "", numerr.InvalidNumber.New("no values")
	}

	var r decimal.Value
	for i, v := range vals {
		x, err := input.Value(v)
		if err != nil {
			return "", err
		}

		if i == 0 || better(x.Cmp(r)) {
			r = x
		}
	}

	return r.String(), nil
}

// Min returns the smallest of vals.
func Min(vals ...any) (string, error) { return pick(vals, func(c int) bool { return c < 0 }) }

// Max returns the largest of vals.
func Max(vals ...any) (string, error) { return pick(vals, func(c int) bool { return c > 0 }) }

// Clamp returns lo if v < lo, hi if v > hi and v otherwise. It is a domain
// error for lo to exceed hi.
func Clamp(v, lo, hi any) (string, error) {
	x, err := input.Value(v)
	if err != nil {
		return "", err
	}

	l, err := input.Value(lo)
	if err != nil {
		return "", err
	}

	h, err := input.Value(hi)
	if err != nil {
		return "", err
	}

	switch {
	case l.Cmp(h) > 0:
		return "", numerr.Domain.New("clamp bounds %s > %s", l, h)
	case x.Cmp(l) < 0:
		return l.String(), nil
	case x.Cmp(h) > 0:
		return h.String(), nil
	}

	return x.String(), nil
}
