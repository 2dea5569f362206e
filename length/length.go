// Package length implements the truncate/pad policy applied to base
// encoded output.
//
// A Spec is an optional signed length. The zero Spec (and a length of 0)
// means natural length: the digits are kept as produced. A positive length
// L keeps the L least-significant digits, right aligned, left padding with
// the zero symbol when the natural output is shorter. A negative length -M
// keeps the M most-significant digits, left aligned, right padding with the
// zero symbol when the natural output is shorter.
//
//	| spec | N >= |L|              | N < |L|                 |
//	|------|-----------------------|-------------------------|
//	|  0   | keep all N            | n/a                     |
//	| +L   | keep the last L       | left pad to width L     |
//	| -M   | keep the first M      | right pad to width M    |
package length

import "strconv"

// Spec is an optional signed length. The zero value is natural length.
type Spec struct {
	n int
}

// Of returns the spec for length n. Of(0) is natural length.
func Of(n int) Spec { return Spec{n: n} }

// Natural returns true when no length constraint applies.
func (s Spec) Natural() bool { return s.n == 0 }

// Len returns the signed length. It is 0 for natural length.
func (s Spec) Len() int { return s.n }

func (s Spec) String() string {
	if s.Natural() {
		return "natural"
	}

	return strconv.Itoa(s.n)
}

// Apply truncates or pads digits according to the spec. The result is always
// a new slice; digits is not modified.
func (s Spec) Apply(digits []byte, zero byte) []byte {
	n := len(digits)

	switch {
	case s.n == 0:
		return append([]byte(nil), digits...)
	case s.n > 0 && n >= s.n:
		return append([]byte(nil), digits[n-s.n:]...)
	case s.n > 0:
		out := make([]byte, s.n)
		pad := s.n - n
		for i := 0; i < pad; i++ {
			out[i] = zero
		}
		copy(out[pad:], digits)

		return out
	}

	m := -s.n
	if n >= m {
		return append([]byte(nil), digits[:m]...)
	}

	out := make([]byte, m)
	copy(out, digits)
	for i := n; i < m; i++ {
		out[i] = zero
	}

	return out
}
