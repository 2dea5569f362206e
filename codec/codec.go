// Package codec converts between non-negative integer magnitudes and
// big-endian digit sequences over an alphabet.
//
// The same two routines serve every base: hex, octal and binary numerals
// (textual alphabets), bit slices (the Bits alphabet) and byte buffers (the
// Bytes alphabet). Signs are never produced or consumed here; callers keep
// the sign out of band and hand the codec the magnitude.
package codec

import (
	"math/big"

	"github.com/calebcase/bnstr/alphabet"
	"github.com/calebcase/bnstr/length"
	"github.com/calebcase/bnstr/numerr"
)

// Decode returns the magnitude of digits, read most-significant first. The
// empty sequence decodes to zero.
func Decode(digits []byte, a *alphabet.Alphabet) (*big.Int, error) {
	var (
		r    = new(big.Int)
		base = big.NewInt(int64(a.Base()))
		d    = new(big.Int)
	)

	for i, s := range digits {
		v, ok := a.Value(s)
		if !ok {
			return nil, numerr.InvalidNumber.New("%q at %d is not a %s digit", s, i, a.Name())
		}

		r.Mul(r, base)
		if v != 0 {
			r.Add(r, d.SetInt64(int64(v)))
		}
	}

	return r, nil
}

// DecodeString is Decode for textual numerals.
func DecodeString(digits string, a *alphabet.Alphabet) (*big.Int, error) {
	return Decode([]byte(digits), a)
}

// Encode returns the digits of m, most-significant first, truncated or
// padded according to l. Zero encodes as a single zero symbol before l is
// applied.
func Encode(m *big.Int, a *alphabet.Alphabet, l length.Spec) ([]byte, error) {
	if m == nil || m.Sign() < 0 {
		return nil, numerr.EncodingDomain.New("can only base-%d encode non-negative integers", a.Base())
	}

	var (
		v    = new(big.Int).Set(m)
		base = big.NewInt(int64(a.Base()))
		r    = new(big.Int)
	)

	// Digits are produced least-significant first and reversed at the end.
	var digits []byte
	for {
		v.QuoRem(v, base, r)
		digits = append(digits, a.Symbol(int(r.Int64())))

		if v.Sign() == 0 {
			break
		}

		// Positive lengths only keep low order digits, so the rest need
		// not be computed.
		if l.Len() > 0 && len(digits) >= l.Len() {
			break
		}
	}

	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}

	return l.Apply(digits, a.Zero()), nil
}

// EncodeString is Encode for textual numerals.
func EncodeString(m *big.Int, a *alphabet.Alphabet, l length.Spec) (string, error) {
	digits, err := Encode(m, a, l)
	if err != nil {
		return "", err
	}

	return string(digits), nil
}
