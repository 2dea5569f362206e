package bnstr

import (
	"math/big"

	"github.com/calebcase/bnstr/alphabet"
	"github.com/calebcase/bnstr/codec"
	"github.com/calebcase/bnstr/input"
	"github.com/calebcase/bnstr/length"
	"github.com/calebcase/bnstr/numerr"
)

// Bits is a big-endian sequence of bits. Every element is 0 or 1.
type Bits = input.Bits

// magnitude returns v as a non-negative integer.
func magnitude(v any) (*big.Int, error) {
	x, err := input.Value(v)
	if err != nil {
		return nil, err
	}

	m, ok := x.BigInt()
	if !ok || m.Sign() < 0 {
		return nil, numerr.EncodingDomain.New("can only encode non-negative integers: %s", x)
	}

	return m, nil
}

func encode(v any, a *alphabet.Alphabet, l length.Spec) ([]byte, error) {
	m, err := magnitude(v)
	if err != nil {
		return nil, err
	}

	return codec.Encode(m, a, l)
}

func encodeString(v any, prefix string, a *alphabet.Alphabet, l length.Spec) (string, error) {
	digits, err := encode(v, a, l)
	if err != nil {
		return "", err
	}

	return prefix + string(digits), nil
}

// ToHex returns v as "0x" and l lower-case hex digits.
func ToHex(v any, l length.Spec) (string, error) {
	return encodeString(v, "0x", alphabet.Hex, l)
}

// ToOctal returns v as "0" and l octal digits.
func ToOctal(v any, l length.Spec) (string, error) {
	return encodeString(v, "0", alphabet.Octal, l)
}

// ToBinary returns v as "0b" and l binary digits.
func ToBinary(v any, l length.Spec) (string, error) {
	return encodeString(v, "0b", alphabet.Binary, l)
}

// ToBits returns the bits of v, most significant first. The length counts
// bits.
func ToBits(v any, l length.Spec) (Bits, error) {
	digits, err := encode(v, alphabet.Bits, l)
	if err != nil {
		return nil, err
	}

	return Bits(digits), nil
}

// ToBuffer returns the big-endian bytes of v. The length counts bytes.
func ToBuffer(v any, l length.Spec) ([]byte, error) {
	return encode(v, alphabet.Bytes, l)
}

// FromBits returns the numeral of a big-endian bit sequence.
func FromBits(bits Bits) (string, error) {
	return Expand(bits)
}
