package integer

import (
	"math/big"

	"github.com/zeebo/errs"
)

// Error is the class of integer errors.
var Error = errs.Class("integer")

// Block is a signed integer number. The sign is kept out of band from the
// big-endian magnitude.
type Block struct {
	Value    []byte
	Negative bool
}

// FromBigInt returns the block for i.
func FromBigInt(i *big.Int) Block {
	b := Block{
		Value:    i.Bytes(),
		Negative: i.Sign() < 0,
	}

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(b.Value) == 0 {
		b.Value = []byte{0}
	}

	return b
}

// FromInt64 returns the block for v.
func FromInt64(v int64) Block {
	return FromBigInt(big.NewInt(v))
}

// Magnitude returns the absolute value of the block.
func (b Block) Magnitude() *big.Int {
	return new(big.Int).SetBytes(b.Value)
}

// BigInt returns the signed value of the block. A negative zero is zero.
func (b Block) BigInt() *big.Int {
	i := b.Magnitude()
	if b.Negative {
		i.Neg(i)
	}

	return i
}

// Int64 returns the signed value of the block if it fits.
func (b Block) Int64() (v int64, err error) {
	i := b.BigInt()
	if !i.IsInt64() {
		return 0, Error.New("out of int64 range: %s", i)
	}

	return i.Int64(), nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
//
// The magnitude is shifted left one bit and the sign is stored in bit 0
// (zigzag). The result is big-endian and zero is a single zero byte.
func (b Block) MarshalBinary() (data []byte, err error) {
	i := new(big.Int).SetBytes(b.Value)

	i.Lsh(i, 1)
	if b.Negative {
		i.SetBit(i, 0, 1)
	}

	data = i.Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(data) == 0 {
		data = []byte{0}
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	if len(data) == 0 {
		return Error.New("empty data")
	}

	i := new(big.Int).SetBytes(data)

	b.Negative = i.Bit(0) == 1
	i.Rsh(i, 1)

	data = i.Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(data) == 0 {
		data = []byte{0}
	}

	b.Value = data

	return nil
}
