// Package input classifies the many shapes a number can arrive in and
// decodes them into a canonical decimal.Value.
//
// Strings are recognized in this order, after an optional leading sign:
//
//  | body               | kind          | alphabet      |
//  |--------------------|---------------|---------------|
//  | 0x[0-9a-fA-F]*     | HexString     | alphabet.Hex  |
//  | 0b[01]*            | BinaryString  | alphabet.Binary |
//  | 0[0-7]*            | OctalString   | alphabet.Octal  |
//  | anything else      | NumeralString | (engine)      |
//
// An empty digit body after a prefix is 0.
package input

import (
	"fmt"
	"math/big"
	"reflect"
	"regexp"

	"github.com/cockroachdb/apd"

	"github.com/calebcase/bnstr/alphabet"
	"github.com/calebcase/bnstr/codec"
	"github.com/calebcase/bnstr/decimal"
	"github.com/calebcase/bnstr/numerr"
)

// Kind identifies the shape of an input.
type Kind int

// Kinds of inputs.
const (
	Invalid Kind = iota
	NativeNumber
	Boolean
	NumeralString
	HexString
	OctalString
	BinaryString
	ByteSequence
	BitSequence
	CanonicalValue
)

var kindNames = [...]string{
	Invalid:        "invalid",
	NativeNumber:   "native number",
	Boolean:        "boolean",
	NumeralString:  "numeral string",
	HexString:      "hex string",
	OctalString:    "octal string",
	BinaryString:   "binary string",
	ByteSequence:   "byte sequence",
	BitSequence:    "bit sequence",
	CanonicalValue: "canonical value",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// Bits is a big-endian sequence of bits. Every element is 0 or 1.
type Bits []byte

var (
	hexRE    = regexp.MustCompile(`^0[xX][0-9a-fA-F]*$`)
	binaryRE = regexp.MustCompile(`^0[bB][01]*$`)
	octalRE  = regexp.MustCompile(`^0[0-7]*$`)
)

// Input is a classified number that has not been decoded yet.
type Input struct {
	Kind Kind

	// Negative is the sign split off a prefixed string.
	Negative bool

	// Digits holds the digit symbols of strings and sequences with any
	// prefix removed.
	Digits []byte

	// Numeral holds the text of numeral strings, booleans and native
	// numbers.
	Numeral string

	// Value holds canonical values.
	Value decimal.Value
}

// Classify determines the kind of v.
func Classify(v any) (in Input, err error) {
	switch x := v.(type) {
	case nil:
		return in, numerr.InvalidNumber.New("nil")
	case decimal.Value:
		return Input{Kind: CanonicalValue, Value: x}, nil
	case *decimal.Value:
		if x == nil {
			return in, numerr.InvalidNumber.New("nil %T", v)
		}

		return Input{Kind: CanonicalValue, Value: *x}, nil
	case *apd.Decimal:
		d, err := decimal.FromAPD(x)
		if err != nil {
			return in, err
		}

		return Input{Kind: CanonicalValue, Value: d}, nil
	case apd.Decimal:
		return Classify(&x)
	case *big.Int:
		if x == nil {
			return in, numerr.InvalidNumber.New("nil %T", v)
		}

		return Input{Kind: CanonicalValue, Value: decimal.FromBigInt(x)}, nil
	case big.Int:
		return Classify(&x)
	case Bits:
		return Input{Kind: BitSequence, Digits: x}, nil
	case []byte:
		return Input{Kind: ByteSequence, Digits: x}, nil
	case bool:
		if x {
			return Input{Kind: Boolean, Numeral: "1"}, nil
		}

		return Input{Kind: Boolean, Numeral: "0"}, nil
	case string:
		return classifyString(x), nil
	case float64:
		d, err := decimal.FromFloat64(x)
		if err != nil {
			return in, err
		}

		return Input{Kind: NativeNumber, Numeral: d.String()}, nil
	case float32:
		d, err := decimal.FromFloat32(x)
		if err != nil {
			return in, err
		}

		return Input{Kind: NativeNumber, Numeral: d.String()}, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Input{Kind: NativeNumber, Numeral: fmt.Sprint(rv.Int())}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Input{Kind: NativeNumber, Numeral: fmt.Sprint(rv.Uint())}, nil
	case reflect.Float32:
		return Classify(float32(rv.Float()))
	case reflect.Float64:
		return Classify(rv.Float())
	case reflect.String:
		return classifyString(rv.String()), nil
	case reflect.Bool:
		return Classify(rv.Bool())
	case reflect.Ptr:
		if rv.IsNil() {
			return in, numerr.InvalidNumber.New("nil %T", v)
		}

		return Classify(rv.Elem().Interface())
	}

	return in, numerr.InvalidNumber.New("unsupported type %T", v)
}

func classifyString(s string) Input {
	body := s
	negative := false

	if len(body) > 0 && (body[0] == '-' || body[0] == '+') {
		negative = body[0] == '-'
		body = body[1:]
	}

	switch {
	case hexRE.MatchString(body):
		return Input{Kind: HexString, Negative: negative, Digits: []byte(body[2:])}
	case binaryRE.MatchString(body):
		return Input{Kind: BinaryString, Negative: negative, Digits: []byte(body[2:])}
	case octalRE.MatchString(body):
		return Input{Kind: OctalString, Negative: negative, Digits: []byte(body[1:])}
	}

	return Input{Kind: NumeralString, Numeral: s}
}

// Decode returns the canonical value of the input.
func (in Input) Decode() (v decimal.Value, err error) {
	switch in.Kind {
	case CanonicalValue:
		return in.Value, nil
	case NativeNumber, Boolean, NumeralString:
		return decimal.Parse(in.Numeral)
	case HexString:
		return in.decode(alphabet.Hex)
	case OctalString:
		return in.decode(alphabet.Octal)
	case BinaryString:
		return in.decode(alphabet.Binary)
	case ByteSequence:
		return in.decode(alphabet.Bytes)
	case BitSequence:
		return in.decode(alphabet.Bits)
	}

	return v, numerr.InvalidNumber.New("cannot decode %s input", in.Kind)
}

func (in Input) decode(a *alphabet.Alphabet) (v decimal.Value, err error) {
	m, err := codec.Decode(in.Digits, a)
	if err != nil {
		return v, err
	}

	v = decimal.FromBigInt(m)
	if in.Negative {
		v = v.Neg()
	}

	return v, nil
}

// Value classifies and decodes v.
func Value(v any) (decimal.Value, error) {
	in, err := Classify(v)
	if err != nil {
		return decimal.Zero, err
	}

	return in.Decode()
}
