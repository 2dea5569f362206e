package bnstr

import (
	"fmt"
	"math/big"
	"strings"
	"testing"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/bnstr/length"
)

const (
	// 2^256
	pow256 = "115792089237316195423570985008687907853269984665640564039457584007913129639936"

	// 2^256-1
	max256       = "115792089237316195423570985008687907853269984665640564039457584007913129639935"
	max256Octal  = "017777777777777777777777777777777777777777777777777777777777777777777777777777777777777"
	max256Hex    = "0xffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"
	max256Binary = "0b1111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111"

	dividend = "304995912158948192180120121"
	divisor  = "9409019585412120501214"
	quotient = "32415.270197951149740236538807583548219780021448800472459819699572958121538007362"
	product  = "2869712510974178241410260911937900084633246326894"
	rem      = "2542297814306133268311"

	n28 = "4910210853121048192949129121"
)

var natural = length.Spec{}

func TestExpand(t *testing.T) {
	type TC struct {
		input  any
		output string
		Mark   error
	}

	tcs := []TC{
		{input: 41258, output: "41258", Mark: oops.New("unexpected")},
		{input: -41258, output: "-41258", Mark: oops.New("unexpected")},
		{input: 41258.3145831, output: "41258.3145831", Mark: oops.New("unexpected")},
		{input: -41258.3145831, output: "-41258.3145831", Mark: oops.New("unexpected")},
		{input: 1.44e3, output: "1440", Mark: oops.New("unexpected")},
		{input: "41258", output: "41258", Mark: oops.New("unexpected")},
		{input: "-41258", output: "-41258", Mark: oops.New("unexpected")},
		{input: "41258.3145831", output: "41258.3145831", Mark: oops.New("unexpected")},
		{input: "-41258.3145831", output: "-41258.3145831", Mark: oops.New("unexpected")},
		{input: "1.44e3", output: "1440", Mark: oops.New("unexpected")},
		{input: pow256, output: pow256, Mark: oops.New("unexpected")},
		{input: "-" + pow256, output: "-" + pow256, Mark: oops.New("unexpected")},
		{input: "0x8d75f7", output: "9270775", Mark: oops.New("unexpected")},
		{input: max256Hex, output: max256, Mark: oops.New("unexpected")},
		{input: max256Octal, output: max256, Mark: oops.New("unexpected")},
		{input: max256Binary, output: max256, Mark: oops.New("unexpected")},
		{input: "0x412", output: "1042", Mark: oops.New("unexpected")},
		{input: "0b1010000101", output: "645", Mark: oops.New("unexpected")},
		{input: "0461465", output: "156469", Mark: oops.New("unexpected")},
		{input: "0x", output: "0", Mark: oops.New("unexpected")},
		{input: "0b", output: "0", Mark: oops.New("unexpected")},
		{input: "0", output: "0", Mark: oops.New("unexpected")},
		{input: "-0", output: "0", Mark: oops.New("unexpected")},
		{input: []byte{0x0f, 0xdd, 0xa1, 0x97, 0xb7, 0x3d, 0xd3, 0x43, 0xfa, 0xe3, 0x8f, 0xa1}, output: n28, Mark: oops.New("unexpected")},
		{input: true, output: "1", Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%v", i, tc.input), func(t *testing.T) {
			output, err := Expand(tc.input)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.output, output, tc.Mark)

			output, err = Parse(tc.input)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.output, output, tc.Mark)
		})
	}
}

func TestExpandInvalid(t *testing.T) {
	for i, input := range []any{nil, "", "abc", "NaN", "0xzz", "+-5", "++5", struct{}{}} {
		t.Run(fmt.Sprintf("[%d]%v", i, input), func(t *testing.T) {
			_, err := Expand(input)
			require.Error(t, err)
			require.True(t, ErrInvalidNumber.Has(err), spew.Sdump(err))
		})
	}
}

func TestEncode(t *testing.T) {
	type TC struct {
		name   string
		encode func(v any, l length.Spec) (string, error)
		input  any
		length length.Spec
		output string
		Mark   error
	}

	tcs := []TC{
		{name: "hex", encode: ToHex, input: max256, length: natural, output: max256Hex, Mark: oops.New("unexpected")},
		{name: "binary", encode: ToBinary, input: max256, length: natural, output: max256Binary, Mark: oops.New("unexpected")},
		{name: "octal", encode: ToOctal, input: max256, length: natural, output: max256Octal, Mark: oops.New("unexpected")},
		{name: "hex clamped", encode: ToHex, input: n28, length: length.Of(5), output: "0x38fa1", Mark: oops.New("unexpected")},
		{name: "octal clamped", encode: ToOctal, input: n28, length: length.Of(5), output: "007641", Mark: oops.New("unexpected")},
		{name: "binary clamped", encode: ToBinary, input: n28, length: length.Of(5), output: "0b00001", Mark: oops.New("unexpected")},
		{name: "hex padded", encode: ToHex, input: "3121048", length: length.Of(10), output: "0x00002f9f98", Mark: oops.New("unexpected")},
		{name: "octal padded", encode: ToOctal, input: "3121048", length: length.Of(12), output: "0000013717630", Mark: oops.New("unexpected")},
		{name: "binary padded", encode: ToBinary, input: "3121048", length: length.Of(26), output: "0b00001011111001111110011000", Mark: oops.New("unexpected")},
		{name: "hex high digits", encode: ToHex, input: n28, length: length.Of(-4), output: "0xfdda", Mark: oops.New("unexpected")},
		{name: "hex high padded", encode: ToHex, input: "3121048", length: length.Of(-8), output: "0x2f9f9800", Mark: oops.New("unexpected")},
		{name: "hex zero", encode: ToHex, input: 0, length: natural, output: "0x0", Mark: oops.New("unexpected")},
		{name: "hex zero padded", encode: ToHex, input: 0, length: length.Of(4), output: "0x0000", Mark: oops.New("unexpected")},
		{name: "hex from hex", encode: ToHex, input: "0X8D75F7", length: natural, output: "0x8d75f7", Mark: oops.New("unexpected")},
		{name: "hexadecimal", encode: ToHexadecimal, input: 4095, length: natural, output: "0xfff", Mark: oops.New("unexpected")},
		{name: "integral exponent", encode: ToHex, input: "1.6e1", length: natural, output: "0x10", Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			output, err := tc.encode(tc.input, tc.length)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.output, output, tc.Mark)
		})
	}
}

func TestEncodeDomain(t *testing.T) {
	for i, input := range []any{"-1", "1.5", -0.25, "-0x10"} {
		t.Run(fmt.Sprintf("[%d]%v", i, input), func(t *testing.T) {
			_, err := ToHex(input, natural)
			require.True(t, ErrEncodingDomain.Has(err), spew.Sdump(err))

			_, err = ToBuffer(input, natural)
			require.True(t, ErrEncodingDomain.Has(err))

			_, err = ToBits(input, natural)
			require.True(t, ErrEncodingDomain.Has(err))
		})
	}
}

func TestBuffer(t *testing.T) {
	buf, err := ToBuffer(n28, natural)
	require.NoError(t, err)
	require.Equal(t, "0fdda197b73dd343fae38fa1", fmt.Sprintf("%x", buf))

	buf, err = ToBuffer(n28, length.Of(2))
	require.NoError(t, err)
	require.Equal(t, []byte{0x8f, 0xa1}, buf)

	buf, err = ToBuffer(1, length.Of(4))
	require.NoError(t, err)
	require.Equal(t, []byte{0, 0, 0, 1}, buf)

	buf, err = ToBuffer(n28, length.Of(-2))
	require.NoError(t, err)
	require.Equal(t, []byte{0x0f, 0xdd}, buf)

	buf, err = ToBuffer(0, natural)
	require.NoError(t, err)
	require.Equal(t, []byte{0}, buf)

	output, err := Expand(buf)
	require.NoError(t, err)
	require.Equal(t, "0", output)
}

func TestBits(t *testing.T) {
	bits, err := ToBits(645, natural)
	require.NoError(t, err)
	require.Equal(t, Bits{1, 0, 1, 0, 0, 0, 0, 1, 0, 1}, bits)

	output, err := FromBits(bits)
	require.NoError(t, err)
	require.Equal(t, "645", output)

	bits, err = ToBits(5, length.Of(8))
	require.NoError(t, err)
	require.Equal(t, Bits{0, 0, 0, 0, 0, 1, 0, 1}, bits)

	bits, err = ToBits(645, length.Of(-3))
	require.NoError(t, err)
	require.Equal(t, Bits{1, 0, 1}, bits)

	bits, err = ToBits(max256, natural)
	require.NoError(t, err)
	require.Len(t, bits, 256)

	output, err = FromBits(bits)
	require.NoError(t, err)
	require.Equal(t, max256, output)

	_, err = FromBits(Bits{1, 2})
	require.True(t, ErrInvalidNumber.Has(err))
}

func TestArithmetic(t *testing.T) {
	type TC struct {
		name   string
		op     func(a, b any) (string, error)
		a, b   any
		output string
		Mark   error
	}

	tcs := []TC{
		{name: "add", op: Add, a: dividend, b: divisor, output: "305005321178533604300621335", Mark: oops.New("unexpected")},
		{name: "plus", op: Plus, a: dividend, b: divisor, output: "305005321178533604300621335", Mark: oops.New("unexpected")},
		{name: "sub", op: Sub, a: dividend, b: divisor, output: "304986503139362780059618907", Mark: oops.New("unexpected")},
		{name: "minus", op: Minus, a: dividend, b: divisor, output: "304986503139362780059618907", Mark: oops.New("unexpected")},
		{name: "mul", op: Mul, a: dividend, b: divisor, output: product, Mark: oops.New("unexpected")},
		{name: "times", op: Times, a: dividend, b: divisor, output: product, Mark: oops.New("unexpected")},
		{name: "mul positive negative", op: Mul, a: dividend, b: "-" + divisor, output: "-" + product, Mark: oops.New("unexpected")},
		{name: "mul negative negative", op: Mul, a: "-" + dividend, b: "-" + divisor, output: product, Mark: oops.New("unexpected")},
		{name: "div", op: Div, a: dividend, b: divisor, output: quotient, Mark: oops.New("unexpected")},
		{name: "over", op: Over, a: dividend, b: divisor, output: quotient, Mark: oops.New("unexpected")},
		{name: "div positive negative", op: Div, a: dividend, b: "-" + divisor, output: "-" + quotient, Mark: oops.New("unexpected")},
		{name: "div negative negative", op: Div, a: "-" + dividend, b: "-" + divisor, output: quotient, Mark: oops.New("unexpected")},
		{name: "idiv", op: IDiv, a: dividend, b: divisor, output: "32415", Mark: oops.New("unexpected")},
		{name: "idiv negative", op: IDiv, a: "-" + dividend, b: divisor, output: "-32415", Mark: oops.New("unexpected")},
		{name: "mod", op: Mod, a: dividend, b: divisor, output: rem, Mark: oops.New("unexpected")},
		{name: "mod negative negative", op: Mod, a: "-" + dividend, b: "-" + divisor, output: "-" + rem, Mark: oops.New("unexpected")},
		{name: "mod positive negative", op: Mod, a: dividend, b: "-" + divisor, output: rem, Mark: oops.New("unexpected")},
		{name: "mod negative positive", op: Mod, a: "-" + dividend, b: divisor, output: "-" + rem, Mark: oops.New("unexpected")},
		{name: "mod decimals", op: Mod, a: "49129014.4121", b: "88541.3121", output: "77127.5087", Mark: oops.New("unexpected")},
		{name: "pow", op: Pow, a: "-41", b: "42", output: "54565982855941191947249368879497196495421462536627690767330656099281", Mark: oops.New("unexpected")},
		{name: "raise", op: Raise, a: 2, b: 10, output: "1024", Mark: oops.New("unexpected")},
		{name: "log", op: Log, a: 1024, b: 2, output: "10", Mark: oops.New("unexpected")},
		{name: "mixed shapes", op: Add, a: "0x10", b: []byte{0x01, 0x00}, output: "272", Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			output, err := tc.op(tc.a, tc.b)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.output, output, tc.Mark)
		})
	}
}

func TestIrrational(t *testing.T) {
	type TC struct {
		name   string
		op     func() (string, error)
		prefix string
		Mark   error
	}

	tcs := []TC{
		{
			name:   "pow half",
			op:     func() (string, error) { return Pow(2, 0.5) },
			prefix: "1.4142135623730950488016887242096980785696718753769480731766797379907324",
			Mark:   oops.New("unexpected"),
		},
		{
			name:   "sqrt",
			op:     func() (string, error) { return Sqrt(2) },
			prefix: "1.4142135623730950488016887242096980785696718753769480731766797379907324",
			Mark:   oops.New("unexpected"),
		},
		{
			name:   "negative integer power",
			op:     func() (string, error) { return Pow("-41", "-2") },
			prefix: "0.0005948839976204640095181439619274241522903033908387864366448542534205",
			Mark:   oops.New("unexpected"),
		},
		{
			name:   "negative decimal power",
			op:     func() (string, error) { return Pow("41", "-2.5") },
			prefix: "0.0000929052717957204435003586377827050284313985596932867904634185897863",
			Mark:   oops.New("unexpected"),
		},
		{
			name:   "ln",
			op:     func() (string, error) { return Ln(10) },
			prefix: "2.3025850929940456840179914546843642076011014886287729760333279009675726",
			Mark:   oops.New("unexpected"),
		},
		{
			name:   "exp",
			op:     func() (string, error) { return Exp(1) },
			prefix: "2.7182818284590452353602874713526624977572470936999595749669676277240766",
			Mark:   oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			output, err := tc.op()
			require.NoError(t, err, tc.Mark)
			require.True(t, strings.HasPrefix(output, tc.prefix), "%s: %s", tc.Mark, output)
		})
	}
}

func TestDivTruncates(t *testing.T) {
	output, err := Div(2, 3)
	require.NoError(t, err)
	require.Equal(t, "0."+strings.Repeat("6", 80), output)

	output, err = Over("-1", "7")
	require.NoError(t, err)
	require.Equal(t, "-0.14285714285714285714285714285714285714285714285714285714285714285714285714285714", output)
}

func TestFailures(t *testing.T) {
	_, err := Div("-"+dividend, "0")
	require.True(t, ErrDivisionByZero.Has(err))

	_, err = Mod(dividend, 0)
	require.True(t, ErrDivisionByZero.Has(err))

	_, err = IDiv(dividend, "0x")
	require.True(t, ErrDivisionByZero.Has(err))

	_, err = Pow("-4", "0.3")
	require.True(t, ErrDomain.Has(err))

	_, err = Sqrt(-4)
	require.True(t, ErrDomain.Has(err))

	_, err = Ln(0)
	require.True(t, ErrDomain.Has(err))

	_, err = Log(8, 1)
	require.True(t, ErrDomain.Has(err))

	_, err = Add("1", "one")
	require.True(t, ErrInvalidNumber.Has(err))

	_, err = Add("one", "1")
	require.True(t, ErrInvalidNumber.Has(err))
}

func TestUnary(t *testing.T) {
	type TC struct {
		name   string
		op     func(v any) (string, error)
		input  any
		output string
		Mark   error
	}

	tcs := []TC{
		{name: "round", op: Round, input: "-59312.6144", output: "-59313", Mark: oops.New("unexpected")},
		{name: "round half", op: Round, input: "2.5", output: "3", Mark: oops.New("unexpected")},
		{name: "round down", op: Round, input: "59312.3144", output: "59312", Mark: oops.New("unexpected")},
		{name: "int", op: Int, input: "-59312.3144", output: "-59312", Mark: oops.New("unexpected")},
		{name: "int high fraction", op: Int, input: "59312.9", output: "59312", Mark: oops.New("unexpected")},
		{name: "abs", op: Abs, input: "-59312.3144", output: "59312.3144", Mark: oops.New("unexpected")},
		{name: "neg", op: Neg, input: "-59312.3144", output: "59312.3144", Mark: oops.New("unexpected")},
		{name: "negate", op: Negate, input: "0x10", output: "-16", Mark: oops.New("unexpected")},
		{name: "neg zero", op: Neg, input: 0, output: "0", Mark: oops.New("unexpected")},
		{name: "sqrt exact", op: Sqrt, input: "0x90", output: "12", Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			output, err := tc.op(tc.input)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.output, output, tc.Mark)
		})
	}
}

func TestCompare(t *testing.T) {
	type TC struct {
		a, b any
		cmp  int
		Mark error
	}

	tcs := []TC{
		{a: "-413.41", b: "-413.41001", cmp: 1, Mark: oops.New("unexpected")},
		{a: "-413.41", b: "413.41001", cmp: -1, Mark: oops.New("unexpected")},
		{a: "-413.41", b: "-413.41", cmp: 0, Mark: oops.New("unexpected")},
		{a: "0", b: "13141", cmp: -1, Mark: oops.New("unexpected")},
		{a: "0", b: "0", cmp: 0, Mark: oops.New("unexpected")},
		{a: "0x10", b: 16, cmp: 0, Mark: oops.New("unexpected")},
		{a: "1.500", b: 1.5, cmp: 0, Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%v<>%v", i, tc.a, tc.b), func(t *testing.T) {
			c, err := Cmp(tc.a, tc.b)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.cmp, c, tc.Mark)

			checks := []struct {
				op   func(a, b any) (bool, error)
				want bool
			}{
				{op: Eq, want: tc.cmp == 0},
				{op: Ne, want: tc.cmp != 0},
				{op: Gt, want: tc.cmp > 0},
				{op: Gte, want: tc.cmp >= 0},
				{op: Lt, want: tc.cmp < 0},
				{op: Lte, want: tc.cmp <= 0},
			}

			for j, check := range checks {
				ok, err := check.op(tc.a, tc.b)
				require.NoError(t, err, tc.Mark)
				require.Equal(t, check.want, ok, "%s: check %d", tc.Mark, j)
			}
		})
	}

	_, err := Eq("x", 1)
	require.True(t, ErrInvalidNumber.Has(err))
}

func TestAggregates(t *testing.T) {
	output, err := Min("491", "491.41")
	require.NoError(t, err)
	require.Equal(t, "491", output)

	output, err = Max("-491.001", "-491.1")
	require.NoError(t, err)
	require.Equal(t, "-491.001", output)

	output, err = Min(3, "0x1", []any{"0b11", -2.5})
	require.NoError(t, err)
	require.Equal(t, "-2.5", output)

	output, err = Max([]string{"1", "0x20", "31"})
	require.NoError(t, err)
	require.Equal(t, "32", output)

	_, err = Max()
	require.True(t, ErrInvalidNumber.Has(err))

	output, err = Sum()
	require.NoError(t, err)
	require.Equal(t, "0", output)

	output, err = Sum(1, "0x2", []any{3, []byte{4}}, []string{"0.5", "-0.25"})
	require.NoError(t, err)
	require.Equal(t, "10.25", output)

	_, err = Sum(1, nil)
	require.True(t, ErrInvalidNumber.Has(err))

	output, err = Clamp(5, 1, 3)
	require.NoError(t, err)
	require.Equal(t, "3", output)

	output, err = Clamp("-5", 1, 3)
	require.NoError(t, err)
	require.Equal(t, "1", output)

	output, err = Clamp("2.5", 1, 3)
	require.NoError(t, err)
	require.Equal(t, "2.5", output)

	_, err = Clamp(2, 3, 1)
	require.True(t, ErrDomain.Has(err))
}

func TestInspect(t *testing.T) {
	const n = "345.1312"

	sd, err := SD(n)
	require.NoError(t, err)
	require.Equal(t, 7, sd)

	sd, err = SD("1200")
	require.NoError(t, err)
	require.Equal(t, 2, sd)

	dp, err := DP(n)
	require.NoError(t, err)
	require.Equal(t, 4, dp)

	output, err := ToSD(n, 4)
	require.NoError(t, err)
	require.Equal(t, "345.1", output)

	output, err = ToDP(n, 2)
	require.NoError(t, err)
	require.Equal(t, "345.13", output)

	_, err = ToSD(n, 0)
	require.True(t, ErrDomain.Has(err))

	_, err = ToDP(n, -1)
	require.True(t, ErrDomain.Has(err))

	f, err := ToNumber(n)
	require.NoError(t, err)
	require.Equal(t, 345.1312, f)

	parts, err := Split("-" + n)
	require.NoError(t, err)
	require.Equal(t, Parts{Sign: "-", Integer: "345", Fraction: "1312"}, parts)

	parts, err = Split(7)
	require.NoError(t, err)
	require.Equal(t, Parts{Integer: "7"}, parts)

	for _, tc := range []struct {
		input any
		sign  int
	}{
		{input: "-413.41", sign: -1},
		{input: "413.41", sign: 1},
		{input: 0, sign: 1},
		{input: "-0", sign: 1},
	} {
		sign, err := Sign(tc.input)
		require.NoError(t, err)
		require.Equal(t, tc.sign, sign, tc.input)
	}
}

func TestCanonicalInputs(t *testing.T) {
	i, _ := new(big.Int).SetString(max256, 10)

	output, err := ToHex(i, natural)
	require.NoError(t, err)
	require.Equal(t, max256Hex, output)

	output, err = Add(*i, 1)
	require.NoError(t, err)
	require.Equal(t, pow256, output)
}

func TestAliases(t *testing.T) {
	canonical := map[string]bool{
		"expand": true,
		"add":    true,
		"sub":    true,
		"mul":    true,
		"div":    true,
		"neg":    true,
		"pow":    true,
		"tohex":  true,
	}

	for alias, name := range Aliases {
		require.True(t, canonical[name], alias)
		require.False(t, canonical[alias], alias)
	}
}
