package decimal

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd"
	"github.com/zeebo/errs"

	"github.com/calebcase/bnstr/numerr"
)

// Precision is the working precision in significant digits.
const Precision = 80

// Error is the class of engine failures not covered by the numerr classes.
var Error = errs.Class("decimal")

var (
	// context is shared by every operation and must never be modified.
	// Results are cut off at Precision digits, not rounded.
	context = truncating(Precision)

	// wide carries guard digits for the transcendental operations. Their
	// results pass through settle.
	wide = apd.BaseContext.WithPrecision(Precision + 10)

	// guard drops the unreliable trailing guard digits of a wide result.
	guard = apd.BaseContext.WithPrecision(Precision + 5)

	zero = &apd.Decimal{}
	ten  = big.NewInt(10)
	half = &apd.Decimal{Coeff: *big.NewInt(5), Exponent: -1}
)

// Value is an immutable arbitrary-precision signed decimal number in
// canonical form. The zero Value is 0.
type Value struct {
	d *apd.Decimal
}

// Zero is the number 0.
var Zero = Value{}

// canonical takes ownership of d and returns it as a Value.
func canonical(d *apd.Decimal) Value {
	if d.Coeff.Sign() == 0 {
		d.Negative = false
		d.Exponent = 0

		return Value{d: d}
	}

	var q, r big.Int
	for {
		q.QuoRem(&d.Coeff, ten, &r)
		if r.Sign() != 0 {
			break
		}

		d.Coeff.Set(&q)
		d.Exponent++
	}

	return Value{d: d}
}

func (v Value) dec() *apd.Decimal {
	if v.d == nil {
		return zero
	}

	return v.d
}

func check(_ apd.Condition, err error) error {
	if err != nil {
		return Error.Wrap(err)
	}

	return nil
}

// Parse parses a decimal numeral: an optional sign, integer digits, an
// optional fraction and an optional exponent.
func Parse(s string) (Value, error) {
	body := s
	if isSign(body) {
		body = body[1:]
	}

	if isSign(body) {
		return Zero, numerr.InvalidNumber.New("cannot parse number %q", s)
	}

	num := strings.TrimPrefix(s, "+")

	d, _, err := apd.NewFromString(num)
	if err != nil {
		return Zero, numerr.InvalidNumber.New("cannot parse number %q", s)
	}

	if d.Form != apd.Finite {
		return Zero, numerr.InvalidNumber.New("cannot parse number %q", s)
	}

	return canonical(d), nil
}

func isSign(s string) bool {
	return len(s) > 0 && (s[0] == '+' || s[0] == '-')
}

// MustParse is Parse for constants. It panics on error.
func MustParse(s string) Value {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return v
}

// FromBigInt returns the value of i.
func FromBigInt(i *big.Int) Value {
	d := &apd.Decimal{}
	d.Coeff.Abs(i)
	d.Negative = i.Sign() < 0

	return canonical(d)
}

// FromInt64 returns the value of v.
func FromInt64(v int64) Value {
	return FromBigInt(big.NewInt(v))
}

// FromUint64 returns the value of v.
func FromUint64(v uint64) Value {
	return FromBigInt(new(big.Int).SetUint64(v))
}

// FromFloat64 returns the value of the shortest decimal that round-trips to
// f. NaN and infinities are invalid numbers.
func FromFloat64(f float64) (Value, error) {
	return fromFloat(f, 64)
}

// FromFloat32 is FromFloat64 for float32.
func FromFloat32(f float32) (Value, error) {
	return fromFloat(float64(f), 32)
}

func fromFloat(f float64, bits int) (Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Zero, numerr.InvalidNumber.New("cannot parse number %v", f)
	}

	return Parse(strconv.FormatFloat(f, 'g', -1, bits))
}

// FromAPD returns a copy of d as a Value. Only finite decimals are valid.
func FromAPD(d *apd.Decimal) (Value, error) {
	if d == nil || d.Form != apd.Finite {
		return Zero, numerr.InvalidNumber.New("cannot use decimal %v", d)
	}

	return canonical(new(apd.Decimal).Set(d)), nil
}

// APD returns a copy of the engine representation of v.
func (v Value) APD() *apd.Decimal {
	return new(apd.Decimal).Set(v.dec())
}

// String returns v in fixed-point notation.
func (v Value) String() string {
	return v.dec().Text('f')
}

// Sign returns -1, 0 or +1.
func (v Value) Sign() int { return v.dec().Sign() }

// IsZero returns true if v is 0.
func (v Value) IsZero() bool { return v.Sign() == 0 }

// IsInteger returns true if v has no fractional part.
func (v Value) IsInteger() bool { return v.dec().Exponent >= 0 }

// Cmp returns -1, 0 or +1 when v is less than, equal to or greater than w.
func (v Value) Cmp(w Value) int { return v.dec().Cmp(w.dec()) }

// Digits returns the number of significant digits of v. Zero has one.
func (v Value) Digits() int { return numDigits(v.dec()) }

// Places returns the number of decimal places of v.
func (v Value) Places() int {
	if e := v.dec().Exponent; e < 0 {
		return int(-e)
	}

	return 0
}

// BigInt returns v as an integer. It returns false when v has a fractional
// part.
func (v Value) BigInt() (*big.Int, bool) {
	d := v.dec()
	if d.Exponent < 0 {
		return nil, false
	}

	i := new(big.Int).Set(&d.Coeff)
	if d.Exponent > 0 {
		i.Mul(i, new(big.Int).Exp(ten, big.NewInt(int64(d.Exponent)), nil))
	}

	if d.Negative {
		i.Neg(i)
	}

	return i, true
}

// Float64 returns the nearest float64. Precision beyond float64 is lost and
// values outside its range become infinities.
func (v Value) Float64() float64 {
	f, _ := strconv.ParseFloat(v.String(), 64)

	return f
}

// Parts is a numeral split at its decimal point.
type Parts struct {
	Sign     string
	Integer  string
	Fraction string
}

// Split returns the parts of the fixed-point numeral of v.
func (v Value) Split() Parts {
	s := v.String()

	var p Parts
	if strings.HasPrefix(s, "-") {
		p.Sign, s = "-", s[1:]
	}

	p.Integer, p.Fraction, _ = strings.Cut(s, ".")

	return p
}

func numDigits(d *apd.Decimal) int {
	return len(d.Coeff.String())
}

// integerDigits returns the number of digits left of the decimal point. It
// is zero or negative for values below one.
func integerDigits(d *apd.Decimal) int {
	return numDigits(d) + int(d.Exponent)
}

func derive(p int) *apd.Context {
	if p < Precision {
		p = Precision
	}

	return apd.BaseContext.WithPrecision(uint32(p))
}

func truncating(p uint32) *apd.Context {
	c := apd.BaseContext.WithPrecision(p)
	c.Rounding = apd.RoundDown

	return c
}

// settle cuts a result computed under wide down to Precision digits. The
// guard digits are rounded first so an exact result such as 4 ^ 0.5 stays
// exact.
func settle(z *apd.Decimal) (Value, error) {
	var g apd.Decimal
	if err := check(guard.Round(&g, z)); err != nil {
		return Zero, err
	}

	d := &apd.Decimal{}
	if err := check(context.Round(d, &g)); err != nil {
		return Zero, err
	}

	return canonical(d), nil
}

// Add returns v + w.
func (v Value) Add(w Value) (Value, error) {
	d := &apd.Decimal{}
	if err := check(context.Add(d, v.dec(), w.dec())); err != nil {
		return Zero, err
	}

	return canonical(d), nil
}

// Sub returns v - w.
func (v Value) Sub(w Value) (Value, error) {
	d := &apd.Decimal{}
	if err := check(context.Sub(d, v.dec(), w.dec())); err != nil {
		return Zero, err
	}

	return canonical(d), nil
}

// Mul returns v * w.
func (v Value) Mul(w Value) (Value, error) {
	d := &apd.Decimal{}
	if err := check(context.Mul(d, v.dec(), w.dec())); err != nil {
		return Zero, err
	}

	return canonical(d), nil
}

// Quo returns v / w cut off at Precision significant digits.
func (v Value) Quo(w Value) (Value, error) {
	if w.IsZero() {
		return Zero, numerr.DivisionByZero.New("%s / 0", v)
	}

	d := &apd.Decimal{}
	if err := check(context.Quo(d, v.dec(), w.dec())); err != nil {
		return Zero, err
	}

	return canonical(d), nil
}

// remContext returns a context wide enough to hold the integer quotient of
// v / w and the remainder exactly.
func remContext(v, w Value) *apd.Context {
	x, y := v.dec(), w.dec()

	spread := int(x.Exponent) - int(y.Exponent)
	if spread < 0 {
		spread = -spread
	}

	return derive(numDigits(x) + numDigits(y) + spread + 1)
}

// QuoInteger returns v / w truncated toward zero.
func (v Value) QuoInteger(w Value) (Value, error) {
	if w.IsZero() {
		return Zero, numerr.DivisionByZero.New("%s / 0", v)
	}

	d := &apd.Decimal{}
	if err := check(remContext(v, w).QuoInteger(d, v.dec(), w.dec())); err != nil {
		return Zero, err
	}

	return canonical(d), nil
}

// Rem returns the remainder of v / w. The sign of the result follows v.
func (v Value) Rem(w Value) (Value, error) {
	if w.IsZero() {
		return Zero, numerr.DivisionByZero.New("%s mod 0", v)
	}

	d := &apd.Decimal{}
	if err := check(remContext(v, w).Rem(d, v.dec(), w.dec())); err != nil {
		return Zero, err
	}

	return canonical(d), nil
}

// Pow returns v raised to w. A negative v with a non-integer w has no real
// result.
func (v Value) Pow(w Value) (Value, error) {
	switch {
	case v.Sign() < 0 && !w.IsInteger():
		return Zero, numerr.Domain.New("%s ^ %s is not real", v, w)
	case v.IsZero() && w.Sign() < 0:
		return Zero, numerr.DivisionByZero.New("0 ^ %s", w)
	}

	if w.IsInteger() {
		d := &apd.Decimal{}
		if err := check(context.Pow(d, v.dec(), w.dec())); err != nil {
			return Zero, err
		}

		return canonical(d), nil
	}

	var z apd.Decimal
	if err := check(wide.Pow(&z, v.dec(), w.dec())); err != nil {
		return Zero, err
	}

	return settle(&z)
}

// Sqrt returns the square root of v. It is equivalent to v ^ 0.5.
func (v Value) Sqrt() (Value, error) {
	if v.Sign() < 0 {
		return Zero, numerr.Domain.New("%s ^ %s is not real", v, Value{d: half})
	}

	var z apd.Decimal
	if err := check(wide.Sqrt(&z, v.dec())); err != nil {
		return Zero, err
	}

	return settle(&z)
}

// Ln returns the natural logarithm of v.
func (v Value) Ln() (Value, error) {
	if v.Sign() <= 0 {
		return Zero, numerr.Domain.New("ln(%s) is not real", v)
	}

	var z apd.Decimal
	if err := check(wide.Ln(&z, v.dec())); err != nil {
		return Zero, err
	}

	return settle(&z)
}

// Log returns the logarithm of v in the given base.
func (v Value) Log(base Value) (Value, error) {
	switch {
	case v.Sign() <= 0:
		return Zero, numerr.Domain.New("log(%s) is not real", v)
	case base.Sign() <= 0:
		return Zero, numerr.Domain.New("log base %s is not real", base)
	case base.Cmp(FromInt64(1)) == 0:
		return Zero, numerr.Domain.New("log base 1 is undefined")
	}

	var n, m, q apd.Decimal
	if err := check(wide.Ln(&n, v.dec())); err != nil {
		return Zero, err
	}
	if err := check(wide.Ln(&m, base.dec())); err != nil {
		return Zero, err
	}
	if err := check(wide.Quo(&q, &n, &m)); err != nil {
		return Zero, err
	}

	return settle(&q)
}

// Exp returns e raised to v.
func (v Value) Exp() (Value, error) {
	var z apd.Decimal
	if err := check(wide.Exp(&z, v.dec())); err != nil {
		return Zero, err
	}

	return settle(&z)
}

// Neg returns -v.
func (v Value) Neg() Value {
	d := new(apd.Decimal).Set(v.dec())
	d.Negative = !d.Negative

	return canonical(d)
}

// Abs returns |v|.
func (v Value) Abs() Value {
	d := new(apd.Decimal).Set(v.dec())
	d.Negative = false

	return canonical(d)
}

// Trunc returns the integer part of v, rounding toward zero.
func (v Value) Trunc() (Value, error) {
	if v.IsInteger() {
		return v, nil
	}

	c := derive(integerDigits(v.dec()) + 1)
	c.Rounding = apd.RoundDown

	d := &apd.Decimal{}
	if err := check(c.Quantize(d, v.dec(), 0)); err != nil {
		return Zero, err
	}

	return canonical(d), nil
}

// RoundPlaces returns v rounded half away from zero to n decimal places.
func (v Value) RoundPlaces(n int) (Value, error) {
	if n < 0 {
		return Zero, numerr.Domain.New("invalid decimal places %d", n)
	}

	if v.Places() <= n {
		return v, nil
	}

	c := derive(integerDigits(v.dec()) + n + 1)

	d := &apd.Decimal{}
	if err := check(c.Quantize(d, v.dec(), int32(-n))); err != nil {
		return Zero, err
	}

	return canonical(d), nil
}

// RoundDigits returns v rounded half away from zero to n significant digits.
func (v Value) RoundDigits(n int) (Value, error) {
	if n < 1 {
		return Zero, numerr.Domain.New("invalid significant digits %d", n)
	}

	if v.Digits() <= n {
		return v, nil
	}

	c := apd.BaseContext.WithPrecision(uint32(n))

	d := &apd.Decimal{}
	if err := check(c.Round(d, v.dec())); err != nil {
		return Zero, err
	}

	return canonical(d), nil
}
