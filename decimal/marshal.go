package decimal

import (
	"bytes"
	"database/sql/driver"
	"math"

	"github.com/cockroachdb/apd"
	"github.com/goccy/go-json"

	"github.com/calebcase/bnstr/integer"
	"github.com/calebcase/bnstr/numerr"
)

// MarshalText implements encoding.TextMarshaler.
func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Value) UnmarshalText(text []byte) error {
	p, err := Parse(string(text))
	if err != nil {
		return err
	}

	*v = p

	return nil
}

// MarshalJSON implements json.Marshaler. The numeral is quoted so no
// precision is lost by decoders that read numbers as floats.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// UnmarshalJSON implements json.Unmarshaler. Both quoted numerals and bare
// JSON numbers are accepted. A null leaves v unchanged.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return numerr.InvalidNumber.Wrap(err)
		}

		return v.UnmarshalText([]byte(s))
	}

	return v.UnmarshalText(data)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (v Value) MarshalBinary() (data []byte, err error) {
	defer Error.WrapP(&err)

	d := v.dec()

	coeff, err := integer.Block{
		Value:    d.Coeff.Bytes(),
		Negative: d.Negative,
	}.MarshalBinary()
	if err != nil {
		return nil, err
	}

	exp, err := integer.FromInt64(int64(d.Exponent)).MarshalBinary()
	if err != nil {
		return nil, err
	}

	data = make([]byte, 0, len(coeff)+len(exp)+1)
	data = append(data, coeff...)
	data = append(data, exp...)
	data = append(data, byte(len(exp)))

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (v *Value) UnmarshalBinary(data []byte) (err error) {
	defer Error.WrapP(&err)

	if len(data) < 3 {
		return Error.New("short data: %d bytes", len(data))
	}

	n := int(data[len(data)-1])
	if n < 1 || n > 5 || n > len(data)-2 {
		return Error.New("invalid exponent length: %d", n)
	}

	split := len(data) - 1 - n

	var coeff, exp integer.Block

	err = coeff.UnmarshalBinary(data[:split])
	if err != nil {
		return err
	}

	err = exp.UnmarshalBinary(data[split : len(data)-1])
	if err != nil {
		return err
	}

	e, err := exp.Int64()
	if err != nil {
		return err
	}

	if e < math.MinInt32 || e > math.MaxInt32 {
		return Error.New("exponent out of range: %d", e)
	}

	d := &apd.Decimal{
		Negative: coeff.Negative,
		Exponent: int32(e),
	}
	d.Coeff.SetBytes(coeff.Value)

	*v = canonical(d)

	return nil
}

// Scan implements sql.Scanner.
func (v *Value) Scan(src any) error {
	switch s := src.(type) {
	case string:
		return v.UnmarshalText([]byte(s))
	case []byte:
		return v.UnmarshalText(s)
	case int64:
		*v = FromInt64(s)

		return nil
	case float64:
		f, err := FromFloat64(s)
		if err != nil {
			return err
		}

		*v = f

		return nil
	}

	return numerr.InvalidNumber.New("cannot scan %T", src)
}

// Value implements driver.Valuer.
func (v Value) Value() (driver.Value, error) {
	return v.String(), nil
}
