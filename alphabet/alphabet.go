// Package alphabet provides the fixed digit-symbol sets used for base
// conversion.
//
// An alphabet is an ordered sequence of distinct single byte symbols. The
// index of a symbol is its digit value and the number of symbols is the
// base. Symbols are bytes so the same alphabet type serves both textual
// numerals (hex, octal and binary digits) and raw element sequences (bits
// and bytes).
package alphabet

import "fmt"

// Alphabet is a digit-symbol set. Alphabets are immutable once created.
type Alphabet struct {
	name    string
	symbols []byte
	values  [256]int16
}

// New returns an alphabet over the given symbols. Aliases map additional
// symbols onto the values of existing ones for decoding only (for example
// upper case hex digits). New panics on duplicate symbols or when fewer
// than two symbols are given.
func New(name string, symbols []byte, aliases map[byte]byte) *Alphabet {
	if len(symbols) < 2 || len(symbols) > 256 {
		panic(fmt.Sprintf("alphabet %s: invalid base %d", name, len(symbols)))
	}

	a := &Alphabet{
		name:    name,
		symbols: append([]byte(nil), symbols...),
	}

	for i := range a.values {
		a.values[i] = -1
	}

	for i, s := range a.symbols {
		if a.values[s] != -1 {
			panic(fmt.Sprintf("alphabet %s: duplicate symbol %q", name, s))
		}

		a.values[s] = int16(i)
	}

	for alias, s := range aliases {
		if a.values[alias] != -1 {
			panic(fmt.Sprintf("alphabet %s: alias %q shadows a symbol", name, alias))
		}
		if a.values[s] == -1 {
			panic(fmt.Sprintf("alphabet %s: alias %q of unknown symbol %q", name, alias, s))
		}

		a.values[alias] = a.values[s]
	}

	return a
}

// Name returns the name of the alphabet.
func (a *Alphabet) Name() string { return a.name }

// Base returns the number of symbols.
func (a *Alphabet) Base() int { return len(a.symbols) }

// Zero returns the symbol for digit value zero. It is the only padding
// symbol.
func (a *Alphabet) Zero() byte { return a.symbols[0] }

// Symbol returns the symbol for digit value d. It panics when d is outside
// [0, Base()).
func (a *Alphabet) Symbol(d int) byte { return a.symbols[d] }

// Value returns the digit value of symbol s.
func (a *Alphabet) Value(s byte) (d int, ok bool) {
	v := a.values[s]
	if v < 0 {
		return 0, false
	}

	return int(v), true
}

func (a *Alphabet) String() string {
	return fmt.Sprintf("%s(%d)", a.name, len(a.symbols))
}

func upper(lower string) map[byte]byte {
	m := map[byte]byte{}
	for i := 0; i < len(lower); i++ {
		c := lower[i]
		if c >= 'a' && c <= 'z' {
			m[c-'a'+'A'] = c
		}
	}

	return m
}

func identity(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}

	return b
}

const hexDigits = "0123456789abcdef"

// Predefined alphabets.
var (
	// Hex renders lower case digits and decodes either case.
	Hex    = New("hex", []byte(hexDigits), upper(hexDigits))
	Octal  = New("octal", []byte("01234567"), nil)
	Binary = New("binary", []byte("01"), nil)

	// Bits uses the byte values 0 and 1 as its symbols.
	Bits = New("bits", identity(2), nil)

	// Bytes uses every byte value as the symbol of the same digit value.
	Bytes = New("bytes", identity(256), nil)
)
