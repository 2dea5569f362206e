package bnstr

import "github.com/calebcase/bnstr/length"

// Aliases maps every alternate operation name to its canonical name.
var Aliases = map[string]string{
	"parse":         "expand",
	"plus":          "add",
	"minus":         "sub",
	"times":         "mul",
	"over":          "div",
	"negate":        "neg",
	"raise":         "pow",
	"tohexadecimal": "tohex",
}

// Parse is Expand.
func Parse(v any) (string, error) { return Expand(v) }

// Plus is Add.
func Plus(a, b any) (string, error) { return Add(a, b) }

// Minus is Sub.
func Minus(a, b any) (string, error) { return Sub(a, b) }

// Times is Mul.
func Times(a, b any) (string, error) { return Mul(a, b) }

// Over is Div.
func Over(a, b any) (string, error) { return Div(a, b) }

// Negate is Neg.
func Negate(v any) (string, error) { return Neg(v) }

// Raise is Pow.
func Raise(x, y any) (string, error) { return Pow(x, y) }

// ToHexadecimal is ToHex.
func ToHexadecimal(v any, l length.Spec) (string, error) { return ToHex(v, l) }
