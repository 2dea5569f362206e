package main

import (
	"strconv"

	"github.com/calebcase/bnstr"
	"github.com/calebcase/bnstr/length"
)

type op struct {
	// arity is the number of arguments or -1 for any number.
	arity int

	// length registers the -length flag.
	length bool

	call func(args []string, n int) (any, error)
}

func unary(f func(v any) (string, error)) op {
	return op{arity: 1, call: func(args []string, _ int) (any, error) { return f(args[0]) }}
}

func binary(f func(a, b any) (string, error)) op {
	return op{arity: 2, call: func(args []string, _ int) (any, error) { return f(args[0], args[1]) }}
}

func predicate(f func(a, b any) (bool, error)) op {
	return op{arity: 2, call: func(args []string, _ int) (any, error) { return f(args[0], args[1]) }}
}

func variadic(f func(vals ...any) (string, error)) op {
	return op{arity: -1, call: func(args []string, _ int) (any, error) { return f(anys(args)...) }}
}

func encoder(f func(v any, l length.Spec) (string, error)) op {
	return op{arity: 1, length: true, call: func(args []string, n int) (any, error) { return f(args[0], length.Of(n)) }}
}

func rounder(f func(v any, n int) (string, error)) op {
	return op{arity: 2, call: func(args []string, _ int) (any, error) {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return nil, Usage.New("invalid count %q", args[1])
		}

		return f(args[0], n)
	}}
}

func counter(f func(v any) (int, error)) op {
	return op{arity: 1, call: func(args []string, _ int) (any, error) { return f(args[0]) }}
}

func comparer(f func(a, b any) (int, error)) op {
	return op{arity: 2, call: func(args []string, _ int) (any, error) { return f(args[0], args[1]) }}
}

func anys(args []string) []any {
	vals := make([]any, len(args))
	for i, a := range args {
		vals[i] = a
	}

	return vals
}

var ops = map[string]op{
	"expand": unary(bnstr.Expand),
	"add":    binary(bnstr.Add),
	"sub":    binary(bnstr.Sub),
	"mul":    binary(bnstr.Mul),
	"div":    binary(bnstr.Div),
	"idiv":   binary(bnstr.IDiv),
	"mod":    binary(bnstr.Mod),
	"pow":    binary(bnstr.Pow),
	"sqrt":   unary(bnstr.Sqrt),
	"log":    binary(bnstr.Log),
	"ln":     unary(bnstr.Ln),
	"exp":    unary(bnstr.Exp),
	"neg":    unary(bnstr.Neg),
	"abs":    unary(bnstr.Abs),
	"int":    unary(bnstr.Int),
	"round":  unary(bnstr.Round),
	"sign":   counter(bnstr.Sign),
	"eq":     predicate(bnstr.Eq),
	"ne":     predicate(bnstr.Ne),
	"gt":     predicate(bnstr.Gt),
	"gte":    predicate(bnstr.Gte),
	"lt":     predicate(bnstr.Lt),
	"lte":    predicate(bnstr.Lte),
	"cmp":    comparer(bnstr.Cmp),
	"sum":    variadic(bnstr.Sum),
	"min":    variadic(bnstr.Min),
	"max":    variadic(bnstr.Max),
	"clamp": {arity: 3, call: func(args []string, _ int) (any, error) {
		return bnstr.Clamp(args[0], args[1], args[2])
	}},
	"split": {arity: 1, call: func(args []string, _ int) (any, error) {
		return bnstr.Split(args[0])
	}},
	"sd":       counter(bnstr.SD),
	"tosd":     rounder(bnstr.ToSD),
	"dp":       counter(bnstr.DP),
	"todp":     rounder(bnstr.ToDP),
	"tonumber": {arity: 1, call: func(args []string, _ int) (any, error) { return bnstr.ToNumber(args[0]) }},
	"tohex":    encoder(bnstr.ToHex),
	"tooctal":  encoder(bnstr.ToOctal),
	"tobinary": encoder(bnstr.ToBinary),
	"tobits": {arity: 1, length: true, call: func(args []string, n int) (any, error) {
		return bnstr.ToBits(args[0], length.Of(n))
	}},
	"tobuffer": {arity: 1, length: true, call: func(args []string, n int) (any, error) {
		return bnstr.ToBuffer(args[0], length.Of(n))
	}},
	"frombits": {arity: 1, call: func(args []string, _ int) (any, error) {
		bits, err := parseBits(args[0])
		if err != nil {
			return nil, err
		}

		return bnstr.FromBits(bits)
	}},
}

// parseBits reads a string of 0 and 1 characters.
func parseBits(s string) (bnstr.Bits, error) {
	bits := make(bnstr.Bits, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			bits[i] = 0
		case '1':
			bits[i] = 1
		default:
			return nil, bnstr.ErrInvalidNumber.New("%q at %d is not a bit", s[i], i)
		}
	}

	return bits, nil
}

// conversion is one rendition of a value.
type conversion struct {
	Base  string `json:"base"`
	Value string `json:"value"`
}

func convert(v string, n int) ([]conversion, error) {
	l := length.Of(n)

	dec, err := bnstr.Expand(v)
	if err != nil {
		return nil, err
	}

	hex, err := bnstr.ToHex(v, l)
	if err != nil {
		return nil, err
	}

	oct, err := bnstr.ToOctal(v, l)
	if err != nil {
		return nil, err
	}

	bin, err := bnstr.ToBinary(v, l)
	if err != nil {
		return nil, err
	}

	buf, err := bnstr.ToBuffer(v, l)
	if err != nil {
		return nil, err
	}

	return []conversion{
		{Base: "decimal", Value: dec},
		{Base: "hex", Value: hex},
		{Base: "octal", Value: oct},
		{Base: "binary", Value: bin},
		{Base: "buffer", Value: formatBytes(buf)},
	}, nil
}
