// Command bn runs bnstr operations from the command line.
//
//	bn [-config path] [-format text|json|table] [-group] [-v] <op> [-length N] args...
//
// For example:
//
//	$ bn add 0x8d75f7 1
//	9270776
//	$ bn tohex -length 4 255
//	0x00ff
//	$ bn -format table convert 4095
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/calebcase/oops"
	"github.com/zeebo/errs"
	"go.uber.org/zap"

	"github.com/calebcase/bnstr"
	"github.com/calebcase/bnstr/internal/config"
	"github.com/calebcase/bnstr/internal/log"
)

// Usage is the class of command line errors.
var Usage = errs.Class("usage")

// ErrArity is returned when an operation is given the wrong number of
// arguments.
var ErrArity = errors.New("wrong number of arguments")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func usage(fs *flag.FlagSet) func() {
	return func() {
		out := fs.Output()

		fmt.Fprintln(out, "usage: bn [flags] <op> [-length N] args...")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "flags:")
		fs.PrintDefaults()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "ops:")
		fmt.Fprintln(out, " ", strings.Join(opNames(), " "))
	}
}

func opNames() []string {
	names := make([]string, 0, len(ops)+len(bnstr.Aliases)+1)
	for name := range ops {
		names = append(names, name)
	}

	for alias := range bnstr.Aliases {
		names = append(names, alias)
	}

	names = append(names, "convert")
	sort.Strings(names)

	return names
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("bn", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = usage(fs)

	configPath := fs.String("config", "", "path to a TOML configuration file")
	format := fs.String("format", "", "output format: text, json, table")
	group := fs.Bool("group", false, "group the integer digits of results")
	verbose := fs.Bool("v", false, "log debug details to stderr")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "bn: %v\n", err)
		return 2
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			cfg.Output.Format = *format
		case "group":
			cfg.Output.Group = *group
		case "v":
			if *verbose {
				cfg.Log.Level = "debug"
			}
		}
	})

	switch cfg.Output.Format {
	case "text", "json", "table":
	default:
		fmt.Fprintf(stderr, "bn: unknown output format: %q\n", cfg.Output.Format)
		return 2
	}

	logger := log.Init(cfg.Log, stderr)
	defer func() { _ = logger.Sync() }()

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return 2
	}

	name := strings.ToLower(rest[0])
	if canonical, ok := bnstr.Aliases[name]; ok {
		logger.Debug("alias", zap.String("alias", name), zap.String("op", canonical))
		name = canonical
	}

	out := &printer{
		w:      stdout,
		format: cfg.Output.Format,
		group:  cfg.Output.Group,
	}

	if name == "convert" {
		err = runConvert(rest[1:], out, stderr)
	} else {
		err = runOp(name, rest[1:], out, stderr)
	}

	if err != nil {
		logger.Debug("failed", zap.String("op", name), zap.String("trace", fmt.Sprintf("%+v", err)))
		fmt.Fprintf(stderr, "bn: %v\n", err)

		if Usage.Has(err) {
			return 2
		}

		return 1
	}

	logger.Debug("done", zap.String("op", name))

	return 0
}

func runOp(name string, args []string, out *printer, stderr io.Writer) error {
	o, ok := ops[name]
	if !ok {
		return Usage.New("unknown op: %q", name)
	}

	// Only encoders parse flags. Other ops take "-5" as an argument.
	var n int
	if o.length {
		fs := flag.NewFlagSet(name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		fs.IntVar(&n, "length", 0, "digits to keep: positive keeps the low digits, negative the high digits")

		if err := fs.Parse(args); err != nil {
			return Usage.Wrap(err)
		}

		args = fs.Args()
	}

	if o.arity >= 0 && len(args) != o.arity {
		return Usage.Wrap(oops.Trace(ErrArity))
	}

	zap.L().Debug("call", zap.String("op", name), zap.Strings("args", args), zap.Int("length", n))

	result, err := o.call(args, n)
	if err != nil {
		return err
	}

	return out.result(name, result, !o.length)
}

func runConvert(args []string, out *printer, stderr io.Writer) error {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(stderr)

	n := fs.Int("length", 0, "digits to keep in each encoding")

	if err := fs.Parse(args); err != nil {
		return Usage.Wrap(err)
	}

	if fs.NArg() != 1 {
		return Usage.Wrap(oops.Trace(ErrArity))
	}

	rows, err := convert(fs.Arg(0), *n)
	if err != nil {
		return err
	}

	return out.rows(rows)
}
