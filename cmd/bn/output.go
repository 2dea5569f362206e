package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"math/big"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/goccy/go-json"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/calebcase/bnstr"
)

type printer struct {
	w      io.Writer
	format string
	group  bool
}

type parts struct {
	Sign     string `json:"sign"`
	Integer  string `json:"integer"`
	Fraction string `json:"fraction"`
}

type opResult struct {
	Op     string `json:"op"`
	Result any    `json:"result"`
}

func formatBytes(buf []byte) string {
	return hex.EncodeToString(buf)
}

func formatBits(bits bnstr.Bits) string {
	b := make([]byte, len(bits))
	for i, bit := range bits {
		b[i] = '0' + bit
	}

	return string(b)
}

// groupDigits inserts thousands separators into the integer part of a
// numeral.
func groupDigits(numeral string) string {
	p, err := bnstr.Split(numeral)
	if err != nil {
		return numeral
	}

	i, ok := new(big.Int).SetString(p.Integer, 10)
	if !ok {
		return numeral
	}

	s := p.Sign + humanize.BigComma(i)
	if p.Fraction != "" {
		s += "." + p.Fraction
	}

	return s
}

// normalize converts a result into the value that is printed.
func (p *printer) normalize(result any, numeral bool) any {
	switch r := result.(type) {
	case string:
		if numeral && p.group {
			return groupDigits(r)
		}

		return r
	case bnstr.Bits:
		return formatBits(r)
	case []byte:
		return formatBytes(r)
	case bnstr.Parts:
		return parts{Sign: r.Sign, Integer: r.Integer, Fraction: r.Fraction}
	}

	return result
}

func text(v any) string {
	switch r := v.(type) {
	case string:
		return r
	case float64:
		return strconv.FormatFloat(r, 'g', -1, 64)
	case parts:
		return fmt.Sprintf("sign=%q integer=%q fraction=%q", r.Sign, r.Integer, r.Fraction)
	}

	return fmt.Sprint(v)
}

func (p *printer) result(name string, result any, numeral bool) error {
	v := p.normalize(result, numeral)

	switch p.format {
	case "json":
		return p.writeJSON(opResult{Op: name, Result: v})
	case "table":
		return p.writeTable([]string{"op", "result"}, [][]string{{name, text(v)}})
	}

	_, err := fmt.Fprintln(p.w, text(v))

	return err
}

func (p *printer) rows(rows []conversion) error {
	if p.group {
		rows[0].Value = groupDigits(rows[0].Value)
	}

	switch p.format {
	case "json":
		return p.writeJSON(rows)
	case "table":
		data := make([][]string, 0, len(rows))
		for _, r := range rows {
			data = append(data, []string{r.Base, r.Value})
		}

		return p.writeTable([]string{"base", "value"}, data)
	}

	for _, r := range rows {
		if _, err := fmt.Fprintf(p.w, "%s: %s\n", r.Base, r.Value); err != nil {
			return err
		}
	}

	return nil
}

func (p *printer) writeJSON(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(p.w, string(data))

	return err
}

func (p *printer) writeTable(header []string, data [][]string) error {
	md := renderer.NewMarkdown(
		tw.Rendition{
			Borders: tw.Border{
				Left:   tw.Off,
				Right:  tw.Off,
				Top:    tw.Off,
				Bottom: tw.Off,
			},
		},
	)

	var buf bytes.Buffer
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(md),
		tablewriter.WithHeaderAutoFormat(tw.Off),
		tablewriter.WithHeaderAlignment(tw.AlignNone),
		tablewriter.WithRowAlignment(tw.AlignNone),
	)
	table.Header(header)

	if err := table.Bulk(data); err != nil {
		return err
	}

	if err := table.Render(); err != nil {
		return err
	}

	_, err := p.w.Write(buf.Bytes())

	return err
}
