package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"go.lsp.dev/protocol"

	"github.com/signadot/yamlptr/diag"
)

type diagPrinter struct {
	w                  io.Writer
	err, warn, hint, p *color.Color
}

func newDiagPrinter(w io.Writer, colors bool) *diagPrinter {
	p := &diagPrinter{
		w:    w,
		err:  color.New(color.FgRed, color.Bold),
		warn: color.New(color.FgYellow),
		hint: color.New(color.FgCyan),
		p:    color.RGB(128, 168, 196),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.hint, p.p} {
		if colors {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p *diagPrinter) severity(s protocol.DiagnosticSeverity) string {
	name := diag.SeverityName(s)
	switch s {
	case protocol.DiagnosticSeverityError:
		return p.err.Sprint(name)
	case protocol.DiagnosticSeverityWarning:
		return p.warn.Sprint(name)
	}
	return p.hint.Sprint(name)
}

func (p *diagPrinter) print(file string, ds []diag.Diagnostic) error {
	for i := range ds {
		d := &ds[i]
		_, err := fmt.Fprintf(p.w, "%s:%s: %s: %s (%s)", file, posString(d.Range.Start),
			p.severity(d.Severity), d.Message, d.Code)
		if err != nil {
			return err
		}
		if len(d.Path) != 0 {
			fmt.Fprintf(p.w, " at %s", p.p.Sprint(d.Path))
		}
		if _, err := fmt.Fprintln(p.w); err != nil {
			return err
		}
	}
	return nil
}

func posString(pos protocol.Position) string {
	return fmt.Sprintf("%d:%d", pos.Line+1, pos.Character+1)
}

func rangeString(r protocol.Range) string {
	return posString(r.Start) + "-" + posString(r.End)
}
