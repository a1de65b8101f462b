package main

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/signadot/yamlptr"
	"github.com/signadot/yamlptr/encode"
	"github.com/signadot/yamlptr/ir"
	"github.com/signadot/yamlptr/libdiff"
)

func fmtDoc(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Indent < 1 {
		return fmt.Errorf("%w: -indent must be positive", cli.ErrUsage)
	}
	file, err := fileArg(args)
	if err != nil {
		return err
	}
	src, err := readInput(cc, file)
	if err != nil {
		return err
	}
	opts, err := cfg.parseOpts()
	if err != nil {
		return err
	}
	res, err := yamlptr.ParseWithPointers(src, append(opts, yamlptr.AttachComments(cfg.Comments))...)
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", file, err)
	}
	buf := &bytes.Buffer{}
	encOpts := append(cfg.encOpts(),
		encode.Indent(cfg.Indent),
		encode.EncodeFlow(cfg.Flow),
		encode.EncodeComments(res.Comments))
	if err := encode.Encode(res.Value, buf, encOpts...); err != nil {
		return fmt.Errorf("error encoding %s: %w", file, err)
	}
	if err := roundTrip(res.Value, buf.Bytes(), opts); err != nil {
		return fmt.Errorf("error formatting %s: %w", file, err)
	}
	if !cfg.Diff {
		_, err := cc.Out.Write(buf.Bytes())
		return err
	}
	lines := libdiff.Lines(string(src), buf.String())
	if !libdiff.Changed(lines) {
		return nil
	}
	if _, err := fmt.Fprintf(cc.Out, "--- %s\n+++ %s (formatted)\n", file, file); err != nil {
		return err
	}
	if err := libdiff.Write(cc.Out, libdiff.Hunks(lines, max(0, cfg.Context)), diffPainter(cfg.colors(cc.Out))); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

// roundTrip checks that formatted parses back to v.
func roundTrip(v *ir.Node, formatted []byte, opts []yamlptr.ParseOption) error {
	back, err := yamlptr.Parse(formatted, opts...)
	if err != nil {
		return err
	}
	if !ir.SameValue(v, back) {
		return errors.New("the formatted document has a different value")
	}
	return nil
}

func diffPainter(colors bool) func(libdiff.Op, string) string {
	if !colors {
		return nil
	}
	del := color.New(color.FgRed)
	ins := color.New(color.FgGreen)
	del.EnableColor()
	ins.EnableColor()
	return func(op libdiff.Op, s string) string {
		switch op {
		case libdiff.Delete:
			return del.Sprint(s)
		case libdiff.Insert:
			return ins.Sprint(s)
		}
		return s
	}
}
