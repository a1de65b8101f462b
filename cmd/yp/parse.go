package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/yamlptr"
	"github.com/signadot/yamlptr/diag"
	"github.com/signadot/yamlptr/encode"
)

func parseDocs(cfg *ParseConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Parse.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	blocking := false
	for i, file := range args {
		b, err := parseDoc(cfg, cc, file)
		if err != nil {
			return err
		}
		blocking = blocking || b
		if i < len(args)-1 {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
	}
	if blocking {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func parseDoc(cfg *ParseConfig, cc *cli.Context, file string) (bool, error) {
	res, err := cfg.parseInput(cc, file, yamlptr.AttachComments(cfg.Comments))
	if err != nil {
		return false, err
	}
	if cfg.Diags {
		return diag.Blocking(res.Diagnostics), cfg.encodeAny(cc, res.Diagnostics)
	}
	if !cfg.Quiet {
		p := newDiagPrinter(os.Stderr, cfg.colors(os.Stderr))
		if err := p.print(file, res.Diagnostics); err != nil {
			return false, err
		}
	}
	if err := cfg.encode(cc, res.Value, encode.EncodeComments(res.Comments)); err != nil {
		return false, fmt.Errorf("error encoding %s: %w", file, err)
	}
	return diag.Blocking(res.Diagnostics), nil
}
