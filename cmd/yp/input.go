package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/signadot/yamlptr"
	"github.com/signadot/yamlptr/encode"
	"github.com/signadot/yamlptr/ir"
	"github.com/signadot/yamlptr/jpath"
)

func readInput(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func (cfg *MainConfig) parseInput(cc *cli.Context, path string, extra ...yamlptr.ParseOption) (*yamlptr.Result, error) {
	d, err := readInput(cc, path)
	if err != nil {
		return nil, err
	}
	opts, err := cfg.parseOpts()
	if err != nil {
		return nil, err
	}
	res, err := yamlptr.ParseWithPointers(d, append(opts, extra...)...)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}
	return res, nil
}

// fileArg returns the single optional file argument of a command.
func fileArg(args []string) (string, error) {
	switch len(args) {
	case 0:
		return "-", nil
	case 1:
		return args[0], nil
	}
	return "", fmt.Errorf("%w: expected at most one file, got %v", cli.ErrUsage, args)
}

// parsePathArg accepts JSONPaths and JSON pointers.
func parsePathArg(a string) (jpath.Path, error) {
	var (
		p   jpath.Path
		err error
	)
	switch {
	case strings.HasPrefix(a, "$"):
		p, err = jpath.Parse(a)
	case a == "" || strings.HasPrefix(a, "#") || strings.HasPrefix(a, "/"):
		p, err = jpath.ParsePointer(a)
	default:
		p, err = jpath.Parse("$." + a)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return p, nil
}

// parsePosArg parses a one based line:col.
func parsePosArg(a string) (line, char int, err error) {
	l, c, ok := strings.Cut(a, ":")
	if ok {
		line, err = strconv.Atoi(l)
		if err == nil {
			char, err = strconv.Atoi(c)
		}
	}
	if !ok || err != nil || line < 1 || char < 1 {
		return 0, 0, fmt.Errorf("%w: expected line:col, got %q", cli.ErrUsage, a)
	}
	return line - 1, char - 1, nil
}

func (cfg *MainConfig) encode(cc *cli.Context, v *ir.Node, extra ...encode.EncodeOption) error {
	return encode.Encode(v, cc.Out, append(cfg.encOpts(), extra...)...)
}

// encodeAny encodes a go value by way of its json form.
func (cfg *MainConfig) encodeAny(cc *cli.Context, v any) error {
	d, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("internal error: %w", err)
	}
	n, err := ir.FromJSON(d)
	if err != nil {
		return fmt.Errorf("internal error: %w", err)
	}
	return cfg.encode(cc, n)
}
