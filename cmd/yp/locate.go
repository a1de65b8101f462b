package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/yamlptr"
)

func path(cfg *PathConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Path.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: path requires a position", cli.ErrUsage)
	}
	line, char, err := parsePosArg(args[0])
	if err != nil {
		return err
	}
	file, err := fileArg(args[1:])
	if err != nil {
		return err
	}
	res, err := cfg.parseInput(cc, file)
	if err != nil {
		return err
	}
	p, ok := res.PathForPosition(line, char)
	if !ok {
		return fmt.Errorf("no value at %s in %s", args[0], file)
	}
	out := p.String()
	if cfg.Pointer {
		out = p.Pointer()
	}
	_, err = fmt.Fprintln(cc.Out, out)
	return err
}

func loc(cfg *LocConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Loc.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: loc requires a path", cli.ErrUsage)
	}
	p, err := parsePathArg(args[0])
	if err != nil {
		return err
	}
	file, err := fileArg(args[1:])
	if err != nil {
		return err
	}
	res, err := cfg.parseInput(cc, file)
	if err != nil {
		return err
	}
	rng, ok := res.LocationForPath(p, cfg.Closest)
	if !ok {
		return fmt.Errorf("%s not found in %s", p, file)
	}
	_, err = fmt.Fprintf(cc.Out, "%s:%s\n", file, rangeString(rng))
	return err
}

func ranges(cfg *RangesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Ranges.Parse(cc, args)
	if err != nil {
		return err
	}
	file, err := fileArg(args)
	if err != nil {
		return err
	}
	res, err := cfg.parseInput(cc, file)
	if err != nil {
		return err
	}
	return cfg.encodeAny(cc, res.Ranges())
}

func block(cfg *BlockConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Block.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: block requires a path", cli.ErrUsage)
	}
	p, err := parsePathArg(args[0])
	if err != nil {
		return err
	}
	file, err := fileArg(args[1:])
	if err != nil {
		return err
	}
	res, err := cfg.parseInput(cc, file)
	if err != nil {
		return err
	}
	bt, ok := res.BlockScalarType(p)
	if !ok {
		return fmt.Errorf("%s is not a block scalar in %s", p, file)
	}
	return cfg.encodeAny(cc, bt)
}

func listComments(cfg *CommentsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Comments.Parse(cc, args)
	if err != nil {
		return err
	}
	file, err := fileArg(args)
	if err != nil {
		return err
	}
	res, err := cfg.parseInput(cc, file, yamlptr.AttachComments(true))
	if err != nil {
		return err
	}
	return cfg.encodeAny(cc, res.Comments)
}
