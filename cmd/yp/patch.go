package main

import (
	"errors"
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/yamlptr"
	"github.com/signadot/yamlptr/patch"
)

func patchDoc(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file and optionally a file to which to apply it", cli.ErrUsage)
	}
	file, err := fileArg(args[1:])
	if err != nil {
		return err
	}
	if args[0] == "-" && file == "-" {
		return fmt.Errorf("%w: the patch and the document cannot both be read from stdin", cli.ErrUsage)
	}
	ops, err := getPatch(cc, args[0])
	if err != nil {
		return err
	}
	target, err := cfg.parseInput(cc, file)
	if err != nil {
		return err
	}
	if cfg.Loc {
		return locateOps(cc, file, target, ops)
	}
	res, err := patch.Apply(target.Value, ops)
	var opErr *patch.OpError
	if errors.As(err, &opErr) {
		if rng, _, ok := opErr.Op.Location(target); ok {
			return fmt.Errorf("%s:%s: %w", file, posString(rng.Start), err)
		}
	}
	if err != nil {
		return fmt.Errorf("error patching %s: %w", file, err)
	}
	return cfg.encode(cc, res)
}

func getPatch(cc *cli.Context, file string) ([]patch.Op, error) {
	d, err := readInput(cc, file)
	if err != nil {
		return nil, err
	}
	v, err := yamlptr.Parse(d)
	if err != nil {
		return nil, fmt.Errorf("error parsing patch %s: %w", file, err)
	}
	ops, err := patch.Decode(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", cli.ErrUsage, file, err)
	}
	return ops, nil
}

func locateOps(cc *cli.Context, file string, target *yamlptr.Result, ops []patch.Op) error {
	for i := range ops {
		op := &ops[i]
		where := "-"
		if rng, exact, ok := op.Location(target); ok {
			where = file + ":" + rangeString(rng)
			if !exact {
				where += " (closest)"
			}
		}
		if _, err := fmt.Fprintf(cc.Out, "%d %s %s %s\n", i, op.Kind, op.Path.Pointer(), where); err != nil {
			return err
		}
	}
	return nil
}
