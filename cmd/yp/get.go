package main

import (
	"errors"
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/yamlptr"
	"github.com/signadot/yamlptr/ir"
	"github.com/signadot/yamlptr/query"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a gjson path", cli.ErrUsage)
	}
	q := args[0]
	file, err := fileArg(args[1:])
	if err != nil {
		return err
	}
	res, err := cfg.parseInput(cc, file)
	if err != nil {
		return err
	}
	m, err := query.Get(res.Value, q)
	if err != nil {
		if errors.Is(err, query.ErrNotFound) {
			return cli.ExitCodeErr(1)
		}
		return fmt.Errorf("error querying %s with %s: %w", file, q, err)
	}
	if !cfg.Loc {
		return cfg.encode(cc, m.Value)
	}
	if m.Path == nil {
		return fmt.Errorf("%s does not select a single value of %s", q, file)
	}
	rng, ok := res.LocationForPath(m.Path, false)
	if !ok {
		return fmt.Errorf("%s not found in %s", m.Path, file)
	}
	_, err = fmt.Fprintf(cc.Out, "%s:%s %s\n", file, rangeString(rng), m.Path)
	return err
}

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	n := 2
	if cfg.Delete {
		n = 1
	}
	if len(args) < n {
		return fmt.Errorf("%w: set requires a path and a value, or -d and a path", cli.ErrUsage)
	}
	file, err := fileArg(args[n:])
	if err != nil {
		return err
	}
	res, err := cfg.parseInput(cc, file)
	if err != nil {
		return err
	}
	var out *ir.Node
	if cfg.Delete {
		out, err = query.Delete(res.Value, args[0])
	} else {
		var v *ir.Node
		v, err = setValue(cfg, args[1])
		if err != nil {
			return err
		}
		out, err = query.Set(res.Value, args[0], v)
	}
	if err != nil {
		return fmt.Errorf("error updating %s: %w", file, err)
	}
	return cfg.encode(cc, out)
}

func setValue(cfg *SetConfig, a string) (*ir.Node, error) {
	if cfg.String {
		return ir.FromString(a), nil
	}
	v, err := yamlptr.Parse([]byte(a))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return v, nil
}
