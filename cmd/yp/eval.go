package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/yamlptr/eval"
	"github.com/signadot/yamlptr/ir"
)

func evalDoc(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	file, err := fileArg(args[1:])
	if err != nil {
		return err
	}
	res, err := cfg.parseInput(cc, file)
	if err != nil {
		return err
	}
	v, err := eval.Eval(res.Value, args[0], eval.Env(cfg.Env))
	if err != nil {
		return fmt.Errorf("error evaluating %q over %s: %w", args[0], file, err)
	}
	if err := cfg.encode(cc, v); err != nil {
		return err
	}
	if cfg.Exit && !ir.Truth(v) {
		return cli.ExitCodeErr(1)
	}
	return nil
}
