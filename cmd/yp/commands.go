package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/signadot/yamlptr"
	"github.com/signadot/yamlptr/eval"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "yp").
		WithSynopsis("yp [opts] command [opts]").
		WithDescription(mainDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return ypMain(cfg, cc, args)
		}).
		WithSubs(
			ParseCommand(cfg),
			PathCommand(cfg),
			LocCommand(cfg),
			RangesCommand(cfg),
			BlockCommand(cfg),
			CommentsCommand(cfg),
			CSTCommand(cfg),
			FmtCommand(cfg),
			GetCommand(cfg),
			SetCommand(cfg),
			PatchCommand(cfg),
			EvalCommand(cfg))
}

const mainDescription = `yp parses YAML documents and maps between paths in their values and
positions in their source.

Positions are given and printed as line:column, both counting from 1.
Paths are JSONPaths such as '$.server.ports[0]' or JSON pointers such as
'#/server/ports/0'.

Parse options can be kept in a yaml file passed with -config:

  json: false
  mergeKeys: true
  preserveKeyOrder: true

Flags given on the command line are applied after the file.`

func ParseCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ParseConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Parse, "parse").
		WithAliases("p").
		WithSynopsis("parse [opts] [files]").
		WithDescription("parse documents, print their values and report diagnostics").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return parseDocs(cfg, cc, args)
		})
}

func PathCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PathConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Path, "path").
		WithSynopsis("path [-p] <line:col> [file]").
		WithDescription("print the path of the value at a source position").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return path(cfg, cc, args)
		})
}

func LocCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &LocConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Loc, "loc").
		WithAliases("l").
		WithSynopsis("loc [-closest] <path> [file]").
		WithDescription("print the source range of the value at a path").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return loc(cfg, cc, args)
		})
}

func RangesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RangesConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Ranges, "ranges").
		WithSynopsis("ranges [file]").
		WithDescription("print the source range of every value, keyed by json pointer").
		WithRun(func(cc *cli.Context, args []string) error {
			return ranges(cfg, cc, args)
		})
}

func BlockCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &BlockConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Block, "block").
		WithSynopsis("block <path> [file]").
		WithDescription("describe the header of the block scalar at a path").
		WithRun(func(cc *cli.Context, args []string) error {
			return block(cfg, cc, args)
		})
}

func CommentsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CommentsConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Comments, "comments").
		WithAliases("c").
		WithSynopsis("comments [file]").
		WithDescription("print comments keyed by the json pointer they attach to").
		WithRun(func(cc *cli.Context, args []string) error {
			return listComments(cfg, cc, args)
		})
}

func CSTCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CSTConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.CST, "cst").
		WithSynopsis("cst [-at path] [-deref anchor] [-spew] [file]").
		WithDescription("print the concrete syntax tree").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return cstDump(cfg, cc, args)
		})
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg, Indent: 2, Context: 3}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Fmt, "fmt").
		WithAliases("f").
		WithSynopsis("fmt [-diff] [-c] [file]").
		WithDescription("re-encode a document, or show how re-encoding changes it").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fmtDoc(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get [-loc] <gjson-path> [file]").
		WithDescription("query a document with a gjson path").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Set, "set").
		WithSynopsis("set [-s] <sjson-path> <value> [file] | set -d <sjson-path> [file]").
		WithDescription("set or delete a value in a document").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithSynopsis("patch [-loc] <patchfile> [file]").
		WithDescription("apply a json patch, written in yaml or json, to a document").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patchDoc(cfg, cc, args)
		})
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg, Env: map[string]any{}}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "e",
			Description: "set a variable to a yaml value",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(envOptTypeFunc(cfg.Env)), "(name=val)"),
		})
	return cli.NewCommandAt(&cfg.Eval, "eval").
		WithAliases("e", "ev").
		WithSynopsis("eval [-e name=val [-e name2=val2]...] <expr> [file]").
		WithDescription("evaluate an expression over a document").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return evalDoc(cfg, cc, args)
		})
}

func envOptTypeFunc(env map[string]any) func(cc *cli.Context, a string) (any, error) {
	return func(cc *cli.Context, a string) (any, error) {
		name, val, ok := strings.Cut(a, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: expected name=val, got %q", cli.ErrUsage, a)
		}
		v, err := yamlptr.Parse([]byte(val))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		env[name] = eval.ToExpr(v)
		return 0, nil
	}
}
