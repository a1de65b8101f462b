package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/yamlptr"
	"github.com/signadot/yamlptr/encode"
	"github.com/signadot/yamlptr/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Strict   bool   `cli:"name=strict desc='keep every mapping pair and fail on duplicate keys'"`
	Dups     bool   `cli:"name=dups desc='report duplicate keys'"`
	DupHints bool   `cli:"name=dupHints desc='report duplicate keys as hints'"`
	Merge    bool   `cli:"name=merge desc='resolve merge keys'"`
	BigInt   bool   `cli:"name=bigint desc='keep integers wider than 64 bits exact'"`
	Ordered  bool   `cli:"name=ordered desc='preserve mapping key order'"`
	Config   string `cli:"name=config desc='yaml file holding parse options'"`
	Color    bool   `cli:"name=color desc='color diagnostics and diffs'"`

	J bool `cli:"name=j aliases=json desc='output json'"`
	Y bool `cli:"name=y aliases=yaml desc='output yaml'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) parseOpts() ([]yamlptr.ParseOption, error) {
	var res []yamlptr.ParseOption
	if cfg.Config != "" {
		o, err := yamlptr.LoadOptionsFile(cfg.Config)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		res = append(res, yamlptr.WithOptions(o))
	}
	if cfg.Strict {
		res = append(res, yamlptr.JSON(false))
	}
	if cfg.Dups || cfg.DupHints {
		res = append(res, yamlptr.IgnoreDuplicateKeys(false))
	}
	if cfg.DupHints {
		res = append(res, yamlptr.DuplicateKeysAsHints(true))
	}
	if cfg.Merge {
		res = append(res, yamlptr.MergeKeys(true))
	}
	if cfg.BigInt {
		res = append(res, yamlptr.BigInt(true))
	}
	if cfg.Ordered {
		res = append(res, yamlptr.PreserveKeyOrder(true))
	}
	return res, nil
}

// format picks the output format: -O, then -j or -y, then the extension
// of the -o file.
func (cfg *MainConfig) format() format.Format {
	f := format.YAMLFormat
	if of, ok := format.ForPath(cfg.Out); ok {
		f = of
	}
	switch {
	case cfg.J:
		f = format.JSONFormat
	case cfg.Y:
		f = format.YAMLFormat
	}
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	return f
}

func (cfg *MainConfig) encOpts() []encode.EncodeOption {
	return []encode.EncodeOption{encode.EncodeFormat(cfg.format())}
}

// colors reports whether output to w should be colored: -color when
// given, otherwise whether w is a terminal.
func (cfg *MainConfig) colors(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type ParseConfig struct {
	*MainConfig

	Comments bool `cli:"name=c desc='attach comments and re-emit them'"`
	Quiet    bool `cli:"name=q desc='do not print diagnostics'"`
	Diags    bool `cli:"name=d desc='output the diagnostics instead of the value'"`

	Parse *cli.Command
}

type PathConfig struct {
	*MainConfig

	Pointer bool `cli:"name=p desc='output a json pointer'"`

	Path *cli.Command
}

type LocConfig struct {
	*MainConfig

	Closest bool `cli:"name=closest desc='locate the closest existing ancestor'"`

	Loc *cli.Command
}

type RangesConfig struct {
	*MainConfig

	Ranges *cli.Command
}

type BlockConfig struct {
	*MainConfig

	Block *cli.Command
}

type CommentsConfig struct {
	*MainConfig

	Comments *cli.Command
}

type CSTConfig struct {
	*MainConfig

	At    string `cli:"name=at desc='print the subtree at this path'"`
	Deref string `cli:"name=deref desc='cut references to this anchor from the subtree'"`
	Spew  bool   `cli:"name=spew desc='dump node structs'"`

	CST *cli.Command
}

type FmtConfig struct {
	*MainConfig

	Diff     bool `cli:"name=diff desc='show a diff of the source and its formatted form'"`
	Comments bool `cli:"name=c desc='keep comments'"`
	Indent   int  `cli:"name=indent desc='indentation width'"`
	Flow     bool `cli:"name=flow desc='use flow style'"`
	Context  int  `cli:"name=U desc='lines of diff context'"`

	Fmt *cli.Command
}

type GetConfig struct {
	*MainConfig

	Loc bool `cli:"name=loc desc='output the source location of the match'"`

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig

	String bool `cli:"name=s desc='consider the value a string'"`
	Delete bool `cli:"name=d desc='delete instead of setting'"`

	Set *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Loc bool `cli:"name=loc desc='output the source location of each operation'"`

	Patch *cli.Command
}

type EvalConfig struct {
	*MainConfig

	Exit bool `cli:"name=e desc='exit with status 1 when the result is null, false, zero or empty'"`

	Env map[string]any

	Eval *cli.Command
}
