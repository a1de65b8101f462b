package eval

import (
	"os"

	"github.com/expr-lang/expr"

	"github.com/signadot/yamlptr/ir"
	"github.com/signadot/yamlptr/jpath"
)

func exprOpts(doc *ir.Node) []expr.Option {
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			p, err := jpath.Parse(params[0].(string))
			if err != nil {
				return nil, err
			}
			res := doc.GetPath(p)
			if res == nil {
				return nil, nil
			}
			return ToExpr(res), nil
		},
			new(func(string) any)),
		expr.Function("haspath", func(params ...any) (any, error) {
			p, err := jpath.Parse(params[0].(string))
			if err != nil {
				return nil, err
			}
			return doc.GetPath(p) != nil, nil
		},
			new(func(string) bool)),
		expr.Function("pointer", func(params ...any) (any, error) {
			p, err := jpath.Parse(params[0].(string))
			if err != nil {
				return nil, err
			}
			return p.Pointer(), nil
		},
			new(func(string) string)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
