package eval

import (
	"errors"
	"fmt"
	"maps"

	"github.com/expr-lang/expr"

	"github.com/signadot/yamlptr/debug"
	"github.com/signadot/yamlptr/ir"
)

var ErrCompile = errors.New("expression error")

type Env map[string]any

// Eval compiles code and runs it over doc.  Variables in env shadow the
// fields of doc.
func Eval(doc *ir.Node, code string, env Env) (*ir.Node, error) {
	if doc == nil {
		doc = ir.Null()
	}
	vars := make(map[string]any, len(doc.Fields)+len(env)+1)
	if doc.Type == ir.ObjectType {
		for i, f := range doc.Fields {
			vars[f.String] = ToExpr(doc.Values[i])
		}
	}
	maps.Copy(vars, env)
	vars["doc"] = ToExpr(doc)
	prg, err := expr.Compile(code, exprOpts(doc)...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompile, err)
	}
	if debug.Locate() {
		debug.Logf("eval %q\n", code)
	}
	res, err := expr.Run(prg, vars)
	if err != nil {
		return nil, err
	}
	return FromExpr(res), nil
}
