package eval

import (
	"fmt"
	"math/big"

	"github.com/signadot/yamlptr/ir"
)

// ToExpr converts y to values expr can compute with.  Integers become
// int and big integers become float64.
func ToExpr(y *ir.Node) any {
	switch y.Type {
	case ir.BoolType:
		return y.Bool
	case ir.NumberType:
		switch {
		case y.Int64 != nil:
			return int(*y.Int64)
		case y.BigInt != nil:
			f, _ := new(big.Float).SetInt(y.BigInt).Float64()
			return f
		case y.Float64 != nil:
			return *y.Float64
		}
	case ir.StringType:
		return y.String
	case ir.ArrayType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = ToExpr(v)
		}
		return res
	case ir.ObjectType:
		res := make(map[string]any, len(y.Fields))
		for i, f := range y.Fields {
			res[f.String] = ToExpr(y.Values[i])
		}
		return res
	}
	return nil
}

// FromExpr converts an expression result to a node.  Values with no
// counterpart are rendered as strings.
func FromExpr(v any) *ir.Node {
	switch x := v.(type) {
	case []string:
		vals := make([]*ir.Node, len(x))
		for i, s := range x {
			vals[i] = ir.FromString(s)
		}
		return ir.FromSlice(vals)
	case []int:
		vals := make([]*ir.Node, len(x))
		for i, n := range x {
			vals[i] = ir.FromInt(int64(n))
		}
		return ir.FromSlice(vals)
	case []any:
		vals := make([]*ir.Node, len(x))
		for i, e := range x {
			vals[i] = FromExpr(e)
		}
		return ir.FromSlice(vals)
	case map[string]any:
		m := make(map[string]*ir.Node, len(x))
		for k, e := range x {
			m[k] = FromExpr(e)
		}
		return ir.FromMap(m)
	}
	res, err := ir.FromAny(v)
	if err != nil {
		return ir.FromString(fmt.Sprint(v))
	}
	return res
}
