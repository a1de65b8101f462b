package scalar

import (
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/signadot/yamlptr/cst"
	"github.com/signadot/yamlptr/ir"
)

type Type int

const (
	NullType Type = iota
	BoolType
	IntType
	FloatType
	StringType
)

func (t Type) String() string {
	switch t {
	case NullType:
		return "null"
	case BoolType:
		return "boolean"
	case IntType:
		return "integer"
	case FloatType:
		return "number"
	}
	return "string"
}

var (
	nullRE  = regexp.MustCompile(`^(?:~|null|Null|NULL)?$`)
	boolRE  = regexp.MustCompile(`^(?:true|True|TRUE|false|False|FALSE)$`)
	intRE   = regexp.MustCompile(`^(?:[-+]?[0-9]+|0o[0-7]+|0x[0-9a-fA-F]+)$`)
	floatRE = regexp.MustCompile(`^(?:[-+]?(?:\.[0-9]+|[0-9]+(?:\.[0-9]*)?)(?:[eE][-+]?[0-9]+)?|[-+]?\.(?:inf|Inf|INF)|\.(?:nan|NaN|NAN))$`)
)

// Resolve classifies the scalar n.  Quoted and block scalars are strings
// unless a core tag says otherwise; plain scalars follow the core schema.
// A core tag which cannot apply to the text is ignored.
func Resolve(n *cst.Node) Type {
	switch cst.CoreTag(n.Tag) {
	case "str":
		return StringType
	case "null":
		return NullType
	case "bool":
		if boolRE.MatchString(n.Value) {
			return BoolType
		}
	case "int":
		if intRE.MatchString(n.Value) {
			return IntType
		}
	case "float":
		if floatRE.MatchString(n.Value) {
			return FloatType
		}
	}
	if n.Tag == "!" || n.Style.Quoted() {
		return StringType
	}
	return resolvePlain(n.Value)
}

func resolvePlain(v string) Type {
	switch {
	case nullRE.MatchString(v):
		return NullType
	case boolRE.MatchString(v):
		return BoolType
	case intRE.MatchString(v):
		return IntType
	case floatRE.MatchString(v):
		return FloatType
	}
	return StringType
}

// Coerce gives the value of scalar n.  Integers outside the int64 range
// are BigInt if bigInt is set and are otherwise narrowed to Float64.
func Coerce(n *cst.Node, bigInt bool) *ir.Node {
	switch Resolve(n) {
	case NullType:
		return ir.Null()
	case BoolType:
		return ir.FromBool(parseBool(n.Value))
	case IntType:
		b := parseInt(n.Value)
		if b.IsInt64() {
			return ir.FromInt(b.Int64())
		}
		if bigInt {
			return ir.FromBigInt(b)
		}
		f, _ := new(big.Float).SetInt(b).Float64()
		return ir.FromFloat(f)
	case FloatType:
		return ir.FromFloat(parseFloat(n.Value))
	}
	return ir.FromString(n.Value)
}

func parseBool(v string) bool {
	return v[0] == 't' || v[0] == 'T'
}

// parseInt parses text matched by intRE.
func parseInt(v string) *big.Int {
	base := 10
	switch {
	case strings.HasPrefix(v, "0x"):
		v, base = v[2:], 16
	case strings.HasPrefix(v, "0o"):
		v, base = v[2:], 8
	}
	b, _ := new(big.Int).SetString(strings.TrimPrefix(v, "+"), base)
	return b
}

// parseFloat parses text matched by floatRE.
func parseFloat(v string) float64 {
	switch strings.ToLower(strings.TrimLeft(v, "+-")) {
	case ".inf":
		if v[0] == '-' {
			return math.Inf(-1)
		}
		return math.Inf(1)
	case ".nan":
		return math.NaN()
	}
	f, _ := strconv.ParseFloat(v, 64)
	return f
}

// KeyString gives the string a scalar denotes when used as a mapping key,
// or as a path segment compared against one.
func KeyString(n *cst.Node) string {
	return ValueString(Coerce(n, true))
}

// ValueString formats a leaf value as a key.
func ValueString(v *ir.Node) string {
	switch v.Type {
	case ir.NullType:
		return "null"
	case ir.BoolType:
		return strconv.FormatBool(v.Bool)
	case ir.NumberType:
		if v.Float64 != nil {
			return floatString(*v.Float64)
		}
		return v.NumberString()
	}
	return v.String
}

func floatString(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.IsNaN(f):
		return "NaN"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// TypeName names the type of value v for messages, with null for null.
func TypeName(v *ir.Node) string {
	switch v.Type {
	case ir.NullType:
		return "null"
	case ir.BoolType:
		return "boolean"
	case ir.NumberType:
		if v.BigInt != nil {
			return "bigint"
		}
		return "number"
	}
	return "string"
}
