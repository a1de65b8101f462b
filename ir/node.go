package ir

import (
	"maps"
	"math/big"
	"slices"
	"strconv"
)

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	String  string
	Bool    bool
	Int64   *int64
	BigInt  *big.Int
	Float64 *float64
}

func (y *Node) Clone() *Node {
	return y.CloneTo(&Node{})
}

// CloneTo deep copies y into dst.  dst keeps y's parent references; the
// copied children refer to dst.
func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.Fields = nil
	dst.Values = nil
	if y.Fields != nil {
		dst.Fields = make([]*Node, len(y.Fields))
	}
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
	}
	for i, yv := range y.Values {
		dv := yv.CloneTo(&Node{})
		dv.Parent = dst
		dst.Values[i] = dv
	}
	for i, yf := range y.Fields {
		df := yf.CloneTo(&Node{})
		df.Parent = dst
		dst.Fields[i] = df
	}
	dst.String = y.String
	dst.Bool = y.Bool
	dst.Int64, dst.BigInt, dst.Float64 = nil, nil, nil
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	if y.BigInt != nil {
		dst.BigInt = new(big.Int).Set(y.BigInt)
	}
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	return dst
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: NumberType, Int64: &v}
}

func FromBigInt(v *big.Int) *Node {
	return &Node{Type: NumberType, BigInt: v}
}

func FromFloat(f float64) *Node {
	return &Node{Type: NumberType, Float64: &f}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

// NumberString gives the decimal text of a number node.
func (y *Node) NumberString() string {
	switch {
	case y.Int64 != nil:
		return strconv.FormatInt(*y.Int64, 10)
	case y.BigInt != nil:
		return y.BigInt.String()
	case y.Float64 != nil:
		return strconv.FormatFloat(*y.Float64, 'g', -1, 64)
	}
	return ""
}

// FromMap builds an object with sorted keys.
func FromMap(yMap map[string]*Node) *Node {
	keys := slices.Sorted(maps.Keys(yMap))
	kvs := make([]KeyVal, len(keys))
	for i, key := range keys {
		kvs[i] = KeyVal{Key: key, Val: yMap[key]}
	}
	return FromKeyVals(kvs)
}

func ToMap(node *Node) map[string]*Node {
	if node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i, field := range node.Fields {
		res[field.String] = node.Values[i]
	}
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds an object with keys in the order of kvs.  A nil Val
// is taken as null.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{
		Type:   ObjectType,
		Fields: make([]*Node, len(kvs)),
		Values: make([]*Node, len(kvs)),
	}
	for i := range kvs {
		kv := &kvs[i]
		val := kv.Val
		if val == nil {
			val = Null()
		}
		val.Parent = res
		val.ParentIndex = i
		val.ParentField = kv.Key
		res.Fields[i] = &Node{
			Type:        StringType,
			String:      kv.Key,
			Parent:      res,
			ParentIndex: i,
			ParentField: kv.Key,
		}
		res.Values[i] = val
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type:   ArrayType,
		Values: make([]*Node, len(ySlice)),
	}
	for i, y := range ySlice {
		if y == nil {
			y = Null()
		}
		y.Parent = res
		y.ParentIndex = i
		res.Values[i] = y
	}
	return res
}

// Get returns the value of field in object y, or nil.
func Get(y *Node, field string) *Node {
	for i, f := range y.Fields {
		if f.String == field {
			return y.Values[i]
		}
	}
	return nil
}

// Keys returns the keys of object y in order.
func (y *Node) Keys() []string {
	res := make([]string, len(y.Fields))
	for i, f := range y.Fields {
		res[i] = f.String
	}
	return res
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}
