package ir

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// MarshalJSON encodes the value of y, keeping object key order.  Non
// finite floats encode as null.
func (y *Node) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := y.writeJSON(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (y *Node) writeJSON(buf *bytes.Buffer) error {
	switch y.Type {
	case NullType:
		buf.WriteString("null")
	case BoolType:
		buf.WriteString(strconv.FormatBool(y.Bool))
	case NumberType:
		if y.Float64 != nil && (math.IsInf(*y.Float64, 0) || math.IsNaN(*y.Float64)) {
			buf.WriteString("null")
			return nil
		}
		buf.WriteString(y.NumberString())
	case StringType:
		return writeString(buf, y.String)
	case ArrayType:
		buf.WriteByte('[')
		for i, v := range y.Values {
			if i != 0 {
				buf.WriteByte(',')
			}
			if err := v.writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case ObjectType:
		buf.WriteByte('{')
		for i, v := range y.Values {
			if i != 0 {
				buf.WriteByte(',')
			}
			if err := writeString(buf, y.Fields[i].String); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := v.writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("%w: type %s", ErrUnsupported, y.Type)
	}
	return nil
}

// writeString writes s as a JSON string, leaving '<', '>' and '&' as is.
func writeString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1)
	return nil
}

// ToAny converts y to plain go values: nil, bool, int64, *big.Int,
// float64, string, []any and map[string]any.
func ToAny(y *Node) any {
	switch y.Type {
	case BoolType:
		return y.Bool
	case NumberType:
		switch {
		case y.Int64 != nil:
			return *y.Int64
		case y.BigInt != nil:
			return y.BigInt
		case y.Float64 != nil:
			return *y.Float64
		}
	case StringType:
		return y.String
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = ToAny(v)
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(y.Fields))
		for i, f := range y.Fields {
			res[f.String] = ToAny(y.Values[i])
		}
		return res
	}
	return nil
}

// FromAny converts plain go values, as produced by encoding/json or
// ToAny, to a node.  Maps produce objects with sorted keys.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return x.Clone(), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case int32:
		return FromInt(int64(x)), nil
	case uint64:
		if x > math.MaxInt64 {
			return FromBigInt(new(big.Int).SetUint64(x)), nil
		}
		return FromInt(int64(x)), nil
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case *big.Int:
		return FromBigInt(x), nil
	case json.Number:
		return numberNode(string(x))
	case []any:
		vals := make([]*Node, len(x))
		for i, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			vals[i] = n
		}
		return FromSlice(vals), nil
	case map[string]any:
		m := make(map[string]*Node, len(x))
		for k, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			m[k] = n
		}
		return FromMap(m), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupported, v)
}

func numberNode(s string) (*Node, error) {
	if !strings.ContainsAny(s, ".eE") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return FromInt(i), nil
		}
		if b, ok := new(big.Int).SetString(s, 10); ok {
			return FromBigInt(b), nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: number %q", ErrJSON, s)
	}
	return FromFloat(f), nil
}

// FromJSON decodes a single JSON value keeping object key order.
// Integers wider than 64 bits become BigInt.
func FromJSON(d []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	res, err := decodeJSON(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data", ErrJSON)
	}
	return res, nil
}

func decodeJSON(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrJSON, err)
	}
	switch x := tok.(type) {
	case json.Delim:
		switch x {
		case '[':
			var vals []*Node
			for dec.More() {
				v, err := decodeJSON(dec)
				if err != nil {
					return nil, err
				}
				vals = append(vals, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrJSON, err)
			}
			return FromSlice(vals), nil
		case '{':
			var kvs []KeyVal
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return nil, fmt.Errorf("%w: %w", ErrJSON, err)
				}
				key, _ := kt.(string)
				v, err := decodeJSON(dec)
				if err != nil {
					return nil, err
				}
				kvs = setKeyVal(kvs, key, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrJSON, err)
			}
			return FromKeyVals(kvs), nil
		}
		return nil, fmt.Errorf("%w: unexpected %s", ErrJSON, x)
	case json.Number:
		return numberNode(string(x))
	}
	return FromAny(tok)
}

// setKeyVal replaces the value of an existing key in place, otherwise
// appends.
func setKeyVal(kvs []KeyVal, key string, v *Node) []KeyVal {
	for i := range kvs {
		if kvs[i].Key == key {
			kvs[i].Val = v
			return kvs
		}
	}
	return append(kvs, KeyVal{Key: key, Val: v})
}
