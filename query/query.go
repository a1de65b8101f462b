// Package query runs gjson queries and sjson updates over materialized
// documents.  Results which are a single element of the document carry
// its path, so they can be located in the source.
package query

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/signadot/yamlptr/ir"
	"github.com/signadot/yamlptr/jpath"
)

var (
	ErrNotFound = errors.New("no match")
	ErrQuery    = errors.New("bad query")
)

type Match struct {
	Value *ir.Node
	// Path is nil when the match is computed rather than found, as with
	// modifiers or multipaths.
	Path jpath.Path
}

// Get evaluates the gjson query q over doc.
func Get(doc *ir.Node, q string) (*Match, error) {
	if q == "" {
		return nil, fmt.Errorf("%w: empty query", ErrQuery)
	}
	d, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	r := gjson.GetBytes(d, q)
	if !r.Exists() {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, q)
	}
	v, err := ir.FromJSON([]byte(r.Raw))
	if err != nil {
		return nil, err
	}
	res := &Match{Value: v}
	if p := r.Path(string(d)); p != "" {
		res.Path = pathIn(doc, SplitPath(p))
	}
	return res, nil
}

// Set sets the value at the sjson path q in doc, creating what is
// missing.  doc is left untouched.
func Set(doc *ir.Node, q string, v *ir.Node) (*ir.Node, error) {
	d, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	out, err := sjson.SetRawBytes(d, q, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	return ir.FromJSON(out)
}

// Delete removes the value at the sjson path q.
func Delete(doc *ir.Node, q string) (*ir.Node, error) {
	d, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	out, err := sjson.DeleteBytes(d, q)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	return ir.FromJSON(out)
}

// SplitPath splits a plain gjson path on its unescaped dots.
func SplitPath(p string) []string {
	var (
		res []string
		buf strings.Builder
	)
	for i := 0; i < len(p); i++ {
		switch p[i] {
		case '\\':
			if i+1 < len(p) {
				i++
				buf.WriteByte(p[i])
			}
		case '.':
			res = append(res, buf.String())
			buf.Reset()
		default:
			buf.WriteByte(p[i])
		}
	}
	return append(res, buf.String())
}

// pathIn types the segments of a gjson path against doc: numbers
// addressing arrays become indices.
func pathIn(doc *ir.Node, segs []string) jpath.Path {
	res := make(jpath.Path, 0, len(segs))
	cur := doc
	for _, seg := range segs {
		if cur != nil && cur.Type == ir.ArrayType {
			if i, err := strconv.Atoi(seg); err == nil && i >= 0 {
				res = append(res, jpath.Index(i))
				cur = cur.GetPath(jpath.Path{jpath.Index(i)})
				continue
			}
		}
		res = append(res, jpath.Key(seg))
		if cur != nil {
			cur = ir.Get(cur, seg)
		}
	}
	return res
}
