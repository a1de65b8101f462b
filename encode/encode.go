package encode

import (
	"bytes"
	"encoding/json"
	"io"
	"math/big"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/signadot/yamlptr/comments"
	"github.com/signadot/yamlptr/format"
	"github.com/signadot/yamlptr/ir"
)

type EncState struct {
	format   format.Format
	indent   int
	literal  bool
	flow     bool
	comments map[string][]comments.Attached
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2, literal: true}
	for _, opt := range opts {
		opt(es)
	}
	if es.format.IsJSON() {
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", strings.Repeat(" ", es.indent))
		return enc.Encode(node)
	}
	yopts := []yaml.EncodeOption{
		yaml.Indent(es.indent),
		yaml.IndentSequence(true),
		yaml.UseLiteralStyleIfMultiline(es.literal),
		yaml.Flow(es.flow),
		yaml.CustomMarshaler[*big.Int](func(b *big.Int) ([]byte, error) {
			return []byte(b.String()), nil
		}),
	}
	if len(es.comments) != 0 && !es.flow {
		cm, err := CommentMap(node, es.comments)
		if err != nil {
			return err
		}
		yopts = append(yopts, yaml.WithComment(cm))
	}
	d, err := yaml.MarshalWithOptions(ToYAML(node), yopts...)
	if err != nil {
		return err
	}
	if node.Type == ir.ArrayType && len(node.Values) != 0 && !es.flow {
		d = dedent(d, es.indent)
	}
	_, err = w.Write(d)
	return err
}

// dedent removes n leading spaces from every line of d. IndentSequence
// also indents a top level sequence, whose dashes belong in column 0. d
// is returned unchanged if some non-blank line has a shorter indent.
func dedent(d []byte, n int) []byte {
	pre := bytes.Repeat([]byte{' '}, n)
	lines := bytes.SplitAfter(d, []byte{'\n'})
	for _, ln := range lines {
		if len(bytes.TrimSpace(ln)) != 0 && !bytes.HasPrefix(ln, pre) {
			return d
		}
	}
	res := make([]byte, 0, len(d))
	for _, ln := range lines {
		res = append(res, bytes.TrimPrefix(ln, pre)...)
	}
	return res
}

// Stringify encodes node, except that a string is returned as is and a
// nil node gives "".
func Stringify(node *ir.Node, opts ...EncodeOption) (string, error) {
	if node == nil {
		return "", nil
	}
	if node.Type == ir.StringType {
		return node.String, nil
	}
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func MustString(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}

// ToYAML converts node to the values go-yaml encodes, with objects as
// yaml.MapSlice to keep their order.
func ToYAML(node *ir.Node) any {
	switch node.Type {
	case ir.BoolType:
		return node.Bool
	case ir.StringType:
		return node.String
	case ir.NumberType:
		switch {
		case node.Int64 != nil:
			return *node.Int64
		case node.BigInt != nil:
			return node.BigInt
		case node.Float64 != nil:
			return *node.Float64
		}
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			res[i] = ToYAML(v)
		}
		return res
	case ir.ObjectType:
		res := make(yaml.MapSlice, len(node.Fields))
		for i, f := range node.Fields {
			res[i] = yaml.MapItem{Key: f.String, Value: ToYAML(node.Values[i])}
		}
		return res
	}
	return nil
}
