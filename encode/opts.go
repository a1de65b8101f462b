package encode

import (
	"github.com/signadot/yamlptr/comments"
	"github.com/signadot/yamlptr/format"
)

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// EncodeComments writes cs, keyed by JSON pointer, back into YAML output.
func EncodeComments(cs map[string][]comments.Attached) EncodeOption {
	return func(es *EncState) { es.comments = cs }
}

func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// EncodeLiteral writes multiline strings as literal block scalars.
func EncodeLiteral(v bool) EncodeOption {
	return func(es *EncState) { es.literal = v }
}

func EncodeFlow(v bool) EncodeOption {
	return func(es *EncState) { es.flow = v }
}
