package scalar

import (
	"encoding/json"
	"regexp"
	"strconv"

	"github.com/signadot/yamlptr/cst"
	"github.com/signadot/yamlptr/token"
)

// BlockScalarType describes the authored header of a block scalar.
type BlockScalarType struct {
	Style    cst.Style
	Chomping token.Chomping
	// Indentation is the authored indentation indicator 1-9, or 0 when
	// none was written.  It is never detected from content.
	Indentation int
}

func (b BlockScalarType) MarshalJSON() ([]byte, error) {
	var indent *string
	if b.Indentation != 0 {
		s := strconv.Itoa(b.Indentation)
		indent = &s
	}
	return json.Marshal(struct {
		Style       cst.Style      `json:"style"`
		Chomping    token.Chomping `json:"chomping"`
		Indentation *string        `json:"indentation"`
	}{b.Style, b.Chomping, indent})
}

var blockHeaderRE = regexp.MustCompile(`^(?:([1-9]?)([-+]?)|([-+]?)([1-9]?))$`)

// BlockHeader classifies the header of raw, the authored text of a block
// scalar.  It reports false if raw does not start with '|' or '>'.  A
// malformed header gives clip chomping and no indentation.
func BlockHeader(raw string) (BlockScalarType, bool) {
	if raw == "" {
		return BlockScalarType{}, false
	}
	var res BlockScalarType
	switch raw[0] {
	case '|':
		res.Style = cst.Literal
	case '>':
		res.Style = cst.Folded
	default:
		return BlockScalarType{}, false
	}
	n := 1
	for n < len(raw) && n <= 3 {
		c := raw[n]
		if token.IsSpace(c) || c == '#' {
			break
		}
		n++
	}
	m := blockHeaderRE.FindStringSubmatch(raw[1:n])
	if m == nil {
		return res, true
	}
	indent, chomp := m[1]+m[4], m[2]+m[3]
	if indent != "" {
		res.Indentation = int(indent[0] - '0')
	}
	switch chomp {
	case "-":
		res.Chomping = token.Strip
	case "+":
		res.Chomping = token.Keep
	}
	return res, true
}
