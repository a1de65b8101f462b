package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/yamlptr/cst"
)

var ErrParse = errors.New("parse error")

const (
	errAliasName       = "name of an alias node must contain at least one character"
	errAnchorName      = "name of an anchor node must contain at least one character"
	errAnchorRepeat    = "duplication of an anchor property"
	errTagRepeat       = "duplication of a tag property"
	errBlockSeqHere    = "block sequence entries are not allowed in this context"
	errBlockMapHere    = "block mapping entries are not allowed in this context"
	errMapValueHere    = "bad indentation of a mapping entry"
	errMissedColon     = "can not read an implicit mapping pair; a colon is missed"
	errMultilineKey    = "can not read a block mapping entry; a multiline key may not be an implicit key"
	errUnexpected      = "unexpected content"
	errBlockHeaderRest = "unexpected content after a block scalar header"
	errFlowEOF         = "unexpected end of the stream within a flow collection"
	errFlowComma       = "expected the node content, but found ','"
	errMissedComma     = "missed comma between flow collection entries"
	errFlowClose       = "unexpected end of the flow collection"
	errDocEnd          = "end of the stream or a document separator is expected"
	errMultiDoc        = "expected a single document in the stream, but found more"
	errTooDeep         = "maximum nesting depth exceeded"
	errDoubleEOF       = "unexpected end of the stream within a double quoted scalar"
	errSingleEOF       = "unexpected end of the stream within a single quoted scalar"
	errEscape          = "unknown escape sequence"
	errUnicode         = "expected valid unicode character"
	errUTF8            = "invalid utf8 sequence"
)

func unknownTag(tag string) string {
	return fmt.Sprintf("unknown tag !<%s>", cst.ExpandTag(tag))
}

func unidentifiedAlias(name string) string {
	return fmt.Sprintf("unidentified alias %q", name)
}

func unexpectedChar(c byte) string {
	return fmt.Sprintf("unexpected character %q", c)
}

// Err returns the first structural error of t which is not a warning,
// wrapped in ErrParse, or nil.
func Err(t *cst.Tree) error {
	for i := range t.Errors {
		e := &t.Errors[i]
		if e.IsWarning {
			continue
		}
		return fmt.Errorf("%w: %s", ErrParse, e.Error())
	}
	return nil
}
