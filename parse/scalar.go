package parse

import (
	"errors"

	"github.com/signadot/yamlptr/cst"
	"github.com/signadot/yamlptr/token"
)

func (p *parser) quoted(parent cst.NodeID, pr *props) cst.NodeID {
	start := p.i
	node := cst.Make(cst.ScalarKind, start, parent)
	var n int
	var err error
	if p.d[start] == '"' {
		node.Style = cst.DoubleQuoted
		node.Value, n, err = token.DoubleQuoted(p.d[start:])
	} else {
		node.Style = cst.SingleQuoted
		node.Value, n, err = token.SingleQuoted(p.d[start:])
	}
	p.i = start + n
	if err != nil {
		p.quotedErr(start, err, node.Style)
	}
	node.End = p.i
	node.Raw = string(p.d[start:p.i])
	return p.add(node, pr)
}

// quotedErr records err and moves past the closing quote, or to the end
// of the line if there is none.
func (p *parser) quotedErr(start int, err error, style cst.Style) {
	switch {
	case errors.Is(err, token.ErrUnterminated):
		if style == cst.DoubleQuoted {
			p.errAt(start, errDoubleEOF)
		} else {
			p.errAt(start, errSingleEOF)
		}
		return
	case errors.Is(err, token.ErrBadEscape):
		p.errAt(p.i, errEscape)
	case errors.Is(err, token.ErrBadUnicode):
		p.errAt(p.i, errUnicode)
	default:
		p.errAt(p.i, errUTF8)
	}
	q := p.d[start]
	for p.i < len(p.d) && !token.IsBreak(p.d[p.i]) {
		c := p.d[p.i]
		p.i++
		if c == q {
			return
		}
	}
}

// plainScalar parses a plain scalar.  Unless single is set it continues
// over following lines indented more than indent.
func (p *parser) plainScalar(parent cst.NodeID, indent int, pr *props, single bool) cst.NodeID {
	start := p.i
	end := p.plainEnd(start)
	segs := []string{string(p.d[start:end])}
	p.i = end
	for !single {
		j := p.i
		for j < len(p.d) && token.IsBlank(p.d[j]) {
			j++
		}
		if j < len(p.d) && !token.IsBreak(p.d[j]) {
			break
		}
		k := j
		empties := -1
		for k < len(p.d) && token.IsBreak(p.d[k]) {
			if p.d[k] == '\r' && p.at(k+1) == '\n' {
				k++
			}
			k++
			for k < len(p.d) && token.IsBlank(p.d[k]) {
				k++
			}
			empties++
		}
		if k >= len(p.d) || p.d[k] == '#' {
			break
		}
		if p.flow == 0 && p.col(k) <= indent {
			break
		}
		if p.col(k) == 0 && token.IsDocMarker(p.d, k) {
			break
		}
		e := p.plainEnd(k)
		if e == k {
			break
		}
		for range empties {
			segs = append(segs, "")
		}
		segs = append(segs, string(p.d[k:e]))
		p.i, end = e, e
	}
	node := cst.Make(cst.ScalarKind, start, parent)
	node.End = end
	node.Value = token.FoldPlain(segs)
	node.Raw = string(p.d[start:end])
	return p.add(node, pr)
}
