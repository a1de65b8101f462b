package parse

import (
	"github.com/signadot/yamlptr/cst"
	"github.com/signadot/yamlptr/token"
)

func (p *parser) eof() bool {
	return p.i >= len(p.d)
}

func (p *parser) at(i int) byte {
	if i < 0 || i >= len(p.d) {
		return 0
	}
	return p.d[i]
}

func (p *parser) col(off int) int {
	return off - p.lines.LineStart(p.lines.LineForOffset(off))
}

func (p *parser) line(off int) int {
	return p.lines.LineForOffset(off)
}

// skipSpace skips blanks, line breaks and comments and reports whether a
// line break was crossed.
func (p *parser) skipSpace() bool {
	crossed := false
	for p.i < len(p.d) {
		c := p.d[p.i]
		switch {
		case token.IsBlank(c):
			p.i++
		case token.IsBreak(c):
			p.i++
			crossed = true
		case c == '#' && (p.i == 0 || token.IsSpace(p.d[p.i-1])):
			p.comment()
		default:
			return crossed
		}
	}
	return crossed
}

func (p *parser) skipBlanks() {
	for p.i < len(p.d) && token.IsBlank(p.d[p.i]) {
		p.i++
	}
}

// skipLine moves to the line break ending the current line.
func (p *parser) skipLine() {
	for p.i < len(p.d) && p.d[p.i] != '\n' {
		p.i++
	}
}

func (p *parser) comment() {
	start := p.i
	p.skipLine()
	end := p.i
	if end > start && p.d[end-1] == '\r' {
		end--
	}
	if !p.opts.comments {
		return
	}
	p.tree.Comments = append(p.tree.Comments, cst.Comment{
		Value: string(p.d[start+1 : end]),
		Start: start,
		End:   end,
	})
}

func (p *parser) atMarker(m string) bool {
	if p.col(p.i) != 0 || !token.IsDocMarker(p.d, p.i) {
		return false
	}
	return string(p.d[p.i:p.i+3]) == m
}

func (p *parser) atDocMarker() bool {
	return p.atMarker("---") || p.atMarker("...")
}

func (p *parser) atSeqEntry() bool {
	return p.at(p.i) == '-' && token.SpaceAt(p.d, p.i+1)
}

func (p *parser) atExplicitKey() bool {
	return p.at(p.i) == '?' && token.SpaceAt(p.d, p.i+1)
}

// atMapIndicator reports whether a ':' value indicator follows on the
// current line, moving to it if so.  adjacent permits a ':' directly
// followed by content, as after a quoted key in a flow collection.
func (p *parser) atMapIndicator(adjacent bool) bool {
	j := p.i
	for j < len(p.d) && token.IsBlank(p.d[j]) {
		j++
	}
	if p.at(j) != ':' {
		return false
	}
	next := j + 1
	ok := token.SpaceAt(p.d, next) ||
		(p.flow > 0 && (token.IsFlowIndicator(p.d[next]) || (adjacent && j == p.i)))
	if ok {
		p.i = j
	}
	return ok
}

// plainStart reports whether a plain scalar may start at the current
// offset.
func (p *parser) plainStart() bool {
	c := p.at(p.i)
	if p.eof() || token.IsSpace(c) {
		return false
	}
	if !token.IsIndicator(c) {
		return true
	}
	if c != '-' && c != '?' && c != ':' {
		return false
	}
	next := p.i + 1
	if token.SpaceAt(p.d, next) {
		return false
	}
	return p.flow == 0 || !token.IsFlowIndicator(p.d[next])
}

// plainEnd returns the end of the plain scalar text on the line starting
// at from, excluding trailing blanks.
func (p *parser) plainEnd(from int) int {
	end := from
	for i := from; i < len(p.d); i++ {
		c := p.d[i]
		if token.IsBreak(c) {
			break
		}
		if c == ':' && (token.SpaceAt(p.d, i+1) || (p.flow > 0 && token.IsFlowIndicator(p.d[i+1]))) {
			break
		}
		if c == '#' && i > from && token.IsBlank(p.d[i-1]) {
			break
		}
		if p.flow > 0 && token.IsFlowIndicator(c) {
			break
		}
		if !token.IsBlank(c) {
			end = i + 1
		}
	}
	return end
}

func (p *parser) errAt(off int, reason string) {
	p.addErr(off, reason, false, false)
}

func (p *parser) addErr(off int, reason string, warn, toLineEnd bool) {
	if p.deep {
		return
	}
	pos := p.lines.Position(off)
	p.tree.Errors = append(p.tree.Errors, cst.Error{
		Reason:    reason,
		Offset:    off,
		Line:      int(pos.Line),
		Column:    int(pos.Character),
		IsWarning: warn,
		ToLineEnd: toLineEnd,
	})
}
