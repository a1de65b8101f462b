package token

import (
	"bytes"
	"sort"

	"go.lsp.dev/protocol"
)

// Lines is a line index over a document. Lines[i] is the offset one past
// the newline which ends line i; the last entry is a sentinel len(d)+1.
type Lines []int

func BuildLines(d []byte) Lines {
	res := make(Lines, 0, bytes.Count(d, []byte{'\n'})+1)
	for i, c := range d {
		if c == '\n' {
			res = append(res, i+1)
		}
	}
	return append(res, len(d)+1)
}

// NumLines returns the number of lines, counting the (possibly empty) line
// after a final newline.
func (l Lines) NumLines() int {
	return len(l)
}

// LineForOffset returns the line containing off.  An offset equal to
// l[i], the first byte after a newline, is on line i+1.  Offsets past the
// end of the document map to len(l).
func (l Lines) LineForOffset(off int) int {
	if off <= 0 {
		return 0
	}
	return sort.Search(len(l), func(i int) bool {
		return l[i] > off
	})
}

func (l Lines) LineStart(line int) int {
	if line <= 0 || len(l) == 0 {
		return 0
	}
	if line > len(l) {
		line = len(l)
	}
	return l[line-1]
}

// LineLen is the length of line, excluding its newline.
func (l Lines) LineLen(line int) int {
	if line < 0 || line >= len(l) {
		return 0
	}
	return max(0, l[line]-1-l.LineStart(line))
}

func (l Lines) Position(off int) protocol.Position {
	line := l.LineForOffset(off)
	if line >= len(l) && len(l) > 0 {
		line = len(l) - 1
	}
	return protocol.Position{
		Line:      uint32(line),
		Character: uint32(max(0, off-l.LineStart(line))),
	}
}

// Offset converts a line and character into an absolute offset.  It
// reports false when line is out of range or char is past the end of the
// line.
func (l Lines) Offset(line, char int) (int, bool) {
	if line < 0 || line >= len(l) || char < 0 {
		return 0, false
	}
	if char > l.LineLen(line) {
		return 0, false
	}
	return l.LineStart(line) + char, true
}

func (l Lines) Range(start, end int) protocol.Range {
	return protocol.Range{
		Start: l.Position(start),
		End:   l.Position(end),
	}
}

// IsBlank reports whether line contains no characters.
func (l Lines) IsBlank(line int) bool {
	return l.LineLen(line) == 0
}
