package token

import "strings"

type Chomping int

const (
	Clip Chomping = iota
	Strip
	Keep
)

func (c Chomping) String() string {
	switch c {
	case Strip:
		return "strip"
	case Keep:
		return "keep"
	default:
		return "clip"
	}
}

func (c Chomping) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// BlockHead is the header of a block scalar: `|` or `>` followed by
// optional chomping and indentation indicators in either order.
type BlockHead struct {
	Folded   bool
	Chomping Chomping
	// Indent is the explicit indentation indicator, 0 when absent.
	Indent int
}

// ParseBlockHead reads the header at the start of d, which must begin with
// '|' or '>'.  It stops at the first blank, line break or '#' and returns
// the number of bytes read.  The first error seen is returned alongside
// whatever could be decoded.
func ParseBlockHead(d []byte) (BlockHead, int, error) {
	h := BlockHead{Folded: len(d) > 0 && d[0] == '>'}
	var err error
	chomp, indent := false, false
	i := 1
	for i < len(d) && !IsSpace(d[i]) && d[i] != '#' {
		c := d[i]
		i++
		switch {
		case c == '-' || c == '+':
			if chomp {
				err = firstErr(err, ErrChompRepeat)
				continue
			}
			chomp = true
			h.Chomping = Strip
			if c == '+' {
				h.Chomping = Keep
			}
		case c >= '0' && c <= '9':
			if indent {
				err = firstErr(err, ErrIndentRepeat)
				continue
			}
			indent = true
			if c == '0' {
				err = firstErr(err, ErrIndentZero)
				continue
			}
			h.Indent = int(c - '0')
		default:
			err = firstErr(err, ErrBlockHeader)
		}
	}
	return h, i, err
}

func firstErr(a, b error) error {
	if a != nil {
		return a
	}
	return b
}

// BlockScalar decodes the content of a block scalar whose header line has
// been consumed; i is the start of the first content line.  parentIndent
// is the column of the enclosing block collection, -1 at the top level.
// It returns the value and the end offset of the last content line, or -1
// when the scalar has no content lines.
func BlockScalar(d []byte, i int, parentIndent int, h BlockHead) (string, int) {
	contentIndent := -1
	if h.Indent > 0 {
		contentIndent = max(parentIndent, 0) + h.Indent
	}
	end := -1
	var lines []string
	for i < len(d) {
		ls := i
		j := ls
		for j < len(d) && d[j] == ' ' {
			j++
		}
		le := j
		for le < len(d) && d[le] != '\n' {
			le++
		}
		te := le
		if te > ls && d[te-1] == '\r' {
			te--
		}
		blank := skipBlanks(d, j) >= te
		if !blank {
			ind := j - ls
			if contentIndent < 0 {
				if ind <= parentIndent {
					break
				}
				contentIndent = ind
			}
			if ind < contentIndent {
				break
			}
			if ind == 0 && IsDocMarker(d, ls) {
				break
			}
			lines = append(lines, string(d[ls+contentIndent:te]))
			end = te
		} else {
			lines = append(lines, "")
		}
		i = le
		if i < len(d) {
			i++
		}
	}
	if end < 0 {
		if h.Chomping == Keep {
			return strings.Repeat("\n", len(lines)), -1
		}
		return "", -1
	}
	k := len(lines)
	for k > 0 && lines[k-1] == "" {
		k--
	}
	trailing := len(lines) - k
	body := lines[:k]
	b := &strings.Builder{}
	if h.Folded {
		foldBlock(b, body)
	} else {
		b.WriteString(strings.Join(body, "\n"))
	}
	switch h.Chomping {
	case Clip:
		b.WriteByte('\n')
	case Keep:
		b.WriteByte('\n')
		b.WriteString(strings.Repeat("\n", trailing))
	}
	return b.String(), end
}

func foldBlock(b *strings.Builder, body []string) {
	started, prevMore := false, false
	breaks := 0
	for _, ln := range body {
		if ln == "" {
			breaks++
			continue
		}
		more := IsBlank(ln[0])
		switch {
		case !started:
			b.WriteString(strings.Repeat("\n", breaks))
			started = true
		case breaks == 0 && !more && !prevMore:
			b.WriteByte(' ')
		case !more && !prevMore:
			b.WriteString(strings.Repeat("\n", breaks))
		default:
			b.WriteString(strings.Repeat("\n", breaks+1))
		}
		b.WriteString(ln)
		breaks = 0
		prevMore = more
	}
}

// FoldPlain joins the lines of a multi-line plain scalar.  Empty entries
// stand for empty lines: a single line break folds to a space and each
// empty line contributes a newline.
func FoldPlain(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	b := &strings.Builder{}
	b.WriteString(lines[0])
	breaks := 0
	for _, ln := range lines[1:] {
		if ln == "" {
			breaks++
			continue
		}
		if breaks == 0 {
			b.WriteByte(' ')
		} else {
			b.WriteString(strings.Repeat("\n", breaks))
		}
		b.WriteString(ln)
		breaks = 0
	}
	return b.String()
}

// IsDocMarker reports whether a document marker, "---" or "...", starts
// at the line start i.
func IsDocMarker(d []byte, i int) bool {
	if i+3 > len(d) {
		return false
	}
	m := string(d[i : i+3])
	if m != "---" && m != "..." {
		return false
	}
	return SpaceAt(d, i+3)
}
