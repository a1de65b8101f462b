package jpath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrBadPath = errors.New("bad path")

// Segment is a mapping key or, when IsIndex is set, a sequence index.
type Segment struct {
	Key     string
	Index   int
	IsIndex bool
}

func Key(k string) Segment {
	return Segment{Key: k}
}

func Index(i int) Segment {
	return Segment{Index: i, IsIndex: true}
}

// String gives the key, or the decimal form of the index.
func (s Segment) String() string {
	if s.IsIndex {
		return strconv.Itoa(s.Index)
	}
	return s.Key
}

// AsIndex returns the index designated by s, accepting keys consisting
// only of decimal digits.
func (s Segment) AsIndex() (int, bool) {
	if s.IsIndex {
		return s.Index, s.Index >= 0
	}
	if s.Key == "" || strings.TrimLeft(s.Key, "0123456789") != "" {
		return 0, false
	}
	i, err := strconv.Atoi(s.Key)
	if err != nil {
		return 0, false
	}
	return i, true
}

type Path []Segment

// Of builds a path from strings and ints.
func Of(segs ...any) Path {
	res := make(Path, 0, len(segs))
	for _, s := range segs {
		switch v := s.(type) {
		case int:
			res = append(res, Index(v))
		case string:
			res = append(res, Key(v))
		case Segment:
			res = append(res, v)
		default:
			panic(fmt.Sprintf("jpath: segment of type %T", s))
		}
	}
	return res
}

func (p Path) String() string {
	buf := &strings.Builder{}
	buf.WriteByte('$')
	for _, s := range p {
		if s.IsIndex {
			fmt.Fprintf(buf, "[%d]", s.Index)
			continue
		}
		buf.WriteString(fieldString(s.Key))
	}
	return buf.String()
}

func fieldString(f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[] ") == -1 {
		return "." + f
	}
	return "['" + strings.ReplaceAll(f, "'", "\\'") + "']"
}

// Pointer gives the JSON pointer form of p prefixed by '#', with '~' and
// '/' in keys encoded as "~0" and "~1".
func (p Path) Pointer() string {
	buf := &strings.Builder{}
	buf.WriteByte('#')
	for _, s := range p {
		buf.WriteByte('/')
		buf.WriteString(EncodePointerSegment(s.String()))
	}
	return buf.String()
}

var (
	ptrEnc = strings.NewReplacer("~", "~0", "/", "~1")
	ptrDec = strings.NewReplacer("~1", "/", "~0", "~")
)

func EncodePointerSegment(s string) string {
	return ptrEnc.Replace(s)
}

func DecodePointerSegment(s string) string {
	return ptrDec.Replace(s)
}

// ParsePointer parses a JSON pointer, with or without a leading '#'.
// Every segment is returned as a key.
func ParsePointer(ptr string) (Path, error) {
	ptr = strings.TrimPrefix(ptr, "#")
	if ptr == "" {
		return Path{}, nil
	}
	if ptr[0] != '/' {
		return nil, fmt.Errorf("%w: pointer %q should start with '/'", ErrBadPath, ptr)
	}
	parts := strings.Split(ptr[1:], "/")
	res := make(Path, len(parts))
	for i, part := range parts {
		res[i] = Key(DecodePointerSegment(part))
	}
	return res, nil
}

// Parse parses a JSONPath of the form "$.a[0]['b.c']".
func Parse(p string) (Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("%w: path %q should start with '$'", ErrBadPath, p)
	}
	res := Path{}
	frag := p[1:]
	for len(frag) != 0 {
		var (
			seg Segment
			err error
		)
		switch frag[0] {
		case '.':
			var field string
			field, frag, err = parseField(frag[1:])
			seg = Key(field)
		case '[':
			seg, frag, err = parseBracket(frag[1:])
		default:
			err = fmt.Errorf("expected '.' or '[' at %q", frag)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrBadPath, p, err)
		}
		res = append(res, seg)
	}
	return res, nil
}

func parseBracket(frag string) (Segment, string, error) {
	if len(frag) != 0 && (frag[0] == '\'' || frag[0] == '"') {
		field, rest, err := parseQuoted(frag)
		if err != nil {
			return Segment{}, "", err
		}
		if len(rest) == 0 || rest[0] != ']' {
			return Segment{}, "", fmt.Errorf("expected ']'")
		}
		return Key(field), rest[1:], nil
	}
	i := strings.IndexByte(frag, ']')
	if i == -1 {
		return Segment{}, "", fmt.Errorf("expected '[' <index> ']'")
	}
	u64, err := strconv.ParseUint(frag[:i], 10, 31)
	if err != nil {
		return Segment{}, "", err
	}
	return Index(int(u64)), frag[i+1:], nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] == '\'' {
		return parseQuoted(frag)
	}
	i := strings.IndexAny(frag, ".[")
	if i == -1 {
		return frag, "", nil
	}
	return frag[:i], frag[i:], nil
}

func parseQuoted(frag string) (field, rest string, err error) {
	q := frag[0]
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch {
		case c == '\\' && !escaped:
			escaped = true
			continue
		case c == q && !escaped:
			return string(res), frag[i+1:], nil
		}
		escaped = false
		res = append(res, c)
	}
	return "", "", fmt.Errorf("end of string scanning for %q", q)
}

// Equal reports whether p and o designate the same location, comparing
// index segments with digit-only keys.
func (p Path) Equal(o Path) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if !p[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

// HasPrefix reports whether pre is p or an ancestor of p.
func (p Path) HasPrefix(pre Path) bool {
	return len(pre) <= len(p) && p[:len(pre)].Equal(pre)
}

func (s Segment) Equal(o Segment) bool {
	return s.String() == o.String()
}

// Append returns a copy of p extended with segs.
func (p Path) Append(segs ...Segment) Path {
	res := make(Path, len(p), len(p)+len(segs))
	copy(res, p)
	return append(res, segs...)
}
