package token

import (
	"strconv"
	"unicode/utf8"
)

// DoubleQuoted decodes the double quoted scalar at the start of d.  It
// returns the value and the number of bytes consumed including both
// quotes.  On error the returned count is where decoding stopped.
func DoubleQuoted(d []byte) (string, int, error) {
	if len(d) == 0 || d[0] != '"' {
		return "", 0, ErrUnterminated
	}
	buf := make([]byte, 0, len(d))
	hard := 0
	i := 1
	for i < len(d) {
		c := d[i]
		switch {
		case c == '"':
			return string(buf), i + 1, nil
		case c == '\\':
			if i+1 >= len(d) {
				return string(buf), len(d), ErrUnterminated
			}
			e := d[i+1]
			if IsBreak(e) {
				i = skipBlanks(d, skipBreak(d, i+1))
				hard = len(buf)
				continue
			}
			i += 2
			switch e {
			case '0':
				buf = append(buf, 0)
			case 'a':
				buf = append(buf, '\a')
			case 'b':
				buf = append(buf, '\b')
			case 't', '\t':
				buf = append(buf, '\t')
			case 'n':
				buf = append(buf, '\n')
			case 'v':
				buf = append(buf, '\v')
			case 'f':
				buf = append(buf, '\f')
			case 'r':
				buf = append(buf, '\r')
			case 'e':
				buf = append(buf, 0x1b)
			case ' ', '"', '/', '\\':
				buf = append(buf, e)
			case 'N':
				buf = utf8.AppendRune(buf, 0x85)
			case '_':
				buf = utf8.AppendRune(buf, 0xa0)
			case 'L':
				buf = utf8.AppendRune(buf, 0x2028)
			case 'P':
				buf = utf8.AppendRune(buf, 0x2029)
			case 'x', 'u', 'U':
				n := 2
				switch e {
				case 'u':
					n = 4
				case 'U':
					n = 8
				}
				if i+n > len(d) {
					return string(buf), i, ErrBadEscape
				}
				v, err := strconv.ParseUint(string(d[i:i+n]), 16, 32)
				if err != nil {
					return string(buf), i, ErrBadEscape
				}
				if !utf8.ValidRune(rune(v)) {
					return string(buf), i, ErrBadUnicode
				}
				buf = utf8.AppendRune(buf, rune(v))
				i += n
			default:
				return string(buf), i - 1, ErrBadEscape
			}
			hard = len(buf)
		case IsBreak(c):
			buf = trimBlanks(buf, hard)
			var n int
			i, n = foldBreaks(d, i)
			buf = appendFold(buf, n)
			hard = len(buf)
		case IsBlank(c):
			buf = append(buf, c)
			i++
		default:
			r, sz := utf8.DecodeRune(d[i:])
			if r == utf8.RuneError && sz == 1 {
				return string(buf), i, ErrBadUTF8
			}
			buf = append(buf, d[i:i+sz]...)
			i += sz
		}
	}
	return string(buf), len(d), ErrUnterminated
}

// SingleQuoted decodes the single quoted scalar at the start of d, in the
// manner of [DoubleQuoted].  The only escape is a doubled quote.
func SingleQuoted(d []byte) (string, int, error) {
	if len(d) == 0 || d[0] != '\'' {
		return "", 0, ErrUnterminated
	}
	buf := make([]byte, 0, len(d))
	hard := 0
	i := 1
	for i < len(d) {
		c := d[i]
		switch {
		case c == '\'':
			if i+1 < len(d) && d[i+1] == '\'' {
				buf = append(buf, '\'')
				i += 2
				hard = len(buf)
				continue
			}
			return string(buf), i + 1, nil
		case IsBreak(c):
			buf = trimBlanks(buf, hard)
			var n int
			i, n = foldBreaks(d, i)
			buf = appendFold(buf, n)
			hard = len(buf)
		default:
			buf = append(buf, c)
			i++
		}
	}
	return string(buf), len(d), ErrUnterminated
}

func skipBreak(d []byte, i int) int {
	if i < len(d) && d[i] == '\r' {
		i++
	}
	if i < len(d) && d[i] == '\n' {
		i++
	}
	return i
}

func skipBlanks(d []byte, i int) int {
	for i < len(d) && IsBlank(d[i]) {
		i++
	}
	return i
}

// foldBreaks consumes the line break at d[i], any following empty lines
// and the leading blanks of the next line.  It returns the new offset and
// the number of line breaks consumed.
func foldBreaks(d []byte, i int) (int, int) {
	n := 0
	for i < len(d) && IsBreak(d[i]) {
		i = skipBlanks(d, skipBreak(d, i))
		n++
	}
	return i, n
}

func appendFold(buf []byte, n int) []byte {
	if n == 1 {
		return append(buf, ' ')
	}
	for range n - 1 {
		buf = append(buf, '\n')
	}
	return buf
}

func trimBlanks(buf []byte, floor int) []byte {
	for len(buf) > floor && IsBlank(buf[len(buf)-1]) {
		buf = buf[:len(buf)-1]
	}
	return buf
}
