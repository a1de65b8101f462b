package token

func IsBlank(c byte) bool {
	return c == ' ' || c == '\t'
}

func IsBreak(c byte) bool {
	return c == '\n' || c == '\r'
}

// IsSpace reports whether c is a blank or a line break.
func IsSpace(c byte) bool {
	return IsBlank(c) || IsBreak(c)
}

func IsFlowIndicator(c byte) bool {
	switch c {
	case ',', '[', ']', '{', '}':
		return true
	}
	return false
}

// IsIndicator reports whether c cannot start a plain scalar on its own.
func IsIndicator(c byte) bool {
	switch c {
	case '-', '?', ':', ',', '[', ']', '{', '}', '#', '&', '*', '!', '|', '>', '\'', '"', '%', '@', '`':
		return true
	}
	return false
}

// SpaceAt reports whether d[i] is a blank or line break, or i is past the
// end of d.
func SpaceAt(d []byte, i int) bool {
	return i >= len(d) || IsSpace(d[i])
}
