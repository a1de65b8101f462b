// Package format names the output formats of encoded values.
package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

type Format int

const (
	YAMLFormat Format = iota
	JSONFormat
)

var ErrBadFormat = errors.New("bad format")

// names lists the accepted spellings of each format, canonical first.
var names = [...][]string{
	YAMLFormat: {"yaml", "yml", "y"},
	JSONFormat: {"json", "j"},
}

func ParseFormat(v string) (Format, error) {
	v = strings.ToLower(v)
	for f, ns := range names {
		for _, n := range ns {
			if n == v {
				return Format(f), nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

// ForPath guesses the format of a file from its extension.
func ForPath(path string) (Format, bool) {
	ext := filepath.Ext(path)
	if len(ext) < 2 {
		return 0, false
	}
	f, err := ParseFormat(ext[1:])
	if err != nil {
		return 0, false
	}
	return f, true
}

func (f Format) valid() bool {
	return f >= 0 && int(f) < len(names)
}

func (f Format) String() string {
	if !f.valid() {
		return fmt.Sprintf("<format %d>", int(f))
	}
	return names[f][0]
}

func (f Format) MarshalText() ([]byte, error) {
	if !f.valid() {
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, int(f))
	}
	return []byte(f.String()), nil
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJSON() bool { return f == JSONFormat }
func (f Format) IsYAML() bool { return f == YAMLFormat }

// Suffix returns the file extension for f, including the dot.
func (f Format) Suffix() string {
	if !f.valid() {
		return ""
	}
	return "." + f.String()
}
