package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"y": YAMLFormat, "YML": YAMLFormat, "json": JSONFormat} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("%q: got %v %v", in, got, err)
		}
		var f Format
		if err := f.UnmarshalText([]byte(want.String())); err != nil || f != want {
			t.Errorf("round trip %v: got %v %v", want, f, err)
		}
	}
	if _, err := ParseFormat("toml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v", err)
	}
	if _, err := Format(7).MarshalText(); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v", err)
	}
	if JSONFormat.Suffix() != ".json" {
		t.Errorf("suffix %q", JSONFormat.Suffix())
	}
}

func TestForPath(t *testing.T) {
	for path, want := range map[string]Format{
		"out.json":        JSONFormat,
		"a/b/values.yml":  YAMLFormat,
		"openapi.v3.YAML": YAMLFormat,
	} {
		got, ok := ForPath(path)
		if !ok || got != want {
			t.Errorf("%q: got %v %t", path, got, ok)
		}
	}
	for _, path := range []string{"-", "Makefile", "out.", "x.toml"} {
		if f, ok := ForPath(path); ok {
			t.Errorf("%q: got %v", path, f)
		}
	}
}
