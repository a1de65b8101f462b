package jpath

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestString(t *testing.T) {
	tests := []struct {
		path Path
		str  string
		ptr  string
	}{
		{Path{}, "$", "#"},
		{Of("a", 0, "b"), "$.a[0].b", "#/a/0/b"},
		{Of("a.b", "it's"), "$['a.b']['it\\'s']", "#/a.b/it's"},
		{Of("x/y", "m~n"), "$.x/y.m~n", "#/x~1y/m~0n"},
		{Of(""), "$['']", "#/"},
	}
	for _, tt := range tests {
		if got := tt.path.String(); got != tt.str {
			t.Errorf("String %v: got %q want %q", tt.path, got, tt.str)
		}
		if got := tt.path.Pointer(); got != tt.ptr {
			t.Errorf("Pointer %v: got %q want %q", tt.path, got, tt.ptr)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Path
	}{
		{"$", Path{}},
		{"$.a[0].b", Of("a", 0, "b")},
		{"$['a.b'][12]", Of("a.b", 12)},
		{`$["x"]`, Of("x")},
		{"$['it\\'s']", Of("it's")},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Errorf("%q: %v", tt.in, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%q (-want +got):\n%s", tt.in, diff)
		}
		if back, err := Parse(got.String()); err != nil || !back.Equal(got) {
			t.Errorf("%q: reparse of %q gave %v, %v", tt.in, got.String(), back, err)
		}
	}
	for _, bad := range []string{"", "a", "$.", "$[x]", "$['a", "$[-1]", "$a"} {
		if _, err := Parse(bad); !errors.Is(err, ErrBadPath) {
			t.Errorf("%q: expected ErrBadPath, got %v", bad, err)
		}
	}
}

func TestParsePointer(t *testing.T) {
	got, err := ParsePointer("#/a/0/x~1y/m~0n")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Of("a", "0", "x/y", "m~n"), got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if !got.Equal(Of("a", 0, "x/y", "m~n")) {
		t.Errorf("digit key should equal index")
	}
	if p, err := ParsePointer("#"); err != nil || len(p) != 0 {
		t.Errorf("root pointer: %v %v", p, err)
	}
	if _, err := ParsePointer("a/b"); !errors.Is(err, ErrBadPath) {
		t.Errorf("expected ErrBadPath, got %v", err)
	}
}

func TestAsIndex(t *testing.T) {
	for _, tt := range []struct {
		seg Segment
		i   int
		ok  bool
	}{
		{Index(3), 3, true},
		{Key("12"), 12, true},
		{Key("1a"), 0, false},
		{Key(""), 0, false},
		{Key("-1"), 0, false},
	} {
		i, ok := tt.seg.AsIndex()
		if i != tt.i || ok != tt.ok {
			t.Errorf("%v: got %d %t", tt.seg, i, ok)
		}
	}
}

func TestHasPrefix(t *testing.T) {
	p := Of("a", 0, "b")
	if !p.HasPrefix(Of("a")) || !p.HasPrefix(Path{}) || !p.HasPrefix(p) {
		t.Errorf("expected prefixes")
	}
	if p.HasPrefix(Of("b")) || p.HasPrefix(Of("a", 0, "b", "c")) {
		t.Errorf("unexpected prefix")
	}
}

func TestJSON(t *testing.T) {
	d, err := json.Marshal(Of("a", 0))
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != `["a",0]` {
		t.Errorf("got %s", d)
	}
	if d, _ := json.Marshal(Path(nil)); string(d) != "[]" {
		t.Errorf("nil path: %s", d)
	}
	var back Path
	if err := json.Unmarshal([]byte(`["a",0]`), &back); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Of("a", 0), back); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
