package token

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.lsp.dev/protocol"
)

const simpleDoc = "hello: world\naddress:\n  street: 123"

func TestBuildLines(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Lines
	}{
		{in: "", want: Lines{1}},
		{in: "a", want: Lines{2}},
		{in: "a\n", want: Lines{2, 3}},
		{in: "\n\n", want: Lines{1, 2, 3}},
		{in: simpleDoc, want: Lines{13, 22, 36}},
	} {
		got := BuildLines([]byte(tc.in))
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("BuildLines(%q) (-want +got):\n%s", tc.in, diff)
		}
	}
}

func TestLineForOffset(t *testing.T) {
	lines := Lines{13, 22, 36}
	for _, tc := range []struct {
		off, line int
	}{
		{0, 0},
		{12, 0},
		{13, 1},
		{21, 1},
		{22, 2},
		{35, 2},
		{36, 3},
		{39, 3},
	} {
		if got := lines.LineForOffset(tc.off); got != tc.line {
			t.Errorf("LineForOffset(%d) = %d, want %d", tc.off, got, tc.line)
		}
	}
}

func TestLineForOffsetMonotonic(t *testing.T) {
	for _, doc := range []string{simpleDoc, "\n\n\na\n", "- a\n-\n- b\n", ""} {
		lines := BuildLines([]byte(doc))
		last := 0
		for off := 0; off <= len(doc)+2; off++ {
			l := lines.LineForOffset(off)
			if l < last {
				t.Errorf("%q: line for %d is %d < %d", doc, off, l, last)
			}
			last = l
		}
	}
}

func TestPositionOffset(t *testing.T) {
	lines := BuildLines([]byte(simpleDoc))
	if got, want := lines.Position(7), (protocol.Position{Line: 0, Character: 7}); got != want {
		t.Errorf("Position(7) = %v, want %v", got, want)
	}
	if got, want := lines.Position(35), (protocol.Position{Line: 2, Character: 13}); got != want {
		t.Errorf("Position(35) = %v, want %v", got, want)
	}
	for i, want := range []int{12, 8, 13} {
		if got := lines.LineLen(i); got != want {
			t.Errorf("LineLen(%d) = %d, want %d", i, got, want)
		}
	}
	off, ok := lines.Offset(2, 4)
	if !ok || off != 26 {
		t.Errorf("Offset(2, 4) = %d, %t", off, ok)
	}
	if _, ok := lines.Offset(0, 13); ok {
		t.Errorf("Offset(0, 13) past end of line")
	}
	if _, ok := lines.Offset(3, 0); ok {
		t.Errorf("Offset(3, 0) past last line")
	}
	for off := 0; off <= len(simpleDoc); off++ {
		pos := lines.Position(off)
		back, ok := lines.Offset(int(pos.Line), int(pos.Character))
		if !ok || back != off {
			t.Errorf("round trip %d -> %v -> %d (%t)", off, pos, back, ok)
		}
	}
}
