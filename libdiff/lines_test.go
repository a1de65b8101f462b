package libdiff

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLines(t *testing.T) {
	from := "a: 1\nb: 2\nc: 3\n"
	to := "a: 1\nb: 20\nc: 3\n"
	want := []Line{
		{Equal, "a: 1"},
		{Delete, "b: 2"},
		{Insert, "b: 20"},
		{Equal, "c: 3"},
	}
	got := Lines(from, to)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if !Changed(got) {
		t.Errorf("expected a change")
	}
	if Changed(Lines(from, from)) {
		t.Errorf("expected no change")
	}
}

func TestHunks(t *testing.T) {
	from := "1\n2\n3\n4\n5\n6\n7\n8\n"
	to := "1\nx\n3\n4\n5\n6\n7\ny\n"
	hunks := Hunks(Lines(from, to), 1)
	if len(hunks) != 2 {
		t.Fatalf("got %d hunks", len(hunks))
	}
	buf := &bytes.Buffer{}
	if err := Write(buf, hunks, nil); err != nil {
		t.Fatal(err)
	}
	want := "@@ -1,3 +1,3 @@\n 1\n-2\n+x\n 3\n@@ -7,2 +7,2 @@\n 7\n-8\n+y\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestWritePaint(t *testing.T) {
	hunks := Hunks(Lines("a\n", "b\n"), 0)
	buf := &bytes.Buffer{}
	err := Write(buf, hunks, func(o Op, s string) string {
		if o == Equal {
			return s
		}
		return "<" + s + ">"
	})
	if err != nil {
		t.Fatal(err)
	}
	want := "@@ -1,1 +1,1 @@\n<-a>\n<+b>\n"
	if buf.String() != want {
		t.Errorf("got %q want %q", buf.String(), want)
	}
}
