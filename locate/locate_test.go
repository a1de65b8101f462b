package locate

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.lsp.dev/protocol"

	"github.com/signadot/yamlptr/cst"
	"github.com/signadot/yamlptr/ir"
	"github.com/signadot/yamlptr/jpath"
	"github.com/signadot/yamlptr/parse"
	"github.com/signadot/yamlptr/token"
)

const (
	simple      = "hello: world\naddress:\n  street: 123"
	emptyValues = "host: example.com\nsecurityDefinitions: {}\npaths: {}\nparameters:\n skip:\n    in: query\n    type: string\n    name: skip"
	mergeDoc    = "---\n- &CENTER { x: 1, y: 2 }\n- &LEFT { x: 0, y: 2 }\n- &BIG { r: 10 }\n- &SMALL { r: 1 }\n\n- # Override\n  << : [ *BIG, *LEFT, *SMALL ]\n  x: 1\n  label: center/big"
	nullItems   = "-  \n- foo\n-\n- bar\n"
	nullValues  = "foo: ~\nbar: null\nbaz:\n"
)

func load(t *testing.T, src string) (*cst.Tree, token.Lines) {
	t.Helper()
	tree := parse.Parse([]byte(src))
	if len(tree.Errors) != 0 {
		t.Fatalf("%q: %v", src, tree.Errors)
	}
	return tree, token.BuildLines(tree.Src)
}

func rng(sl, sc, el, ec uint32) protocol.Range {
	return protocol.Range{
		Start: protocol.Position{Line: sl, Character: sc},
		End:   protocol.Position{Line: el, Character: ec},
	}
}

func TestPathForPosition(t *testing.T) {
	tests := []struct {
		src        string
		line, char int
		want       jpath.Path
	}{
		{simple, 0, 0, jpath.Of("hello")},
		{simple, 0, 4, jpath.Of("hello")},
		{simple, 0, 9, jpath.Of("hello")},
		{simple, 0, 13, nil},
		{simple, 1, 0, jpath.Of("address")},
		{simple, 1, 7, jpath.Of("address")},
		{simple, 1, 8, jpath.Of("address")},
		{simple, 1, 12, nil},
		{simple, 2, 4, jpath.Of("address", "street")},
		{simple, 2, 11, jpath.Of("address", "street")},
		{simple, 3, 0, nil},
		{emptyValues, 2, 9, jpath.Of("paths")},
		{emptyValues, 6, 10, jpath.Of("parameters", "skip", "type")},
		{"a:\n  b: 1\n\n  c: 2\n", 2, 0, jpath.Of("a")},
		{"a:\n  b: 1\n", 1, 1, jpath.Of("a", "b")},
		{"{a: [1, 2]}", 0, 8, jpath.Of("a", 1)},
		{"- x\n- y: z\n", 1, 5, jpath.Of(1, "y")},
		{"k: v\nk2: v\n", 1, 4, jpath.Of("k2")},
		{nullItems, 1, 3, jpath.Of(1)},
		{"a:\n  - x\n  - y: 1\n", 2, 2, jpath.Of("a", 1)},
		{"a:\n  - x\n  - y: 1\n", 2, 3, jpath.Of("a", 1)},
		{"a:\n  - x\n  - y: 1\n", 2, 4, jpath.Of("a", 1, "y")},
		{"- - p\n  - q\n", 0, 0, jpath.Of(0)},
		{mergeDoc, 6, 0, jpath.Of(4)},
	}
	for _, tt := range tests {
		tree, lines := load(t, tt.src)
		got, ok := PathForPosition(tree, lines, tt.line, tt.char)
		if ok != (tt.want != nil) {
			t.Errorf("%q %d:%d: got %v ok=%t", tt.src, tt.line, tt.char, got, ok)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%q %d:%d (-want +got):\n%s", tt.src, tt.line, tt.char, diff)
		}
	}
}

func TestLocationForPath(t *testing.T) {
	tests := []struct {
		src  string
		path jpath.Path
		opts LocateOptions
		want *protocol.Range
	}{
		{simple, jpath.Of("hello"), LocateOptions{}, ptr(rng(0, 7, 0, 12))},
		{simple, jpath.Of("address"), LocateOptions{}, ptr(rng(1, 8, 2, 13))},
		{simple, jpath.Of("address", "street"), LocateOptions{}, ptr(rng(2, 10, 2, 13))},
		{simple, jpath.Of(), LocateOptions{}, ptr(rng(0, 0, 2, 13))},
		{simple, jpath.Of("nope"), LocateOptions{}, nil},
		{simple, jpath.Of("address", "nope"), LocateOptions{Closest: true}, ptr(rng(1, 8, 2, 13))},
		{"foo: 2\nfoo: 4", jpath.Of("foo"), LocateOptions{}, ptr(rng(1, 5, 1, 6))},
		{mergeDoc, jpath.Of(4, "y"), LocateOptions{MergeKeys: true}, ptr(rng(2, 19, 2, 20))},
		{mergeDoc, jpath.Of(4, "r"), LocateOptions{MergeKeys: true}, ptr(rng(3, 12, 3, 14))},
		{mergeDoc, jpath.Of(4, "x"), LocateOptions{MergeKeys: true}, ptr(rng(8, 5, 8, 6))},
		{mergeDoc, jpath.Of(4, "y"), LocateOptions{}, nil},
		{nullItems, jpath.Of(0), LocateOptions{}, nil},
		{nullItems, jpath.Of(0), LocateOptions{Closest: true}, ptr(rng(0, 0, 3, 5))},
		{nullItems, jpath.Of(1), LocateOptions{}, ptr(rng(1, 2, 1, 5))},
		{nullItems, jpath.Of(3), LocateOptions{}, ptr(rng(3, 2, 3, 5))},
		{nullItems, jpath.Of("3"), LocateOptions{}, ptr(rng(3, 2, 3, 5))},
		{nullItems, jpath.Of(9), LocateOptions{}, nil},
		{nullValues, jpath.Of("foo"), LocateOptions{}, ptr(rng(0, 5, 0, 6))},
		{nullValues, jpath.Of("bar"), LocateOptions{}, ptr(rng(1, 5, 1, 9))},
		{nullValues, jpath.Of("baz"), LocateOptions{}, ptr(rng(2, 4, 2, 4))},
		{"a:\n  - x\n  - y: 1\n", jpath.Of("a", 1), LocateOptions{}, ptr(rng(2, 2, 2, 8))},
		{"- - p\n  - q\n", jpath.Of(0), LocateOptions{}, ptr(rng(0, 0, 1, 5))},
		{"[a, {b: c}]", jpath.Of(1), LocateOptions{}, ptr(rng(0, 4, 0, 9))},
		{mergeDoc, jpath.Of(4), LocateOptions{}, ptr(rng(6, 0, 9, 19))},
	}
	for _, tt := range tests {
		tree, lines := load(t, tt.src)
		got, ok := LocationForPath(tree, lines, tt.path, tt.opts)
		if ok != (tt.want != nil) {
			t.Errorf("%q %s: got %v ok=%t", tt.src, tt.path, got, ok)
			continue
		}
		if !ok {
			continue
		}
		if diff := cmp.Diff(*tt.want, got); diff != "" {
			t.Errorf("%q %s (-want +got):\n%s", tt.src, tt.path, diff)
		}
	}
}

func ptr[T any](v T) *T {
	return &v
}

func TestLocationRoundTrip(t *testing.T) {
	for _, src := range []string{simple, emptyValues, "a:\n  - b: 1\n    c: [x, y]\n  - z\n"} {
		tree, lines := load(t, src)
		tree.Walk(tree.Root, func(id cst.NodeID) bool {
			if !tree.Is(id, cst.ScalarKind) && !tree.Is(id, cst.PairKind) {
				return true
			}
			p := BuildPath(tree, id)
			if len(p) == 0 {
				return true
			}
			r, ok := LocationForPath(tree, lines, p, LocateOptions{})
			if !ok {
				t.Errorf("%q: no location for %s", src, p)
				return true
			}
			got, ok := PathForPosition(tree, lines, int(r.Start.Line), int(r.Start.Character))
			if !ok || !p.HasPrefix(got) {
				t.Errorf("%q: %s starts at %v which maps to %s", src, p, r.Start, got)
			}
			return true
		})
	}
}

func TestBuildPath(t *testing.T) {
	tree, _ := load(t, "a:\n  - x\n  - b: x\n  - [c]\nx: x\n")
	var got []string
	tree.Walk(tree.Root, func(id cst.NodeID) bool {
		if tree.Is(id, cst.ScalarKind) {
			got = append(got, tree.Text(id)+" "+BuildPath(tree, id).String())
		}
		return true
	})
	want := []string{
		"a $.a",
		"x $.a[0]",
		"b $.a[1].b",
		"x $.a[1].b",
		"c $.a[2][0]",
		"x $.x",
		"x $.x",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestFind(t *testing.T) {
	tree, _ := load(t, mergeDoc)
	id, ok := Find(tree, jpath.Of(4, "label"), FindOptions{MergeKeys: true})
	if !ok || tree.Text(id) != "center/big" {
		t.Errorf("got %q %t", tree.Text(id), ok)
	}
	id, ok = Find(tree, jpath.Of(4, "label", "x"), FindOptions{Closest: true})
	if ok || tree.Text(id) != "center/big" {
		t.Errorf("closest: got %q %t", tree.Text(id), ok)
	}
	if id, ok = Find(tree, jpath.Of("a"), FindOptions{}); ok || id != cst.NoNode {
		t.Errorf("key on sequence: got %d %t", id, ok)
	}
	explicit, merged := Pairs(tree, tree.Nodes[tree.Root].Children[4], true)
	if len(explicit) != 2 || len(merged) != 4 {
		t.Errorf("pairs: %d explicit %d merged", len(explicit), len(merged))
	}
}

func TestComputeRanges(t *testing.T) {
	tree, lines := load(t, simple)
	value := ir.FromKeyVals([]ir.KeyVal{
		{Key: "hello", Val: ir.FromString("world")},
		{Key: "address", Val: ir.FromKeyVals([]ir.KeyVal{
			{Key: "street", Val: ir.FromInt(123)},
		})},
	})
	got := ComputeRanges(tree, lines, value, false)
	want := map[string]CompactRange{
		"#":                {0, 0, 2, 13},
		"#/hello":          {0, 7, 0, 12},
		"#/address":        {1, 8, 2, 13},
		"#/address/street": {2, 10, 2, 13},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestNodeAt(t *testing.T) {
	tree, lines := load(t, "a: &x [1]\nd: *x\n")
	id, ok := NodeAt(tree, lines, 1, 3)
	if !ok || !tree.Is(id, cst.AliasKind) {
		t.Fatalf("got %d %t", id, ok)
	}
	if _, ok := NodeAt(tree, lines, 4, 0); ok {
		t.Errorf("expected no node past the end")
	}
}
