package anchor

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/yamlptr/cst"
	"github.com/signadot/yamlptr/parse"
)

// aliases returns the alias nodes of t in document order.
func aliases(t *cst.Tree) []cst.NodeID {
	var res []cst.NodeID
	t.Walk(t.Root, func(id cst.NodeID) bool {
		if t.Is(id, cst.AliasKind) {
			res = append(res, id)
		}
		return true
	})
	return res
}

func TestIsCircular(t *testing.T) {
	tree := parse.Parse([]byte("a: &foo\n  - b: &bar\n    - true\n    - c: *bar\n    - *foo\nd: *foo\n"))
	var got []bool
	for _, id := range aliases(tree) {
		got = append(got, IsCircular(tree, id))
	}
	if diff := cmp.Diff([]bool{true, true, false}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if IsCircular(tree, tree.Root) {
		t.Errorf("non alias reported circular")
	}
}

func TestFollow(t *testing.T) {
	tree := parse.Parse([]byte("model: &ref\n  foo:\n    name: *ref\nother: *ref\nbad: *nope\n"))
	as := aliases(tree)
	if len(as) != 3 {
		t.Fatalf("expected 3 aliases, got %d", len(as))
	}
	model := tree.Node(tree.Root).Children[0]
	modelVal := tree.Node(model).Val

	target, o, ok := Follow(tree, as[0], Open{})
	if !ok || target != modelVal || !o.Has("ref") {
		t.Errorf("circular alias: got %d %v %t", target, o, ok)
	}
	if _, _, ok := Follow(tree, as[0], o); ok {
		t.Errorf("alias to an open anchor should be cut")
	}
	target, o, ok = Follow(tree, as[1], Open{})
	if !ok || target != modelVal || !o.Empty() {
		t.Errorf("plain alias: got %d %v %t", target, o, ok)
	}
	if _, _, ok := Follow(tree, as[2], Open{}); ok {
		t.Errorf("unidentified alias should be cut")
	}
}

func TestFollowKeepsOpen(t *testing.T) {
	tree := parse.Parse([]byte("a: &a\n  b: &b\n    c: *a\n  e: *b\n"))
	as := aliases(tree)
	if len(as) != 2 {
		t.Fatalf("expected 2 aliases, got %d", len(as))
	}
	_, o, ok := Follow(tree, as[0], Open{})
	if !ok || !o.Has("a") {
		t.Fatalf("circular alias: got %v %t", o, ok)
	}
	// *b is plain, so following it inside the expansion of a keeps a open.
	_, inner, ok := Follow(tree, as[1], o)
	if !ok || !inner.Has("a") || inner.Has("b") {
		t.Errorf("plain alias in open state: got %v %t", inner, ok)
	}
	if _, _, ok := Follow(tree, as[0], inner); ok {
		t.Errorf("alias to a reached through *b should be cut")
	}
}

func TestOpen(t *testing.T) {
	var o Open
	if !o.Empty() || o.Has("a") {
		t.Errorf("zero Open not empty")
	}
	a := o.With("a")
	ab := a.With("b")
	if !ab.Has("a") || !ab.Has("b") || a.Has("b") {
		t.Errorf("With should not share: a=%v ab=%v", a, ab)
	}
	if a.With("a").ids[0] != "a" || len(a.With("a").ids) != 1 {
		t.Errorf("With should not repeat ids")
	}
}

func TestDereference(t *testing.T) {
	src := "a: &foo\n  - b: &bar\n    - true\n    - c: *bar\n    - *foo\n"
	tree := parse.Parse([]byte(src))
	as := aliases(tree)
	barAlias, fooAlias := as[0], as[1]
	foo := tree.Node(fooAlias).Target

	res, root := Dereference(tree, foo, "foo")
	if root != foo {
		t.Fatalf("root changed: %d", root)
	}
	// bar: [true, {c: *bar}, *foo] loses *foo, and c loses its value.
	bar := tree.Node(barAlias).Target
	items := res.Node(bar).Children
	if len(items) != 3 || items[2] != cst.NoNode {
		t.Errorf("expected cut *foo, got %v", items)
	}
	cPair := res.Node(res.Node(items[1]).Children[0])
	if cPair.Val != cst.NoNode {
		t.Errorf("expected cut *bar, got %d", cPair.Val)
	}
	// the original is untouched
	if tree.Node(bar).Children[2] != fooAlias {
		t.Errorf("original tree modified")
	}
	if tree.Node(tree.Node(tree.Node(bar).Children[1]).Children[0]).Val != barAlias {
		t.Errorf("original pair modified")
	}
	if _, id := Dereference(tree, fooAlias, "foo"); id != cst.NoNode {
		t.Errorf("alias to the anchor itself should be cut")
	}
}
