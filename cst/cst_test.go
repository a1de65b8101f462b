package cst

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// a: [x, *x]
func sample() *Tree {
	t := New([]byte("a: &x [x, *x]"))
	m := t.Add(Node{Kind: MapKind, Start: 0, End: 13, Parent: NoNode})
	p := t.Add(Node{Kind: PairKind, Start: 0, End: 13, Parent: m})
	k := t.Add(Node{Kind: ScalarKind, Start: 0, End: 1, Parent: p, Value: "a", Raw: "a"})
	s := t.Add(Node{Kind: SeqKind, Start: 6, End: 13, Parent: p, Anchor: "x", Flow: true})
	x := t.Add(Node{Kind: ScalarKind, Start: 7, End: 8, Parent: s, Value: "x", Raw: "x"})
	r := t.Add(Node{Kind: AliasKind, Start: 10, End: 12, Parent: s, Ref: "x", Target: s})
	t.Nodes[m].Children = []NodeID{p}
	t.Nodes[p].Key, t.Nodes[p].Val = k, s
	t.Nodes[s].Children = []NodeID{x, r}
	t.Root = m
	return t
}

func TestWalk(t *testing.T) {
	tree := sample()
	var got []Kind
	tree.Walk(tree.Root, func(id NodeID) bool {
		got = append(got, tree.Nodes[id].Kind)
		return true
	})
	want := []Kind{MapKind, PairKind, ScalarKind, SeqKind, ScalarKind, AliasKind}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("walk order (-want +got):\n%s", diff)
	}

	got = got[:0]
	tree.Walk(tree.Root, func(id NodeID) bool {
		got = append(got, tree.Nodes[id].Kind)
		return tree.Nodes[id].Kind != SeqKind
	})
	if len(got) != 4 {
		t.Errorf("pruned walk visited %v", got)
	}
}

func TestAnchorsText(t *testing.T) {
	tree := sample()
	if diff := cmp.Diff(map[string][]NodeID{"x": {3}}, tree.Anchors()); diff != "" {
		t.Errorf("anchors (-want +got):\n%s", diff)
	}
	if got := tree.Text(3); got != "[x, *x]" {
		t.Errorf("text %q", got)
	}
	if tree.Node(NoNode) != nil || tree.Text(NoNode) != "" {
		t.Errorf("NoNode should be empty")
	}
}

func TestString(t *testing.T) {
	want := `Map [0,13)
  Pair [0,13)
    Scalar [0,1) "a" plain
    Seq [6,13) &x flow
      Scalar [7,8) "x" plain
      Alias [10,12) *x -> 3
`
	if diff := cmp.Diff(want, sample().String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
