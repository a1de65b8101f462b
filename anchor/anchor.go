// Package anchor expands aliases without looping on self-referencing
// anchors.
//
// An alias is circular when one of its ancestors declares the anchor it
// refers to.  Expanding a circular alias unfolds its target one more
// time; inside that unfolding, references to the same anchor and aliases
// which are circular at their own site are cut, however many plain
// aliases lie in between.  Each alias site expands independently.
package anchor

import (
	"slices"

	"github.com/signadot/yamlptr/cst"
)

// IsCircular reports whether an ancestor of the alias ref declares the
// anchor ref refers to.
func IsCircular(t *cst.Tree, ref cst.NodeID) bool {
	n := t.Node(ref)
	if n == nil || n.Kind != cst.AliasKind {
		return false
	}
	for p := t.Parent(ref); p != cst.NoNode; p = t.Parent(p) {
		if t.Nodes[p].Anchor == n.Ref {
			return true
		}
	}
	return false
}

// Open is the set of anchors whose circular expansion encloses the
// current point of a walk.  The zero value is an empty set.
type Open struct {
	ids []string
}

func (o Open) Has(id string) bool {
	return slices.Contains(o.ids, id)
}

func (o Open) Empty() bool {
	return len(o.ids) == 0
}

// With returns o plus id.
func (o Open) With(id string) Open {
	if o.Has(id) {
		return o
	}
	return Open{ids: append(slices.Clip(o.ids), id)}
}

// Follow decides how a walk in state o continues at alias ref.  It
// returns the node to walk and the state to walk it in, or false if the
// alias is cut and stands for nothing.
func Follow(t *cst.Tree, ref cst.NodeID, o Open) (cst.NodeID, Open, bool) {
	n := t.Node(ref)
	if n == nil || n.Kind != cst.AliasKind || !t.Valid(n.Target) {
		return cst.NoNode, Open{}, false
	}
	circular := IsCircular(t, ref)
	if !o.Empty() && (o.Has(n.Ref) || circular) {
		return cst.NoNode, Open{}, false
	}
	if circular {
		return n.Target, o.With(n.Ref), true
	}
	return n.Target, o, true
}

// Dereference returns a copy of t in which, below node, aliases to
// anchorID and aliases circular at their own site are replaced by empty
// slots.  Only nodes which change are copied; the result shares the rest
// with t.  The returned id is node, or NoNode if node itself was cut.
func Dereference(t *cst.Tree, node cst.NodeID, anchorID string) (*cst.Tree, cst.NodeID) {
	res := *t
	res.Nodes = slices.Clone(t.Nodes)
	d := &derefer{orig: t, res: &res, id: anchorID}
	return &res, d.deref(node)
}

type derefer struct {
	orig *cst.Tree
	res  *cst.Tree
	id   string
}

func (d *derefer) deref(id cst.NodeID) cst.NodeID {
	n := d.orig.Node(id)
	if n == nil {
		return cst.NoNode
	}
	switch n.Kind {
	case cst.AliasKind:
		if n.Ref == d.id || IsCircular(d.orig, id) {
			return cst.NoNode
		}
	case cst.MapKind:
		for _, c := range n.Children {
			d.deref(c)
		}
	case cst.SeqKind:
		items := make([]cst.NodeID, len(n.Children))
		for i, c := range n.Children {
			items[i] = d.deref(c)
		}
		d.res.Nodes[id].Children = items
	case cst.PairKind:
		d.res.Nodes[id].Val = d.deref(n.Val)
	}
	return id
}
