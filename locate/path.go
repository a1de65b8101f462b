package locate

import (
	"slices"

	"github.com/signadot/yamlptr/cst"
	"github.com/signadot/yamlptr/jpath"
	"github.com/signadot/yamlptr/scalar"
)

// BuildPath gives the path of node in the value, climbing parent links.
//
// A scalar contributes its key form.  A pair reached from its value side
// contributes its key, replacing the segment below it instead when that
// segment equals the pair's scalar value.  A sequence replaces the segment
// of a scalar item by the item's index and otherwise prepends the index.
func BuildPath(t *cst.Tree, node cst.NodeID) jpath.Path {
	var rev []jpath.Segment
	head := func() *jpath.Segment {
		if len(rev) == 0 {
			return nil
		}
		return &rev[len(rev)-1]
	}
	prev := node
	for id := node; t.Valid(id); id = t.Nodes[id].Parent {
		n := &t.Nodes[id]
		switch n.Kind {
		case cst.ScalarKind:
			rev = append(rev, jpath.Key(scalar.KeyString(n)))
		case cst.PairKind:
			if prev == n.Key {
				break
			}
			key := jpath.Key(keyText(t, n.Key))
			if l := head(); l != nil && isScalarEqual(t, n.Val, *l) {
				*l = key
			} else {
				rev = append(rev, key)
			}
		case cst.SeqKind:
			i := slices.Index(n.Children, prev)
			if i < 0 {
				break
			}
			if t.Is(prev, cst.ScalarKind) && head() != nil {
				*head() = jpath.Index(i)
			} else {
				rev = append(rev, jpath.Index(i))
			}
		}
		prev = id
	}
	slices.Reverse(rev)
	return jpath.Path(rev)
}

func keyText(t *cst.Tree, key cst.NodeID) string {
	k := t.Node(key)
	switch {
	case k == nil:
		return ""
	case k.Kind == cst.ScalarKind:
		return scalar.KeyString(k)
	}
	return t.Text(key)
}

func isScalarEqual(t *cst.Tree, id cst.NodeID, seg jpath.Segment) bool {
	n := t.Node(id)
	return n != nil && n.Kind == cst.ScalarKind && !seg.IsIndex && scalar.KeyString(n) == seg.Key
}
