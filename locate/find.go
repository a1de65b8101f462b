package locate

import (
	"slices"

	"github.com/signadot/yamlptr/cst"
	"github.com/signadot/yamlptr/debug"
	"github.com/signadot/yamlptr/jpath"
	"github.com/signadot/yamlptr/scalar"
)

// MergeKey is the reserved key whose value is merged into its mapping.
const MergeKey = "<<"

type FindOptions struct {
	// Closest returns the deepest node resolved when the path cannot be
	// followed to its end.
	Closest bool
	// MergeKeys makes pairs introduced by << visible.
	MergeKeys bool
}

// Find resolves path from the root of t.  It returns the node and whether
// the whole path was resolved.  When it was not, the node is the deepest
// resolved node if opts.Closest is set and NoNode otherwise.
func Find(t *cst.Tree, path jpath.Path, opts FindOptions) (cst.NodeID, bool) {
	return FindFrom(t, t.Root, path, opts)
}

// FindFrom is Find starting at node.
func FindFrom(t *cst.Tree, node cst.NodeID, path jpath.Path, opts FindOptions) (cst.NodeID, bool) {
	if !t.Valid(node) {
		return cst.NoNode, false
	}
	miss := func() (cst.NodeID, bool) {
		if debug.Locate() {
			debug.Logf("find %s: stopped at %s", path, t.Node(node).Kind)
		}
		if opts.Closest {
			return node, false
		}
		return cst.NoNode, false
	}
	for _, seg := range path {
		n := t.Node(node)
		switch n.Kind {
		case cst.MapKind:
			pair := findPair(t, node, seg.String(), opts.MergeKeys)
			if pair == cst.NoNode {
				return miss()
			}
			p := t.Node(pair)
			node = p.Val
			if node == cst.NoNode {
				node = p.Key
			}
		case cst.SeqKind:
			i, ok := seg.AsIndex()
			if !ok || i >= len(n.Children) || n.Children[i] == cst.NoNode {
				return miss()
			}
			node = n.Children[i]
		default:
			return miss()
		}
	}
	return node, true
}

// findPair returns the pair of mapping m which supplies key, or NoNode.
func findPair(t *cst.Tree, m cst.NodeID, key string, mergeKeys bool) cst.NodeID {
	explicit, merged := Pairs(t, m, mergeKeys)
	for _, list := range [][]cst.NodeID{explicit, merged} {
		for i := len(list) - 1; i >= 0; i-- {
			k := t.Node(t.Nodes[list[i]].Key)
			if k != nil && k.Kind == cst.ScalarKind && scalar.KeyString(k) == key {
				return list[i]
			}
		}
	}
	return cst.NoNode
}

// Pairs splits the pairs of mapping m into explicit pairs and pairs
// brought in by merge keys, both in precedence order: a later pair in
// either list overrides an earlier one, and explicit pairs override
// merged ones.  Without mergeKeys every pair is explicit.
func Pairs(t *cst.Tree, m cst.NodeID, mergeKeys bool) (explicit, merged []cst.NodeID) {
	children := t.Node(m).Children
	if !mergeKeys {
		return children, nil
	}
	for _, pair := range children {
		if !IsMergePair(t, pair) {
			explicit = append(explicit, pair)
			continue
		}
		merged = appendMergeSources(t, merged, t.Nodes[pair].Val, 0)
	}
	return explicit, merged
}

// IsMergePair reports whether pair has the key <<.
func IsMergePair(t *cst.Tree, pair cst.NodeID) bool {
	k := t.Node(t.Node(pair).Key)
	return k != nil && k.Kind == cst.ScalarKind && !k.Style.Quoted() && k.Value == MergeKey
}

// appendMergeSources flattens the value of a merge key.  Sequence items
// are added last to first so that earlier sources take precedence.
func appendMergeSources(t *cst.Tree, dst []cst.NodeID, id cst.NodeID, depth int) []cst.NodeID {
	n := t.Node(id)
	if n == nil || depth > len(t.Nodes) {
		return dst
	}
	switch n.Kind {
	case cst.MapKind:
		return append(dst, n.Children...)
	case cst.SeqKind:
		for _, item := range slices.Backward(n.Children) {
			dst = appendMergeSources(t, dst, item, depth+1)
		}
	case cst.AliasKind:
		return appendMergeSources(t, dst, n.Target, depth+1)
	}
	return dst
}
