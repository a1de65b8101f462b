package locate

import (
	"github.com/signadot/yamlptr/cst"
	"github.com/signadot/yamlptr/debug"
	"github.com/signadot/yamlptr/jpath"
	"github.com/signadot/yamlptr/token"
)

// PathForPosition gives the path of the value at a zero based line and
// character.  It reports false when the position is outside the text or
// no path leads to it.
func PathForPosition(t *cst.Tree, lines token.Lines, line, char int) (jpath.Path, bool) {
	off, ok := lines.Offset(line, char)
	if !ok || !t.Valid(t.Root) {
		return nil, false
	}
	node := closestScalar(t, lines, t.Root, off, line)
	if debug.Locate() {
		debug.Logf("position %d:%d offset %d -> %s", line, char, off, t.Node(node).Kind)
	}
	p := BuildPath(t, node)
	if len(p) == 0 {
		return nil, false
	}
	return p, true
}

// children lists the nodes searched below id by closestScalar.  A scalar
// lists itself.
func children(t *cst.Tree, id cst.NodeID) []cst.NodeID {
	n := t.Node(id)
	switch n.Kind {
	case cst.MapKind, cst.SeqKind:
		return n.Children
	case cst.PairKind:
		return []cst.NodeID{n.Key, n.Val}
	case cst.ScalarKind:
		return []cst.NodeID{id}
	}
	return nil
}

func contains(n *cst.Node, off int) bool {
	return n.Start <= off && off <= n.End
}

// closestScalar descends from container to the innermost node whose range,
// end included, holds off.  When no child holds it the position is in
// the indentation or key region of container.
func closestScalar(t *cst.Tree, lines token.Lines, container cst.NodeID, off, line int) cst.NodeID {
	for _, c := range children(t, container) {
		n := t.Node(c)
		if n == nil || !contains(n, off) {
			continue
		}
		if n.Kind == cst.ScalarKind {
			return c
		}
		return closestScalar(t, lines, c, off, line)
	}
	if lines.IsBlank(line) {
		return container
	}
	if item := itemAt(t, container, off); item != cst.NoNode {
		return item
	}
	n := t.Node(container)
	if n.Start >= lines.LineStart(line) || off > n.End {
		return container
	}
	if n.Kind != cst.PairKind {
		return firstScalarChild(t, lines, container, line)
	}
	if k := t.Node(n.Key); n.Val != cst.NoNode && k != nil && k.End < off {
		return firstScalarChild(t, lines, n.Val, line)
	}
	return container
}

// itemAt returns the collection item of seq whose "-" indicator, or the
// space following it, holds off.
func itemAt(t *cst.Tree, seq cst.NodeID, off int) cst.NodeID {
	n := t.Node(seq)
	if n.Kind != cst.SeqKind {
		return cst.NoNode
	}
	for i, c := range n.Children {
		cn := t.Node(c)
		if cn == nil || cn.Kind != cst.MapKind && cn.Kind != cst.SeqKind {
			continue
		}
		if dash := indicator(t, seq, i); dash >= 0 && dash <= off && off < cn.Start {
			return c
		}
	}
	return cst.NoNode
}

// firstScalarChild moves forward from id to the first descendant starting
// on line, stopping at a pair's key.
func firstScalarChild(t *cst.Tree, lines token.Lines, id cst.NodeID, line int) cst.NodeID {
	n := t.Node(id)
	switch n.Kind {
	case cst.PairKind:
		if n.Key != cst.NoNode {
			return n.Key
		}
	case cst.MapKind, cst.SeqKind:
		lo, hi := lines.LineStart(line), lines.LineStart(line+1)
		for _, c := range n.Children {
			if cn := t.Node(c); cn != nil && cn.Start >= lo && cn.Start < hi {
				return firstScalarChild(t, lines, c, line)
			}
		}
	}
	return id
}

// NodeAt returns the innermost node whose range holds the offset of line
// and char, aliases and include references included.
func NodeAt(t *cst.Tree, lines token.Lines, line, char int) (cst.NodeID, bool) {
	off, ok := lines.Offset(line, char)
	if !ok || !t.Valid(t.Root) || !contains(t.Node(t.Root), off) {
		return cst.NoNode, false
	}
	res := cst.NoNode
	t.Walk(t.Root, func(id cst.NodeID) bool {
		if !contains(t.Node(id), off) {
			return false
		}
		res = id
		return true
	})
	return res, true
}
