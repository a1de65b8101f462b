package locate

import (
	"slices"

	"go.lsp.dev/protocol"

	"github.com/signadot/yamlptr/cst"
	"github.com/signadot/yamlptr/ir"
	"github.com/signadot/yamlptr/jpath"
	"github.com/signadot/yamlptr/token"
)

type LocateOptions = FindOptions

// LocationForPath gives the source range of the value at path.  Without
// opts.Closest it reports false when the path does not resolve.
func LocationForPath(t *cst.Tree, lines token.Lines, path jpath.Path, opts LocateOptions) (protocol.Range, bool) {
	node, exact := Find(t, path, opts)
	if !t.Valid(node) || !exact && !opts.Closest {
		return protocol.Range{}, false
	}
	return NodeRange(t, lines, node), true
}

// NodeRange is the range of the value held by node.  A composite value
// held by a pair starts after its key, and one held by a block sequence
// starts at its "-"; it ends where its last descendant ends.  The
// document root starts at the beginning of the text.
func NodeRange(t *cst.Tree, lines token.Lines, node cst.NodeID) protocol.Range {
	return lines.Range(startOffset(t, node), endOffset(t, node))
}

func startOffset(t *cst.Tree, id cst.NodeID) int {
	n := t.Node(id)
	if id == t.Root {
		return 0
	}
	p := t.Node(n.Parent)
	switch {
	case p != nil && p.Kind == cst.PairKind && p.Val == cst.NoNode:
		return p.End
	case p != nil && p.Kind == cst.PairKind && p.Val == id && n.Kind != cst.ScalarKind:
		if k := t.Node(p.Key); k != nil {
			return k.End + 1
		}
	case p != nil && p.Kind == cst.SeqKind && (n.Kind == cst.MapKind || n.Kind == cst.SeqKind):
		if dash := indicator(t, n.Parent, slices.Index(p.Children, id)); dash >= 0 {
			return dash
		}
	}
	return n.Start
}

// indicator returns the offset of the "-" introducing item i of seq, or
// -1 when the item has none, as in flow sequences.
func indicator(t *cst.Tree, seq cst.NodeID, i int) int {
	s := t.Node(seq)
	if s == nil || i < 0 || i >= len(s.Children) {
		return -1
	}
	item := t.Node(s.Children[i])
	if item == nil {
		return -1
	}
	from := s.Start
	for j := i - 1; j >= 0; j-- {
		if prev := t.Node(s.Children[j]); prev != nil {
			from = prev.End
			break
		}
	}
	dash := -1
	for k := from; k < item.Start && k < len(t.Src); k++ {
		switch c := t.Src[k]; {
		case c == '#':
			for k+1 < item.Start && !token.IsBreak(t.Src[k+1]) {
				k++
			}
		case c == '-' && token.SpaceAt(t.Src, k+1):
			dash = k
		}
	}
	return dash
}

func endOffset(t *cst.Tree, id cst.NodeID) int {
	n := t.Node(id)
	switch n.Kind {
	case cst.SeqKind:
		if k := len(n.Children); k > 0 && n.Children[k-1] != cst.NoNode {
			return endOffset(t, n.Children[k-1])
		}
	case cst.PairKind:
		if n.Val != cst.NoNode {
			return endOffset(t, n.Val)
		}
	case cst.MapKind:
		if k := len(n.Children); k > 0 {
			return endOffset(t, n.Children[k-1])
		}
	case cst.ScalarKind:
		if p := t.Node(n.Parent); p != nil && p.Kind == cst.PairKind && p.Val == cst.NoNode {
			return p.End
		}
	}
	return n.End
}

// CompactRange is a range as start line, start character, end line and
// end character.
type CompactRange [4]int

func compact(r protocol.Range) CompactRange {
	return CompactRange{
		int(r.Start.Line), int(r.Start.Character),
		int(r.End.Line), int(r.End.Character),
	}
}

// ComputeRanges maps the JSON pointer of every node of value to the
// closest source range of t.
func ComputeRanges(t *cst.Tree, lines token.Lines, value *ir.Node, mergeKeys bool) map[string]CompactRange {
	res := map[string]CompactRange{}
	if !t.Valid(t.Root) || value == nil {
		return res
	}
	opts := FindOptions{Closest: true, MergeKeys: mergeKeys}
	var rec func(node cst.NodeID, v *ir.Node, p jpath.Path)
	rec = func(node cst.NodeID, v *ir.Node, p jpath.Path) {
		res[p.Pointer()] = compact(NodeRange(t, lines, node))
		switch v.Type {
		case ir.ObjectType:
			for i, f := range v.Fields {
				seg := jpath.Key(f.String)
				child, _ := FindFrom(t, node, jpath.Path{seg}, opts)
				rec(child, v.Values[i], p.Append(seg))
			}
		case ir.ArrayType:
			for i, e := range v.Values {
				seg := jpath.Index(i)
				child, _ := FindFrom(t, node, jpath.Path{seg}, opts)
				rec(child, e, p.Append(seg))
			}
		}
	}
	rec(t.Root, value, nil)
	return res
}
