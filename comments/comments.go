// Package comments associates the comments of a YAML document with the
// JSON pointers of the values they annotate.
//
// Each node claims, from the comments its parent left unclaimed, those
// lying within its lines.  After its children have claimed theirs, the
// comments a node keeps are classified against it.  Comments outside the
// lines of the document root trail the root.
package comments

import (
	"strconv"

	"github.com/signadot/yamlptr/cst"
	"github.com/signadot/yamlptr/debug"
	"github.com/signadot/yamlptr/jpath"
	"github.com/signadot/yamlptr/scalar"
	"github.com/signadot/yamlptr/token"
)

type Placement string

const (
	// BeforeEOL follows a scalar or a mapping key on its line.
	BeforeEOL Placement = "before-eol"
	// Leading precedes the first entry of a collection.
	Leading Placement = "leading"
	// Trailing follows the last entry of a collection.
	Trailing Placement = "trailing"
	// Between lies between two entries of a collection.
	Between Placement = "between"
)

type Attached struct {
	Value     string    `json:"value"`
	Placement Placement `json:"placement"`
	// Between holds the keys or indices of the entries around a
	// comment placed Between.
	Between []string `json:"between,omitempty"`
}

// Attach maps pointers such as "#" and "#/a/0" to the comments of cs
// attached to them, in document order.
func Attach(t *cst.Tree, lines token.Lines, cs []cst.Comment) map[string][]Attached {
	a := &attacher{t: t, lines: lines, res: map[string][]Attached{}}
	pool := append([]cst.Comment(nil), cs...)
	if t.Valid(t.Root) {
		a.visit(t.Root, "#", &pool)
	}
	for _, c := range pool {
		a.res["#"] = append(a.res["#"], Attached{Value: c.Value, Placement: Trailing})
	}
	return a.res
}

type attacher struct {
	t     *cst.Tree
	lines token.Lines
	res   map[string][]Attached
}

func (a *attacher) visit(id cst.NodeID, ptr string, pool *[]cst.Comment) {
	mine := a.claim(id, pool)
	n := a.t.Node(id)
	switch n.Kind {
	case cst.MapKind:
		for _, pid := range n.Children {
			k := a.t.Node(a.t.Nodes[pid].Key)
			if k == nil || k.Kind != cst.ScalarKind {
				continue
			}
			a.visit(pid, ptr+"/"+jpath.EncodePointerSegment(scalar.KeyString(k)), &mine)
		}
	case cst.PairKind:
		if a.t.Is(n.Val, cst.MapKind) || a.t.Is(n.Val, cst.SeqKind) {
			a.visit(n.Val, ptr, &mine)
		}
	case cst.SeqKind:
		for i, item := range n.Children {
			if item != cst.NoNode {
				a.visit(item, ptr+"/"+strconv.Itoa(i), &mine)
			}
		}
	}
	for _, c := range mine {
		a.res[ptr] = append(a.res[ptr], a.classify(id, c))
	}
}

// claim removes from pool the comments within the lines of id.
func (a *attacher) claim(id cst.NodeID, pool *[]cst.Comment) []cst.Comment {
	if len(*pool) == 0 {
		return nil
	}
	first := a.lines.LineForOffset(a.start(id))
	last := a.lines.LineForOffset(a.end(id))
	var mine, rest []cst.Comment
	for _, c := range *pool {
		if a.lines.LineForOffset(c.Start) >= first && a.lines.LineForOffset(c.End) <= last {
			mine = append(mine, c)
		} else {
			rest = append(rest, c)
		}
	}
	*pool = rest
	if debug.Comments() && len(mine) != 0 {
		debug.Logf("%s at lines %d-%d claims %d comments", a.t.Nodes[id].Kind, first, last, len(mine))
	}
	return mine
}

func (a *attacher) start(id cst.NodeID) int {
	if id == a.t.Root {
		return 0
	}
	n := a.t.Node(id)
	if k := a.t.Node(n.Key); n.Kind == cst.PairKind && k != nil {
		return k.Start
	}
	return n.Start
}

func (a *attacher) end(id cst.NodeID) int {
	n := a.t.Node(id)
	switch n.Kind {
	case cst.PairKind:
		if n.Val != cst.NoNode {
			return a.end(n.Val)
		}
	case cst.MapKind, cst.SeqKind:
		if last := lastChild(n); last != nil {
			return a.t.Nodes[*last].End
		}
	}
	return n.End
}

func lastChild(n *cst.Node) *cst.NodeID {
	if len(n.Children) == 0 || n.Children[len(n.Children)-1] == cst.NoNode {
		return nil
	}
	return &n.Children[len(n.Children)-1]
}

func (a *attacher) classify(id cst.NodeID, c cst.Comment) Attached {
	res := Attached{Value: c.Value, Placement: Trailing}
	switch {
	case a.beforeEOL(id, c):
		res.Placement = BeforeEOL
	case a.leading(id, c):
		res.Placement = Leading
	case a.trailing(id, c):
	default:
		if left, right, ok := a.between(id, c); ok {
			res.Placement = Between
			res.Between = []string{left, right}
		}
	}
	return res
}

func (a *attacher) beforeEOL(id cst.NodeID, c cst.Comment) bool {
	n := a.t.Node(id)
	switch n.Kind {
	case cst.ScalarKind:
		return true
	case cst.PairKind:
		k := a.t.Node(n.Key)
		return k != nil && a.lines.LineForOffset(c.End) == a.lines.LineForOffset(k.End)
	}
	return false
}

func (a *attacher) leading(id cst.NodeID, c cst.Comment) bool {
	n := a.t.Node(id)
	switch n.Kind {
	case cst.MapKind, cst.SeqKind:
		if len(n.Children) == 0 {
			return true
		}
		first := a.t.Node(n.Children[0])
		return first == nil || first.Start > c.Start
	case cst.PairKind:
		v := a.t.Node(n.Val)
		return v == nil || v.Start > c.Start
	}
	return false
}

func (a *attacher) trailing(id cst.NodeID, c cst.Comment) bool {
	n := a.t.Node(id)
	switch n.Kind {
	case cst.MapKind, cst.SeqKind:
		last := lastChild(n)
		return last != nil && c.End > a.t.Nodes[*last].End
	case cst.PairKind:
		v := a.t.Node(n.Val)
		return v != nil && c.End > v.End
	}
	return false
}

// between finds the entries of the collection id on either side of c.
func (a *attacher) between(id cst.NodeID, c cst.Comment) (string, string, bool) {
	n := a.t.Node(id)
	if n.Kind != cst.MapKind && n.Kind != cst.SeqKind {
		return "", "", false
	}
	left, hasLeft := "", false
	for i, cid := range n.Children {
		e := a.t.Node(cid)
		if e == nil {
			continue
		}
		name := strconv.Itoa(i)
		if n.Kind == cst.MapKind {
			name = a.t.Text(e.Key)
			if k := a.t.Node(e.Key); k != nil && k.Kind == cst.ScalarKind {
				name = scalar.KeyString(k)
			}
		}
		switch {
		case c.Start > e.Start:
			left, hasLeft = name, true
		case hasLeft && e.Start > c.End:
			return left, name, true
		}
	}
	return "", "", false
}
