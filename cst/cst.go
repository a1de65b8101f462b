// Package cst holds the concrete syntax tree of a YAML document.
//
// Nodes live in an arena ([Tree.Nodes]) and refer to each other by
// [NodeID].  Every node carries a half open [Start, End) byte range into
// the source and the id of its parent, [NoNode] at the root.
package cst

import "fmt"

type Kind uint8

const (
	ScalarKind Kind = iota
	MapKind
	PairKind
	SeqKind
	AliasKind
	IncludeKind
)

func (k Kind) String() string {
	switch k {
	case ScalarKind:
		return "Scalar"
	case MapKind:
		return "Map"
	case PairKind:
		return "Pair"
	case SeqKind:
		return "Seq"
	case AliasKind:
		return "Alias"
	case IncludeKind:
		return "Include"
	default:
		return "<unknown kind>"
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Style is the authored style of a scalar.
type Style uint8

const (
	Plain Style = iota
	SingleQuoted
	DoubleQuoted
	Literal
	Folded
)

func (s Style) String() string {
	return [...]string{"plain", "single", "double", "literal", "folded"}[s]
}

func (s Style) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Quoted reports whether s is a quoted or block style, whose value is
// always a string.
func (s Style) Quoted() bool {
	return s != Plain
}

type NodeID int32

const NoNode NodeID = -1

type Node struct {
	Kind   Kind
	Start  int
	End    int
	Parent NodeID

	// Anchor is the anchor id the node declares with &, if any.
	Anchor string
	Tag    string

	// scalars and include references
	Value string
	Raw   string
	Style Style

	// map pairs or sequence items; an empty sequence slot is NoNode.
	Children []NodeID
	Flow     bool

	// pairs; Val is NoNode for `key:`
	Key NodeID
	Val NodeID

	// aliases; Target is NoNode when the anchor is undefined.
	Ref    string
	Target NodeID
}

// Make returns a node of kind k starting at start with no links.
func Make(k Kind, start int, parent NodeID) Node {
	return Node{
		Kind:   k,
		Start:  start,
		End:    start,
		Parent: parent,
		Key:    NoNode,
		Val:    NoNode,
		Target: NoNode,
	}
}

type Comment struct {
	Value string
	Start int
	End   int
}

// Error is a structural error found while building the tree.
type Error struct {
	Reason    string
	Offset    int
	Line      int
	Column    int
	IsWarning bool
	ToLineEnd bool
}

func (e Error) Error() string {
	return fmt.Sprintf("%s (line=%d, col=%d)", e.Reason, e.Line, e.Column)
}

type Tree struct {
	Src      []byte
	Nodes    []Node
	Root     NodeID
	Comments []Comment
	Errors   []Error
}

func New(src []byte) *Tree {
	return &Tree{Src: src, Root: NoNode}
}

func (t *Tree) Add(n Node) NodeID {
	t.Nodes = append(t.Nodes, n)
	return NodeID(len(t.Nodes) - 1)
}

func (t *Tree) Valid(id NodeID) bool {
	return id >= 0 && int(id) < len(t.Nodes)
}

// Node returns the node with id, or nil when id is NoNode or out of range.
// The pointer is invalidated by a subsequent Add.
func (t *Tree) Node(id NodeID) *Node {
	if !t.Valid(id) {
		return nil
	}
	return &t.Nodes[id]
}

func (t *Tree) Parent(id NodeID) NodeID {
	if !t.Valid(id) {
		return NoNode
	}
	return t.Nodes[id].Parent
}

func (t *Tree) Is(id NodeID, k Kind) bool {
	return t.Valid(id) && t.Nodes[id].Kind == k
}

// Text is the source text covered by id.
func (t *Tree) Text(id NodeID) string {
	n := t.Node(id)
	if n == nil {
		return ""
	}
	return string(t.Src[n.Start:n.End])
}

// Walk visits id and its descendants in document order.  Returning false
// from f skips the descendants of the node.  Alias targets are not
// followed.
func (t *Tree) Walk(id NodeID, f func(NodeID) bool) {
	n := t.Node(id)
	if n == nil || !f(id) {
		return
	}
	switch n.Kind {
	case MapKind, SeqKind:
		for _, c := range n.Children {
			t.Walk(c, f)
		}
	case PairKind:
		t.Walk(n.Key, f)
		t.Walk(n.Val, f)
	}
}

// Anchors maps every declared anchor id to the nodes declaring it, in
// document order.
func (t *Tree) Anchors() map[string][]NodeID {
	res := map[string][]NodeID{}
	for i := range t.Nodes {
		if a := t.Nodes[i].Anchor; a != "" {
			res[a] = append(res[a], NodeID(i))
		}
	}
	return res
}
