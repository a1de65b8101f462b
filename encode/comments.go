package encode

import (
	"maps"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/signadot/yamlptr/comments"
	"github.com/signadot/yamlptr/ir"
	"github.com/signadot/yamlptr/jpath"
)

type target struct {
	path string
	pos  yaml.CommentPosition
}

// CommentMap places attached comments on the YAML paths of node.  Leading
// comments precede the first entry of a collection, trailing ones follow
// its last entry and comments between two entries precede the second.
// Comments of values not in node, or which would fall on the document
// root, are dropped.
func CommentMap(node *ir.Node, cs map[string][]comments.Attached) (yaml.CommentMap, error) {
	texts := map[target][]string{}
	var order []target
	for _, ptr := range slices.Sorted(maps.Keys(cs)) {
		p, err := jpath.ParsePointer(ptr)
		if err != nil {
			return nil, err
		}
		v, segs, ok := resolve(node, p)
		if !ok {
			continue
		}
		for _, a := range cs[ptr] {
			at, pos, ok := place(v, segs, a)
			if !ok {
				continue
			}
			tgt := target{path: yamlPath(at), pos: pos}
			if _, seen := texts[tgt]; !seen {
				order = append(order, tgt)
			}
			texts[tgt] = append(texts[tgt], a.Value)
		}
	}
	res := yaml.CommentMap{}
	for _, tgt := range order {
		c := &yaml.Comment{Texts: texts[tgt], Position: tgt.pos}
		if tgt.pos == yaml.CommentLinePosition {
			c.Texts = []string{strings.Join(c.Texts, " #")}
		}
		res[tgt.path] = append(res[tgt.path], c)
	}
	return res, nil
}

// resolve follows p in node, giving array steps as indices.
func resolve(node *ir.Node, p jpath.Path) (*ir.Node, jpath.Path, bool) {
	segs := make(jpath.Path, 0, len(p))
	for _, seg := range p {
		switch node.Type {
		case ir.ArrayType:
			i, ok := seg.AsIndex()
			if !ok || i >= len(node.Values) {
				return nil, nil, false
			}
			node = node.Values[i]
			segs = append(segs, jpath.Index(i))
		case ir.ObjectType:
			next := ir.Get(node, seg.Key)
			if next == nil {
				return nil, nil, false
			}
			node = next
			segs = append(segs, seg)
		default:
			return nil, nil, false
		}
	}
	return node, segs, true
}

func place(v *ir.Node, at jpath.Path, a comments.Attached) (jpath.Path, yaml.CommentPosition, bool) {
	pos := yaml.CommentHeadPosition
	switch a.Placement {
	case comments.BeforeEOL:
		pos = yaml.CommentLinePosition
	case comments.Leading:
		if seg, ok := entry(v, 0); ok {
			at = at.Append(seg)
		}
	case comments.Between:
		if len(a.Between) != 2 {
			return nil, 0, false
		}
		seg := jpath.Key(a.Between[1])
		if v.Type == ir.ArrayType {
			i, ok := seg.AsIndex()
			if !ok {
				return nil, 0, false
			}
			seg = jpath.Index(i)
		}
		at = at.Append(seg)
	default:
		pos = yaml.CommentFootPosition
		if seg, ok := entry(v, -1); ok {
			at = at.Append(seg)
		}
	}
	return at, pos, len(at) != 0
}

// entry gives the segment of the i'th entry of a collection, counting
// from the end when i is negative.
func entry(v *ir.Node, i int) (jpath.Segment, bool) {
	n := len(v.Values)
	if v.Type != ir.ArrayType && v.Type != ir.ObjectType || n == 0 {
		return jpath.Segment{}, false
	}
	if i < 0 {
		i += n
	}
	if v.Type == ir.ArrayType {
		return jpath.Index(i), true
	}
	return jpath.Key(v.Fields[i].String), true
}

func yamlPath(p jpath.Path) string {
	b := (&yaml.PathBuilder{}).Root()
	for _, s := range p {
		if s.IsIndex {
			b = b.Index(uint(s.Index))
		} else {
			b = b.Child(s.Key)
		}
	}
	return b.Build().String()
}
