package ir

import "github.com/signadot/yamlptr/jpath"

// Path returns the location of y relative to its root.
func (y *Node) Path() jpath.Path {
	n := 0
	for x := y; x.Parent != nil; x = x.Parent {
		n++
	}
	res := make(jpath.Path, n)
	for x := y; x.Parent != nil; x = x.Parent {
		n--
		switch x.Parent.Type {
		case ObjectType:
			res[n] = jpath.Key(x.ParentField)
		case ArrayType:
			res[n] = jpath.Index(x.ParentIndex)
		default:
			panic("parent but not in container")
		}
	}
	return res
}

// GetPath returns the node at p below y, or nil.  Keys consisting of
// digits address array elements.
func (y *Node) GetPath(p jpath.Path) *Node {
	res := y
	for _, seg := range p {
		switch res.Type {
		case ObjectType:
			res = Get(res, seg.String())
		case ArrayType:
			i, ok := seg.AsIndex()
			if !ok || i >= len(res.Values) {
				return nil
			}
			res = res.Values[i]
		default:
			return nil
		}
		if res == nil {
			return nil
		}
	}
	return res
}

// Walk calls f with the path of every node below y, y included, in
// document order.
func (y *Node) Walk(f func(p jpath.Path, n *Node)) {
	y.walk(jpath.Path{}, f)
}

func (y *Node) walk(p jpath.Path, f func(jpath.Path, *Node)) {
	f(p, y)
	switch y.Type {
	case ObjectType:
		for i, v := range y.Values {
			v.walk(p.Append(jpath.Key(y.Fields[i].String)), f)
		}
	case ArrayType:
		for i, v := range y.Values {
			v.walk(p.Append(jpath.Index(i)), f)
		}
	}
}
