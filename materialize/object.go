package materialize

import "github.com/signadot/yamlptr/ir"

// object accumulates the entries of a mapping.
type object struct {
	keys     []string
	vals     map[string]*ir.Node
	explicit map[string]bool
}

func newObject() *object {
	return &object{
		vals:     map[string]*ir.Node{},
		explicit: map[string]bool{},
	}
}

// set assigns key.  A key keeps the position of its first assignment.  A
// merged value never replaces an explicit one.
func (o *object) set(key string, v *ir.Node, explicit bool) {
	if _, ok := o.vals[key]; !ok {
		o.keys = append(o.keys, key)
	} else if !explicit && o.explicit[key] {
		return
	}
	o.vals[key] = v
	if explicit {
		o.explicit[key] = true
	}
}

// setDefault assigns key only if it is unset.
func (o *object) setDefault(key string, v *ir.Node) {
	if _, ok := o.vals[key]; ok {
		return
	}
	o.set(key, v, false)
}

// merge sets the entries of src in order as merged values.
func (o *object) merge(src *object) {
	for _, k := range src.keys {
		o.set(k, src.vals[k], false)
	}
}

func (o *object) node(ordered bool) *ir.Node {
	if !ordered {
		return ir.FromMap(o.vals)
	}
	kvs := make([]ir.KeyVal, len(o.keys))
	for i, k := range o.keys {
		kvs[i] = ir.KeyVal{Key: k, Val: o.vals[k]}
	}
	return ir.FromKeyVals(kvs)
}

// mergeSources reduces the value of a merge key to one object.  The value
// is an object or an array of them; earlier objects take precedence.
func mergeSources(v *ir.Node) *object {
	res := newObject()
	var srcs []*ir.Node
	switch v.Type {
	case ir.ObjectType:
		srcs = []*ir.Node{v}
	case ir.ArrayType:
		srcs = v.Values
	}
	for _, src := range srcs {
		if src.Type != ir.ObjectType {
			continue
		}
		for i, f := range src.Fields {
			res.setDefault(f.String, src.Values[i])
		}
	}
	return res
}
