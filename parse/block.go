package parse

import (
	"github.com/signadot/yamlptr/cst"
	"github.com/signadot/yamlptr/token"
)

type nodeCtx int

const (
	ctxTop nodeCtx = iota
	// value of a block mapping entry
	ctxValue
	// block sequence entry or explicit key
	ctxEntry
)

// blockNode parses a node in block context which must be indented more
// than indent, the column of the enclosing collection.
func (p *parser) blockNode(parent cst.NodeID, indent int, ctx nodeCtx) cst.NodeID {
	defer p.leave()
	if !p.enter() {
		return cst.NoNode
	}
	crossed := p.skipSpace()
	if !p.contentAt(indent, ctx, crossed) {
		return cst.NoNode
	}
	entry := p.i
	if !p.atProps() {
		return p.blockContent(parent, indent, ctx, crossed, entry, nil, false)
	}
	pr := p.props()
	if !p.skipSpace() {
		if p.eof() {
			return p.empty(parent, pr)
		}
		return p.blockContent(parent, indent, ctx, crossed, entry, pr, false)
	}
	if !p.contentAt(indent, ctx, true) {
		return p.empty(parent, pr)
	}
	return p.blockContent(parent, indent, ctx, true, p.i, pr, true)
}

func (p *parser) contentAt(indent int, ctx nodeCtx, crossed bool) bool {
	if p.eof() || p.atDocMarker() {
		return false
	}
	if !crossed {
		return true
	}
	c := p.col(p.i)
	if c > indent {
		return true
	}
	return c == indent && ctx == ctxValue && p.atSeqEntry()
}

// blockContent parses the node starting at the current offset.  entry is
// where the node's line content begins, including inline properties.  own
// is set when pr stood on a line of its own, in which case it belongs to
// the whole node rather than to an implicit key.
func (p *parser) blockContent(parent cst.NodeID, indent int, ctx nodeCtx, crossed bool, entry int, pr *props, own bool) cst.NodeID {
	allowBlock := crossed || ctx != ctxValue
	start := p.i
	switch c := p.d[p.i]; {
	case p.atSeqEntry():
		if !allowBlock {
			p.errAt(start, errBlockSeqHere)
		}
		return p.blockSeq(parent, p.col(start), pr)
	case p.atExplicitKey():
		if !allowBlock {
			p.errAt(start, errBlockMapHere)
		}
		return p.blockMap(parent, p.col(start), pr, cst.NoNode)
	case c == '|' || c == '>':
		return p.blockScalar(parent, indent, pr)
	}
	kpr := pr
	if own {
		kpr = nil
	}
	id, isKey := p.keyOrValue(parent, indent, kpr)
	if !isKey {
		if own {
			p.apply(id, pr)
		}
		return id
	}
	if !allowBlock {
		p.errAt(p.i, errMapValueHere)
		p.skipLine()
		if own {
			p.apply(id, pr)
		}
		return id
	}
	var mpr *props
	if own {
		mpr = pr
	}
	return p.blockMap(parent, p.col(entry), mpr, id)
}

// keyOrValue parses a node which may turn out to be an implicit mapping
// key.  When it is, the offset is left on the ':' indicator.
func (p *parser) keyOrValue(parent cst.NodeID, indent int, pr *props) (cst.NodeID, bool) {
	start := p.i
	var id cst.NodeID
	adjacent := false
	switch c := p.at(p.i); {
	case p.eof():
		return p.empty(parent, pr), false
	case c == '*':
		id = p.alias(parent)
	case c == '[' || c == '{':
		id = p.flowCollection(parent, pr)
		adjacent = true
	case c == '"' || c == '\'':
		id = p.quoted(parent, pr)
		adjacent = true
	case p.plainStart():
		id = p.plainScalar(parent, indent, pr, p.plainKeyAhead())
	default:
		p.errAt(start, unexpectedChar(c))
		p.skipLine()
		return p.empty(parent, pr), false
	}
	if !p.atMapIndicator(adjacent) {
		return id, false
	}
	if p.line(start) != p.line(p.i) {
		p.errAt(start, errMultilineKey)
	}
	return id, true
}

// plainKeyAhead reports whether the plain scalar at the current offset is
// followed by ':' on the same line.
func (p *parser) plainKeyAhead() bool {
	j := p.plainEnd(p.i)
	for j < len(p.d) && token.IsBlank(p.d[j]) {
		j++
	}
	return p.at(j) == ':' && token.SpaceAt(p.d, j+1)
}

// blockMap parses a block mapping whose entries start at column col.  If
// first is not NoNode it is the already parsed key of the first entry and
// the offset is on its ':'.
func (p *parser) blockMap(parent cst.NodeID, col int, pr *props, first cst.NodeID) cst.NodeID {
	start := p.i
	if first != cst.NoNode {
		start = p.tree.Nodes[first].Start
	}
	m := p.add(cst.Make(cst.MapKind, start, parent), pr)
	key := first
	for {
		var pair cst.NodeID
		switch {
		case key != cst.NoNode:
			pair = p.pair(m, key, col)
			key = cst.NoNode
		case p.atExplicitKey():
			pair = p.explicitPair(m, col)
		default:
			pair = p.entry(m, col)
		}
		last := p.i
		if pair != cst.NoNode {
			n := &p.tree.Nodes[m]
			n.Children = append(n.Children, pair)
			n.End = p.tree.Nodes[pair].End
			last = n.End
		}
		if !p.nextEntry(col, last, "mapping") {
			break
		}
	}
	return m
}

// entry parses an implicit key and its value.
func (p *parser) entry(m cst.NodeID, col int) cst.NodeID {
	var pr *props
	if p.atProps() {
		pr = p.props()
		p.skipBlanks()
	}
	start := p.i
	key, isKey := p.keyOrValue(m, col, pr)
	if !isKey {
		if key != cst.NoNode {
			p.errAt(start, errMissedColon)
			p.skipLine()
		}
		return cst.NoNode
	}
	return p.pair(m, key, col)
}

// pair finishes an entry whose key has been parsed; the offset is on ':'.
func (p *parser) pair(m, key cst.NodeID, col int) cst.NodeID {
	pair := p.tree.Add(cst.Make(cst.PairKind, p.tree.Nodes[key].Start, m))
	p.tree.Nodes[key].Parent = pair
	p.tree.Nodes[pair].Key = key
	colon := p.i
	p.i++
	val := p.blockNode(pair, col, ctxValue)
	n := &p.tree.Nodes[pair]
	n.Val = val
	n.End = colon + 1
	if val != cst.NoNode {
		n.End = p.tree.Nodes[val].End
	}
	return pair
}

func (p *parser) explicitPair(m cst.NodeID, col int) cst.NodeID {
	start := p.i
	pair := p.tree.Add(cst.Make(cst.PairKind, start, m))
	p.i++
	key := p.blockNode(pair, col, ctxEntry)
	if key == cst.NoNode {
		key = p.tree.Add(cst.Make(cst.ScalarKind, start+1, pair))
	}
	end := max(start+1, p.tree.Nodes[key].End)
	n := &p.tree.Nodes[pair]
	n.Key = key
	n.End = end
	p.skipSpace()
	if p.eof() || p.col(p.i) != col || p.line(p.i) == p.line(end) {
		return pair
	}
	if p.at(p.i) != ':' || !token.SpaceAt(p.d, p.i+1) {
		return pair
	}
	colon := p.i
	p.i++
	val := p.blockNode(pair, col, ctxValue)
	n = &p.tree.Nodes[pair]
	n.Val = val
	n.End = colon + 1
	if val != cst.NoNode {
		n.End = p.tree.Nodes[val].End
	}
	return pair
}

func (p *parser) blockSeq(parent cst.NodeID, col int, pr *props) cst.NodeID {
	s := p.add(cst.Make(cst.SeqKind, p.i, parent), pr)
	for {
		dash := p.i
		p.i++
		item := p.blockNode(s, col, ctxEntry)
		n := &p.tree.Nodes[s]
		n.Children = append(n.Children, item)
		n.End = dash + 1
		if item != cst.NoNode {
			n.End = p.tree.Nodes[item].End
		}
		if !p.nextEntry(col, n.End, "sequence") || !p.atSeqEntry() {
			break
		}
	}
	return s
}

// nextEntry moves to the next entry of a block collection at column col
// whose previous entry ended at last.  It reports false at the end of the
// collection.
func (p *parser) nextEntry(col, last int, what string) bool {
	for {
		p.skipSpace()
		if p.eof() || p.atDocMarker() {
			return false
		}
		if p.line(p.i) == p.line(last) {
			p.errAt(p.i, errUnexpected)
			p.skipLine()
			continue
		}
		c := p.col(p.i)
		if c < col {
			return false
		}
		if c > col {
			p.errAt(p.i, "bad indentation of a "+what+" entry")
			p.skipLine()
			continue
		}
		return true
	}
}

func (p *parser) blockScalar(parent cst.NodeID, indent int, pr *props) cst.NodeID {
	start := p.i
	h, n, err := token.ParseBlockHead(p.d[start:])
	if err != nil {
		p.errAt(start, err.Error())
	}
	headEnd := start + n
	p.i = headEnd
	p.skipBlanks()
	switch {
	case p.at(p.i) == '#':
		p.comment()
	case !p.eof() && !token.IsBreak(p.d[p.i]):
		p.errAt(p.i, errBlockHeaderRest)
		p.skipLine()
	}
	next := p.i
	if p.at(next) == '\r' {
		next++
	}
	if p.at(next) == '\n' {
		next++
	}
	v, end := token.BlockScalar(p.d, next, indent, h)
	if end < 0 {
		end = headEnd
	}
	p.i = max(p.i, end)
	node := cst.Make(cst.ScalarKind, start, parent)
	node.End = end
	node.Value = v
	node.Raw = string(p.d[start:end])
	node.Style = cst.Literal
	if h.Folded {
		node.Style = cst.Folded
	}
	return p.add(node, pr)
}
