package parse

import (
	"github.com/signadot/yamlptr/cst"
	"github.com/signadot/yamlptr/token"
)

func (p *parser) flowCollection(parent cst.NodeID, pr *props) cst.NodeID {
	start := p.i
	kind, closer := cst.SeqKind, byte(']')
	if p.d[start] == '{' {
		kind, closer = cst.MapKind, '}'
	}
	n := cst.Make(kind, start, parent)
	n.Flow = true
	id := p.add(n, pr)
	defer p.leave()
	if !p.enter() {
		p.tree.Nodes[id].End = p.i
		return id
	}
	p.i++
	p.flow++
	defer func() { p.flow-- }()
	needEntry := true
	for {
		p.skipSpace()
		if p.eof() || p.atDocMarker() {
			p.errAt(p.i, errFlowEOF)
			break
		}
		c := p.d[p.i]
		if c == closer {
			p.i++
			break
		}
		if c == ']' || c == '}' {
			p.errAt(p.i, errFlowClose)
			p.i++
			break
		}
		if c == ',' {
			if needEntry {
				p.errAt(p.i, errFlowComma)
			}
			p.i++
			needEntry = true
			continue
		}
		if !needEntry {
			p.errAt(p.i, errMissedComma)
		}
		before := p.i
		var child cst.NodeID
		if kind == cst.MapKind {
			child = p.flowPair(id)
		} else {
			child = p.flowSeqEntry(id)
		}
		if child != cst.NoNode {
			p.tree.Nodes[id].Children = append(p.tree.Nodes[id].Children, child)
		}
		needEntry = false
		if p.i == before {
			p.errAt(p.i, unexpectedChar(p.d[p.i]))
			p.i++
		}
	}
	p.tree.Nodes[id].End = p.i
	return id
}

// flowPair parses an entry of a flow mapping.
func (p *parser) flowPair(m cst.NodeID) cst.NodeID {
	start := p.i
	pair := p.tree.Add(cst.Make(cst.PairKind, start, m))
	if p.atExplicitKey() {
		p.i++
		p.skipSpace()
	}
	key, adjacent := p.flowNode(pair)
	if key == cst.NoNode {
		key = p.tree.Add(cst.Make(cst.ScalarKind, p.i, pair))
	}
	return p.flowValue(pair, key, adjacent)
}

// flowSeqEntry parses an entry of a flow sequence, which is a node or a
// single pair mapping.
func (p *parser) flowSeqEntry(s cst.NodeID) cst.NodeID {
	start := p.i
	if p.atExplicitKey() {
		m := p.flowSinglePair(s, start)
		p.tree.Nodes[m].Children = []cst.NodeID{p.flowPair(m)}
		p.endSinglePair(m)
		return m
	}
	node, adjacent := p.flowNode(s)
	if !p.atFlowColon(adjacent) {
		return node
	}
	m := p.flowSinglePair(s, start)
	if node == cst.NoNode {
		node = p.tree.Add(cst.Make(cst.ScalarKind, start, m))
	}
	pair := p.tree.Add(cst.Make(cst.PairKind, p.tree.Nodes[node].Start, m))
	p.tree.Nodes[node].Parent = pair
	p.tree.Nodes[m].Children = []cst.NodeID{p.flowValue(pair, node, adjacent)}
	p.endSinglePair(m)
	return m
}

func (p *parser) flowSinglePair(s cst.NodeID, start int) cst.NodeID {
	n := cst.Make(cst.MapKind, start, s)
	n.Flow = true
	return p.tree.Add(n)
}

func (p *parser) endSinglePair(m cst.NodeID) {
	n := &p.tree.Nodes[m]
	n.End = p.tree.Nodes[n.Children[0]].End
}

// flowValue completes pair with key and an optional ': value'.
func (p *parser) flowValue(pair, key cst.NodeID, adjacent bool) cst.NodeID {
	n := &p.tree.Nodes[pair]
	n.Key = key
	n.End = p.tree.Nodes[key].End
	if !p.atFlowColon(adjacent) {
		return pair
	}
	colon := p.i
	p.i++
	n.End = colon + 1
	p.skipSpace()
	if c := p.at(p.i); p.eof() || c == ',' || c == ']' || c == '}' {
		return pair
	}
	val, _ := p.flowNode(pair)
	n = &p.tree.Nodes[pair]
	n.Val = val
	if val != cst.NoNode {
		n.End = p.tree.Nodes[val].End
	}
	return pair
}

// atFlowColon skips to a ':' value indicator if one follows, possibly on
// a later line.
func (p *parser) atFlowColon(adjacent bool) bool {
	save := p.i
	if p.atMapIndicator(adjacent) {
		return true
	}
	j := p.i
	for j < len(p.d) && token.IsSpace(p.d[j]) {
		j++
	}
	if j == p.i || p.at(j) != ':' {
		p.i = save
		return false
	}
	p.i = j
	if p.atMapIndicator(false) {
		return true
	}
	p.i = save
	return false
}

// flowNode parses a node inside a flow collection.  adjacent reports
// whether a ':' may directly follow it.
func (p *parser) flowNode(parent cst.NodeID) (cst.NodeID, bool) {
	var pr *props
	if p.atProps() {
		pr = p.props()
		p.skipSpace()
	}
	switch c := p.at(p.i); {
	case p.eof():
	case c == '*':
		return p.alias(parent), false
	case c == '[' || c == '{':
		return p.flowCollection(parent, pr), true
	case c == '"' || c == '\'':
		return p.quoted(parent, pr), true
	case p.plainStart():
		return p.plainScalar(parent, -1, pr, false), false
	}
	return p.empty(parent, pr), false
}
