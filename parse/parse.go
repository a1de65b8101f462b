package parse

import (
	"github.com/signadot/yamlptr/cst"
	"github.com/signadot/yamlptr/debug"
	"github.com/signadot/yamlptr/token"
)

type parser struct {
	d       []byte
	i       int
	lines   token.Lines
	tree    *cst.Tree
	anchors map[string]cst.NodeID
	opts    *parseOpts
	flow    int
	depth   int
	deep    bool
}

// Parse parses the first document of d.
func Parse(d []byte, opts ...ParseOption) *cst.Tree {
	pOpts := &parseOpts{comments: true, maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	if pOpts.lines == nil {
		pOpts.lines = token.BuildLines(d)
	}
	p := &parser{
		d:       d,
		lines:   pOpts.lines,
		tree:    cst.New(d),
		anchors: map[string]cst.NodeID{},
		opts:    pOpts,
	}
	p.document()
	if debug.Parse() {
		debug.Logf("parsed %d nodes, %d errors:\n%s", len(p.tree.Nodes), len(p.tree.Errors), p.tree)
	}
	return p.tree
}

func (p *parser) document() {
	p.skipSpace()
	p.directives()
	if p.atMarker("---") {
		p.i += 3
	}
	p.tree.Root = p.blockNode(cst.NoNode, -1, ctxTop)
	p.skipSpace()
	if p.atMarker("...") {
		p.i += 3
		p.skipSpace()
		p.directives()
	}
	if p.eof() {
		return
	}
	if p.atMarker("---") {
		p.errAt(p.i, errMultiDoc)
		return
	}
	p.errAt(p.i, errDocEnd)
}

func (p *parser) directives() {
	for !p.eof() && p.col(p.i) == 0 && p.d[p.i] == '%' {
		p.skipLine()
		p.skipSpace()
	}
}

// props are the anchor and tag properties preceding a node.
type props struct {
	anchor string
	tag    string
	end    int
}

func (p *parser) atProps() bool {
	c := p.at(p.i)
	return c == '&' || c == '!'
}

func (p *parser) props() *props {
	pr := &props{}
	for p.atProps() {
		start := p.i
		if p.d[p.i] == '&' {
			if pr.anchor != "" {
				p.errAt(start, errAnchorRepeat)
			}
			p.i++
			pr.anchor = p.name()
			if pr.anchor == "" {
				p.errAt(start, errAnchorName)
			}
		} else {
			if pr.tag != "" {
				p.errAt(start, errTagRepeat)
			}
			pr.tag = p.tagName()
			if !cst.KnownTag(pr.tag) {
				p.addErr(start, unknownTag(pr.tag), false, true)
			}
		}
		pr.end = p.i
		j := p.i
		for j < len(p.d) && token.IsBlank(p.d[j]) {
			j++
		}
		if j < len(p.d) && (p.d[j] == '&' || p.d[j] == '!') && j > p.i {
			p.i = j
			continue
		}
		break
	}
	return pr
}

// name scans an anchor or alias name.
func (p *parser) name() string {
	start := p.i
	for p.i < len(p.d) && !token.IsSpace(p.d[p.i]) && !token.IsFlowIndicator(p.d[p.i]) {
		p.i++
	}
	return string(p.d[start:p.i])
}

func (p *parser) tagName() string {
	start := p.i
	p.i++
	if p.at(p.i) == '<' {
		for p.i < len(p.d) && p.d[p.i] != '>' && !token.IsBreak(p.d[p.i]) {
			p.i++
		}
		if p.at(p.i) == '>' {
			p.i++
		}
		return string(p.d[start:p.i])
	}
	for p.i < len(p.d) && !token.IsSpace(p.d[p.i]) {
		if p.flow > 0 && token.IsFlowIndicator(p.d[p.i]) {
			break
		}
		p.i++
	}
	return string(p.d[start:p.i])
}

// add appends n to the tree with properties pr.
func (p *parser) add(n cst.Node, pr *props) cst.NodeID {
	id := p.tree.Add(n)
	p.apply(id, pr)
	return id
}

func (p *parser) apply(id cst.NodeID, pr *props) {
	if pr == nil || !p.tree.Valid(id) {
		return
	}
	n := &p.tree.Nodes[id]
	if pr.anchor != "" {
		n.Anchor = pr.anchor
		p.anchors[pr.anchor] = id
	}
	if pr.tag != "" {
		n.Tag = pr.tag
		if n.Tag == cst.TagInclude && n.Kind == cst.ScalarKind {
			n.Kind = cst.IncludeKind
		}
	}
}

// empty returns an empty scalar carrying pr, or NoNode if there are no
// properties.
func (p *parser) empty(parent cst.NodeID, pr *props) cst.NodeID {
	if pr == nil {
		return cst.NoNode
	}
	return p.add(cst.Make(cst.ScalarKind, pr.end, parent), pr)
}

func (p *parser) alias(parent cst.NodeID) cst.NodeID {
	start := p.i
	p.i++
	n := cst.Make(cst.AliasKind, start, parent)
	n.Ref = p.name()
	n.End = p.i
	switch target, ok := p.anchors[n.Ref]; {
	case n.Ref == "":
		p.errAt(start, errAliasName)
	case !ok:
		p.errAt(start, unidentifiedAlias(n.Ref))
	default:
		n.Target = target
	}
	return p.tree.Add(n)
}

// enter guards the nesting depth; once exceeded the rest of the input is
// abandoned.
func (p *parser) enter() bool {
	p.depth++
	if p.depth <= p.opts.maxDepth {
		return true
	}
	if !p.deep {
		p.errAt(p.i, errTooDeep)
		p.deep = true
	}
	p.i = len(p.d)
	return false
}

func (p *parser) leave() {
	p.depth--
}
