package main

import (
	"context"
	"fmt"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/signadot/yamlptr"
	"github.com/signadot/yamlptr/cst"
	"github.com/signadot/yamlptr/locate"
	"github.com/signadot/yamlptr/scalar"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	res := s.result(params.TextDocument.URI)
	if res == nil {
		return nil, nil
	}
	text, rng, ok := hoverText(res, int(params.Position.Line), int(params.Position.Character))
	if !ok {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: text,
		},
		Range: &rng,
	}, nil
}

func hoverText(res *yamlptr.Result, line, char int) (string, protocol.Range, bool) {
	p, ok := res.PathForPosition(line, char)
	if !ok {
		return "", protocol.Range{}, false
	}
	parts := []string{
		fmt.Sprintf("**Path:** `%s`", p),
		fmt.Sprintf("**Pointer:** `%s`", p.Pointer()),
	}
	if v := res.Value.GetPath(p); v != nil {
		typ := scalar.TypeName(v)
		if !v.Type.IsLeaf() {
			typ = strings.ToLower(v.Type.String())
		}
		parts = append(parts, fmt.Sprintf("**Type:** %s", typ))
	}
	if bt, ok := res.BlockScalarType(p); ok {
		parts = append(parts, fmt.Sprintf("**Block:** %s, chomping %s", bt.Style, bt.Chomping))
	}
	if id, ok := locate.NodeAt(res.Tree, res.Lines, line, char); ok {
		if n := res.Tree.Node(id); n.Kind == cst.AliasKind {
			parts = append(parts, fmt.Sprintf("**Alias of:** `&%s`", n.Ref))
		}
	}
	rng, ok := res.LocationForPath(p, false)
	if !ok {
		return "", protocol.Range{}, false
	}
	return strings.Join(parts, "\n\n"), rng, true
}
