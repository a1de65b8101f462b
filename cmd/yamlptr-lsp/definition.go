package main

import (
	"context"

	"go.lsp.dev/protocol"

	"github.com/signadot/yamlptr"
	"github.com/signadot/yamlptr/cst"
	"github.com/signadot/yamlptr/locate"
)

// Definition goes from an alias to the node carrying its anchor.
func (s *Server) Definition(ctx context.Context, params *protocol.DefinitionParams) ([]protocol.Location, error) {
	res := s.result(params.TextDocument.URI)
	if res == nil {
		return nil, nil
	}
	rng, ok := anchorRange(res, int(params.Position.Line), int(params.Position.Character))
	if !ok {
		return nil, nil
	}
	return []protocol.Location{{URI: params.TextDocument.URI, Range: rng}}, nil
}

// References lists the aliases of the anchor at or aliased at the
// position.
func (s *Server) References(ctx context.Context, params *protocol.ReferenceParams) ([]protocol.Location, error) {
	res := s.result(params.TextDocument.URI)
	if res == nil {
		return nil, nil
	}
	rngs := aliasRanges(res, int(params.Position.Line), int(params.Position.Character), params.Context.IncludeDeclaration)
	locs := make([]protocol.Location, len(rngs))
	for i, rng := range rngs {
		locs[i] = protocol.Location{URI: params.TextDocument.URI, Range: rng}
	}
	return locs, nil
}

// anchored returns the anchored node at, or aliased at, the position.
func anchored(res *yamlptr.Result, line, char int) cst.NodeID {
	id, ok := locate.NodeAt(res.Tree, res.Lines, line, char)
	if !ok {
		return cst.NoNode
	}
	t := res.Tree
	if n := t.Node(id); n.Kind == cst.AliasKind {
		return n.Target
	}
	for ; id != cst.NoNode; id = t.Parent(id) {
		if t.Node(id).Anchor != "" {
			return id
		}
	}
	return cst.NoNode
}

func anchorRange(res *yamlptr.Result, line, char int) (protocol.Range, bool) {
	id, ok := locate.NodeAt(res.Tree, res.Lines, line, char)
	if !ok {
		return protocol.Range{}, false
	}
	n := res.Tree.Node(id)
	if n.Kind != cst.AliasKind || !res.Tree.Valid(n.Target) {
		return protocol.Range{}, false
	}
	return locate.NodeRange(res.Tree, res.Lines, n.Target), true
}

func aliasRanges(res *yamlptr.Result, line, char int, decl bool) []protocol.Range {
	target := anchored(res, line, char)
	if target == cst.NoNode {
		return nil
	}
	t := res.Tree
	var rngs []protocol.Range
	if decl {
		rngs = append(rngs, locate.NodeRange(t, res.Lines, target))
	}
	t.Walk(t.Root, func(id cst.NodeID) bool {
		if n := t.Node(id); n.Kind == cst.AliasKind && n.Target == target {
			rngs = append(rngs, res.Lines.Range(n.Start, n.End))
		}
		return true
	})
	return rngs
}
