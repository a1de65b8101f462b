package main

import (
	"context"
	"strconv"

	"go.lsp.dev/protocol"

	"github.com/signadot/yamlptr"
	"github.com/signadot/yamlptr/cst"
	"github.com/signadot/yamlptr/locate"
	"github.com/signadot/yamlptr/scalar"
)

func (s *Server) DocumentSymbol(ctx context.Context, params *protocol.DocumentSymbolParams) ([]interface{}, error) {
	res := s.result(params.TextDocument.URI)
	if res == nil {
		return nil, nil
	}
	syms := documentSymbols(res)
	out := make([]interface{}, len(syms))
	for i := range syms {
		out[i] = syms[i]
	}
	return out, nil
}

// documentSymbols outlines the mappings and sequences of a document.
func documentSymbols(res *yamlptr.Result) []protocol.DocumentSymbol {
	return symbolsOf(res, res.Tree.Root)
}

func symbolsOf(res *yamlptr.Result, id cst.NodeID) []protocol.DocumentSymbol {
	t := res.Tree
	n := t.Node(id)
	if n == nil {
		return nil
	}
	var syms []protocol.DocumentSymbol
	switch n.Kind {
	case cst.MapKind:
		for _, pid := range n.Children {
			pair := t.Node(pid)
			if pair == nil || locate.IsMergePair(t, pid) {
				continue
			}
			name := t.Text(pair.Key)
			if k := t.Node(pair.Key); k != nil && k.Kind == cst.ScalarKind {
				name = scalar.KeyString(k)
			}
			if name == "" {
				name = `""`
			}
			rng := locate.NodeRange(t, res.Lines, pid)
			sel := rng
			if t.Valid(pair.Key) {
				sel = locate.NodeRange(t, res.Lines, pair.Key)
			}
			syms = append(syms, protocol.DocumentSymbol{
				Name:           name,
				Kind:           symbolKind(t, pair.Val),
				Range:          rng,
				SelectionRange: sel,
				Children:       symbolsOf(res, pair.Val),
			})
		}
	case cst.SeqKind:
		for i, item := range n.Children {
			if !t.Valid(item) {
				continue
			}
			rng := locate.NodeRange(t, res.Lines, item)
			syms = append(syms, protocol.DocumentSymbol{
				Name:           "[" + strconv.Itoa(i) + "]",
				Kind:           symbolKind(t, item),
				Range:          rng,
				SelectionRange: rng,
				Children:       symbolsOf(res, item),
			})
		}
	}
	return syms
}

func symbolKind(t *cst.Tree, id cst.NodeID) protocol.SymbolKind {
	n := t.Node(id)
	if n == nil {
		return protocol.SymbolKindNull
	}
	switch n.Kind {
	case cst.MapKind:
		return protocol.SymbolKindObject
	case cst.SeqKind:
		return protocol.SymbolKindArray
	case cst.AliasKind:
		return protocol.SymbolKindVariable
	}
	switch scalar.Resolve(n) {
	case scalar.NullType:
		return protocol.SymbolKindNull
	case scalar.BoolType:
		return protocol.SymbolKindBoolean
	case scalar.IntType, scalar.FloatType:
		return protocol.SymbolKindNumber
	}
	return protocol.SymbolKindString
}
