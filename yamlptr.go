// Package yamlptr parses YAML into a plain value and keeps what is needed
// to map between paths in that value and positions in the source.
//
//	res, err := yamlptr.ParseWithPointers(src, yamlptr.MergeKeys(true))
//	rng, ok := res.LocationForPath(jpath.Of("paths", "/pets"), false)
//	p, ok := res.PathForPosition(12, 4)
//
// Malformed input does not make ParseWithPointers fail: the value is
// built from whatever could be parsed and the problems are reported as
// diagnostics.  The only error is a duplicate key with JSON(false).
package yamlptr

import (
	"slices"

	"go.lsp.dev/protocol"

	"github.com/signadot/yamlptr/comments"
	"github.com/signadot/yamlptr/cst"
	"github.com/signadot/yamlptr/diag"
	"github.com/signadot/yamlptr/ir"
	"github.com/signadot/yamlptr/jpath"
	"github.com/signadot/yamlptr/locate"
	"github.com/signadot/yamlptr/materialize"
	"github.com/signadot/yamlptr/parse"
	"github.com/signadot/yamlptr/scalar"
	"github.com/signadot/yamlptr/token"
)

var ErrDuplicateKey = materialize.ErrDuplicateKey

type Result struct {
	Value       *ir.Node
	Diagnostics []diag.Diagnostic
	Tree        *cst.Tree
	Lines       token.Lines
	// Comments is set with AttachComments(true).
	Comments map[string][]comments.Attached
	Options  Options
}

func ParseWithPointers(d []byte, opts ...ParseOption) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	lines := token.BuildLines(d)
	tree := parse.Parse(d,
		parse.ParseLines(lines),
		parse.ParseComments(o.AttachComments),
		parse.MaxDepth(o.MaxDepth))
	v, ds, err := materialize.Materialize(tree, lines, o.materialize())
	if err != nil {
		return nil, err
	}
	res := &Result{
		Value:       v,
		Diagnostics: ds,
		Tree:        tree,
		Lines:       lines,
		Options:     o,
	}
	if o.AttachComments {
		res.Comments = comments.Attach(tree, lines, tree.Comments)
	}
	return res, nil
}

// Parse returns only the value of d.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	res, err := ParseWithPointers(d, append(slices.Clip(opts), AttachComments(false))...)
	if err != nil {
		return nil, err
	}
	return res.Value, nil
}

func (r *Result) findOptions(closest bool) locate.FindOptions {
	return locate.FindOptions{Closest: closest, MergeKeys: r.Options.MergeKeys}
}

func (r *Result) PathForPosition(line, char int) (jpath.Path, bool) {
	return locate.PathForPosition(r.Tree, r.Lines, line, char)
}

// LocationForPath gives the source range of the value at p.  With
// closest, a path which does not resolve gives the range of its deepest
// resolved ancestor.
func (r *Result) LocationForPath(p jpath.Path, closest bool) (protocol.Range, bool) {
	return locate.LocationForPath(r.Tree, r.Lines, p, r.findOptions(closest))
}

func (r *Result) FindNode(p jpath.Path, closest bool) (cst.NodeID, bool) {
	return locate.Find(r.Tree, p, r.findOptions(closest))
}

// BlockScalarType describes the header of the block scalar at p.
func (r *Result) BlockScalarType(p jpath.Path) (scalar.BlockScalarType, bool) {
	id, ok := r.FindNode(p, false)
	n := r.Tree.Node(id)
	if !ok || n == nil || n.Kind != cst.ScalarKind {
		return scalar.BlockScalarType{}, false
	}
	if n.Style != cst.Literal && n.Style != cst.Folded {
		return scalar.BlockScalarType{}, false
	}
	return scalar.BlockHeader(n.Raw)
}

// Ranges maps the JSON pointer of every node of the value to its range.
func (r *Result) Ranges() map[string]locate.CompactRange {
	return locate.ComputeRanges(r.Tree, r.Lines, r.Value, r.Options.MergeKeys)
}
