package materialize

import (
	"errors"
	"fmt"

	"go.lsp.dev/protocol"

	"github.com/signadot/yamlptr/anchor"
	"github.com/signadot/yamlptr/cst"
	"github.com/signadot/yamlptr/debug"
	"github.com/signadot/yamlptr/diag"
	"github.com/signadot/yamlptr/ir"
	"github.com/signadot/yamlptr/locate"
	"github.com/signadot/yamlptr/scalar"
	"github.com/signadot/yamlptr/token"
)

var ErrDuplicateKey = errors.New("duplicate YAML mapping key")

const (
	msgDuplicateKey = "duplicate key"
	msgKeyNotScalar = "mapping key must be a string scalar"
	msgTooDeep      = "maximum nesting depth exceeded"
)

type walker struct {
	t       *cst.Tree
	lines   token.Lines
	opts    Options
	diags   []diag.Diagnostic
	tooDeep bool
}

// Materialize returns the value of t together with the diagnostics of
// its structural errors and of the keys it could not represent, sorted by
// line.  The only error is a wrapped ErrDuplicateKey when opts.JSON is
// false.
func Materialize(t *cst.Tree, lines token.Lines, opts Options) (*ir.Node, []diag.Diagnostic, error) {
	if lines == nil {
		lines = token.BuildLines(t.Src)
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	w := &walker{t: t, lines: lines, opts: opts}
	v, err := w.walk(t.Root, anchor.Open{}, 0)
	if err != nil {
		return nil, nil, err
	}
	ds := append(diag.FromErrors(t.Errors, lines), w.diags...)
	diag.Sort(ds)
	return v, ds, nil
}

func (w *walker) walk(id cst.NodeID, o anchor.Open, depth int) (*ir.Node, error) {
	n := w.t.Node(id)
	if n == nil {
		return ir.Null(), nil
	}
	if depth > w.opts.MaxDepth {
		if !w.tooDeep {
			w.tooDeep = true
			w.report(id, diag.CodeException, msgTooDeep, protocol.DiagnosticSeverityError)
		}
		return ir.Null(), nil
	}
	switch n.Kind {
	case cst.ScalarKind:
		return scalar.Coerce(n, w.opts.BigInt), nil
	case cst.SeqKind:
		vals := make([]*ir.Node, len(n.Children))
		for i, item := range n.Children {
			v, err := w.walk(item, o, depth+1)
			if err != nil {
				return nil, err
			}
			vals[i] = v
		}
		return ir.FromSlice(vals), nil
	case cst.MapKind:
		return w.mapping(id, o, depth)
	case cst.AliasKind:
		target, to, ok := anchor.Follow(w.t, id, o)
		if !ok {
			if debug.Materialize() {
				debug.Logf("cut alias *%s at %d", n.Ref, n.Start)
			}
			return ir.Null(), nil
		}
		return w.walk(target, to, depth+1)
	}
	return ir.Null(), nil
}

func (w *walker) mapping(id cst.NodeID, o anchor.Open, depth int) (*ir.Node, error) {
	obj := newObject()
	checkDups := !w.opts.JSON || !w.opts.IgnoreDuplicateKeys
	seen := map[string]bool{}
	for _, pid := range w.t.Nodes[id].Children {
		pair := w.t.Nodes[pid]
		if w.opts.MergeKeys && locate.IsMergePair(w.t, pid) {
			v, err := w.walk(pair.Val, o, depth+1)
			if err != nil {
				return nil, err
			}
			obj.merge(mergeSources(v))
			continue
		}
		key, ok := w.key(pid)
		if !ok {
			continue
		}
		if checkDups && seen[key] {
			if !w.opts.JSON {
				start := w.t.Nodes[pid].Start
				doc := token.NewDocLines(w.t.Src, w.lines)
				return nil, fmt.Errorf("%w %q %s", ErrDuplicateKey, key, doc.Pos(start))
			}
			sev := protocol.DiagnosticSeverityError
			if w.opts.DuplicateKeysAsHints {
				sev = protocol.DiagnosticSeverityHint
			}
			w.report(pair.Key, diag.CodeException, msgDuplicateKey, sev)
		}
		seen[key] = true
		v, err := w.walk(pair.Val, o, depth+1)
		if err != nil {
			return nil, err
		}
		obj.set(key, v, true)
	}
	return obj.node(w.opts.PreserveKeyOrder), nil
}

// key gives the key of pair.  It reports false when the pair is dropped.
func (w *walker) key(pair cst.NodeID) (string, bool) {
	sev := protocol.DiagnosticSeverityWarning
	if !w.opts.JSON {
		sev = protocol.DiagnosticSeverityHint
	}
	kid := w.t.Nodes[pair].Key
	k := w.t.Node(kid)
	switch {
	case k == nil:
		w.report(pair, diag.CodeIncompatibleValue, msgKeyNotScalar+" rather than null", sev)
		return "null", true
	case k.Kind != cst.ScalarKind:
		w.report(kid, diag.CodeIncompatibleValue, msgKeyNotScalar, sev)
		if w.opts.JSON {
			return "", false
		}
		return w.t.Text(kid), true
	}
	v := scalar.Coerce(k, true)
	if v.Type != ir.StringType {
		w.report(kid, diag.CodeIncompatibleValue, msgKeyNotScalar+" rather than "+scalar.TypeName(v), sev)
	}
	return scalar.ValueString(v), true
}

func (w *walker) report(id cst.NodeID, code, msg string, sev protocol.DiagnosticSeverity) {
	n := w.t.Node(id)
	end := n.End
	if n.Kind == cst.PairKind {
		end = n.Start
	}
	w.diags = append(w.diags, diag.Diagnostic{
		Code:     code,
		Message:  msg,
		Severity: sev,
		Range:    w.lines.Range(n.Start, end),
		Path:     locate.BuildPath(w.t, id),
	})
}
