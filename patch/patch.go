// Package patch applies RFC 6902 JSON patches to materialized documents
// and locates each operation in the source of the patched document.
package patch

import (
	"encoding/json"
	"errors"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"go.lsp.dev/protocol"

	"github.com/signadot/yamlptr"
	"github.com/signadot/yamlptr/debug"
	"github.com/signadot/yamlptr/ir"
	"github.com/signadot/yamlptr/jpath"
)

var ErrPatch = errors.New("bad json patch")

type Op struct {
	Kind string
	Path jpath.Path
	// From is set for move and copy.
	From jpath.Path

	op jsonpatch.Operation
}

// Decode reads the operations of a patch document, an array of
// operation objects.
func Decode(n *ir.Node) ([]Op, error) {
	d, err := json.Marshal(n)
	if err != nil {
		return nil, err
	}
	ops, err := jsonpatch.DecodePatch(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	res := make([]Op, len(ops))
	for i, op := range ops {
		res[i] = Op{Kind: op.Kind(), op: op}
		p, err := op.Path()
		if err != nil {
			return nil, fmt.Errorf("%w: operation %d: %w", ErrPatch, i, err)
		}
		if res[i].Path, err = jpath.ParsePointer(p); err != nil {
			return nil, fmt.Errorf("%w: operation %d: %w", ErrPatch, i, err)
		}
		if res[i].Kind != "move" && res[i].Kind != "copy" {
			continue
		}
		from, err := op.From()
		if err != nil {
			return nil, fmt.Errorf("%w: operation %d: %w", ErrPatch, i, err)
		}
		if res[i].From, err = jpath.ParsePointer(from); err != nil {
			return nil, fmt.Errorf("%w: operation %d: %w", ErrPatch, i, err)
		}
	}
	return res, nil
}

// OpError reports the operation which failed to apply.
type OpError struct {
	Index int
	Op    *Op
	Err   error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("operation %d (%s %s): %v", e.Index, e.Op.Kind, e.Op.Path.Pointer(), e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// Apply applies ops to doc in order.  doc is left untouched.
func Apply(doc *ir.Node, ops []Op) (*ir.Node, error) {
	d, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	for i := range ops {
		if debug.Locate() {
			debug.Logf("json patch %s %s\n", ops[i].Kind, ops[i].Path)
		}
		d, err = jsonpatch.Patch{ops[i].op}.Apply(d)
		if err != nil {
			return nil, &OpError{Index: i, Op: &ops[i], Err: err}
		}
	}
	return ir.FromJSON(d)
}

// Location gives the source range in res addressed by the path of op.
// Paths which do not fully resolve, such as those of add operations,
// give the range of the closest existing ancestor and exact is false.
func (op *Op) Location(res *yamlptr.Result) (rng protocol.Range, exact, ok bool) {
	if rng, ok := res.LocationForPath(op.Path, false); ok {
		return rng, true, true
	}
	rng, ok = res.LocationForPath(op.Path, true)
	return rng, false, ok
}
