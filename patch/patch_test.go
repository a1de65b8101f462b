package patch

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"go.lsp.dev/protocol"

	"github.com/signadot/yamlptr"
	"github.com/signadot/yamlptr/ir"
	"github.com/signadot/yamlptr/jpath"
)

const target = `name: web
ports:
  - 80
  - 443
labels:
  app: web
`

func mustParse(t *testing.T, s string, opts ...yamlptr.ParseOption) *yamlptr.Result {
	t.Helper()
	res, err := yamlptr.ParseWithPointers([]byte(s), opts...)
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func mustOps(t *testing.T, s string) []Op {
	t.Helper()
	ops, err := Decode(mustParse(t, s).Value)
	if err != nil {
		t.Fatal(err)
	}
	return ops
}

func TestDecode(t *testing.T) {
	ops := mustOps(t, `
- op: replace
  path: /ports/1
  value: 8443
- op: move
  from: /labels/app
  path: /labels/name
- op: remove
  path: /a~1b
`)
	want := []Op{
		{Kind: "replace", Path: jpath.Of("ports", "1")},
		{Kind: "move", Path: jpath.Of("labels", "name"), From: jpath.Of("labels", "app")},
		{Kind: "remove", Path: jpath.Of("a/b")},
	}
	if diff := cmp.Diff(want, ops, cmpopts.IgnoreUnexported(Op{})); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if _, err := Decode(ir.FromString("x")); !errors.Is(err, ErrPatch) {
		t.Errorf("expected ErrPatch, got %v", err)
	}
}

func TestApply(t *testing.T) {
	res := mustParse(t, target)
	ops := mustOps(t, `[{op: replace, path: /ports/1, value: 8443}, {op: add, path: /labels/tier, value: front}]`)
	out, err := Apply(res.Value, ops)
	if err != nil {
		t.Fatal(err)
	}
	d, err := out.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"labels":{"app":"web","tier":"front"},"name":"web","ports":[80,8443]}`
	if string(d) != want {
		t.Errorf("got %s want %s", d, want)
	}
	if got := res.Value.GetPath(jpath.Of("ports", 1)); got.Int64 == nil || *got.Int64 != 443 {
		t.Errorf("source document modified")
	}
}

func TestApplyError(t *testing.T) {
	res := mustParse(t, target)
	ops := mustOps(t, `[{op: add, path: /labels/x, value: 1}, {op: remove, path: /ports/9}]`)
	_, err := Apply(res.Value, ops)
	var opErr *OpError
	if !errors.As(err, &opErr) {
		t.Fatalf("expected *OpError, got %v", err)
	}
	if opErr.Index != 1 {
		t.Errorf("got index %d", opErr.Index)
	}
	rng, exact, ok := opErr.Op.Location(res)
	if !ok || exact {
		t.Fatalf("expected a closest location, got %v %v", exact, ok)
	}
	want := protocol.Range{
		Start: protocol.Position{Line: 1, Character: 6},
		End:   protocol.Position{Line: 3, Character: 7},
	}
	if diff := cmp.Diff(want, rng); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestLocation(t *testing.T) {
	res := mustParse(t, target)
	ops := mustOps(t, `[{op: replace, path: /ports/1, value: 1}]`)
	rng, exact, ok := ops[0].Location(res)
	if !ok || !exact {
		t.Fatalf("expected an exact location")
	}
	want := protocol.Range{
		Start: protocol.Position{Line: 3, Character: 4},
		End:   protocol.Position{Line: 3, Character: 7},
	}
	if diff := cmp.Diff(want, rng); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
