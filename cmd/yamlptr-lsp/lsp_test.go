package main

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.lsp.dev/protocol"

	"github.com/signadot/yamlptr"
)

const anchors = `base: &b
  x: 1
use: *b
list:
  - *b
`

func mustResult(t *testing.T, src string) *yamlptr.Result {
	t.Helper()
	res, err := yamlptr.ParseWithPointers([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func rng(sl, sc, el, ec uint32) protocol.Range {
	return protocol.Range{
		Start: protocol.Position{Line: sl, Character: sc},
		End:   protocol.Position{Line: el, Character: ec},
	}
}

func TestAnchorRange(t *testing.T) {
	res := mustResult(t, anchors)
	got, ok := anchorRange(res, 2, 5)
	if !ok {
		t.Fatal("no definition for alias")
	}
	if diff := cmp.Diff(rng(0, 5, 1, 6), got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if _, ok := anchorRange(res, 1, 2); ok {
		t.Errorf("definition for a plain key")
	}
}

func TestAliasRanges(t *testing.T) {
	res := mustResult(t, anchors)
	want := []protocol.Range{rng(0, 5, 1, 6), rng(2, 5, 2, 7), rng(4, 4, 4, 6)}
	if diff := cmp.Diff(want, aliasRanges(res, 2, 5, true)); diff != "" {
		t.Errorf("from alias (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want[1:], aliasRanges(res, 1, 5, false)); diff != "" {
		t.Errorf("from anchored node (-want +got):\n%s", diff)
	}
}

func TestHoverText(t *testing.T) {
	res := mustResult(t, anchors)
	text, r, ok := hoverText(res, 2, 5)
	if !ok {
		t.Fatal("no hover")
	}
	want := strings.Join([]string{
		"**Path:** `$.use`",
		"**Pointer:** `#/use`",
		"**Type:** object",
		"**Alias of:** `&b`",
	}, "\n\n")
	if diff := cmp.Diff(want, text); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(rng(2, 4, 2, 7), r); diff != "" {
		t.Errorf("range (-want +got):\n%s", diff)
	}
	text, _, ok = hoverText(mustResult(t, "a:\n  b: 1\n"), 1, 5)
	if !ok || !strings.HasPrefix(text, "**Path:** `$.a.b`") || !strings.Contains(text, "**Type:** number") {
		t.Errorf("got %q", text)
	}
	if _, _, ok := hoverText(res, 9, 0); ok {
		t.Errorf("hover past the end")
	}
}

func TestDocumentSymbols(t *testing.T) {
	type sym struct {
		Name     string
		Kind     protocol.SymbolKind
		Children []sym
	}
	var conv func([]protocol.DocumentSymbol) []sym
	conv = func(ds []protocol.DocumentSymbol) []sym {
		var res []sym
		for _, d := range ds {
			res = append(res, sym{d.Name, d.Kind, conv(d.Children)})
		}
		return res
	}
	want := []sym{
		{"base", protocol.SymbolKindObject, []sym{{"x", protocol.SymbolKindNumber, nil}}},
		{"use", protocol.SymbolKindVariable, nil},
		{"list", protocol.SymbolKindArray, []sym{{"[0]", protocol.SymbolKindVariable, nil}}},
	}
	if diff := cmp.Diff(want, conv(documentSymbols(mustResult(t, anchors)))); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestValidateDocument(t *testing.T) {
	src := "a: 1\na: 2\n"
	strict := newServer(yamlptr.JSON(false))
	ds := validateDocument(strict.docs.put("file:///x.yaml", src, 1))
	if len(ds) != 1 || !strings.Contains(ds[0].Message, "duplicate") {
		t.Errorf("strict: got %v", ds)
	}
	lenient := newServer(yamlptr.IgnoreDuplicateKeys(false))
	ds = validateDocument(lenient.docs.put("file:///x.yaml", src, 1))
	if len(ds) != 1 || ds[0].Range != rng(1, 0, 1, 1) {
		t.Errorf("lenient: got %v", ds)
	}
	if ds := validateDocument(newServer().docs.put("file:///x.yaml", src, 1)); len(ds) != 0 {
		t.Errorf("default: got %v", ds)
	}
}

func TestDocumentStoreVersions(t *testing.T) {
	s := newServer()
	s.docs.put("file:///x.yaml", "a: 2\n", 2)
	s.docs.put("file:///x.yaml", "a: 1\n", 1)
	if doc := s.docs.get("file:///x.yaml"); doc.version != 2 || doc.content != "a: 2\n" {
		t.Errorf("stale update applied: %d %q", doc.version, doc.content)
	}
	s.docs.remove("file:///x.yaml")
	if s.result("file:///x.yaml") != nil {
		t.Errorf("document not removed")
	}
}

func TestFormatEdits(t *testing.T) {
	if edits := formatEdits("a: 1\n", "a: 1\n"); len(edits) != 0 {
		t.Errorf("got %v", edits)
	}
	edits := formatEdits("a:   1", "a: 1\n")
	want := []protocol.TextEdit{{Range: rng(0, 0, 1, 0), NewText: "a: 1\n"}}
	if diff := cmp.Diff(want, edits); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
