package query

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/yamlptr"
	"github.com/signadot/yamlptr/ir"
	"github.com/signadot/yamlptr/jpath"
)

const src = `name: web
ports:
  - port: 80
  - port: 443
a.b: dotted
"1": one
`

func mustValue(t *testing.T) *ir.Node {
	t.Helper()
	v, err := yamlptr.Parse([]byte(src), yamlptr.PreserveKeyOrder(true))
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func jsonOf(t *testing.T, n *ir.Node) string {
	t.Helper()
	d, err := n.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	return string(d)
}

func TestGet(t *testing.T) {
	doc := mustValue(t)
	tests := []struct {
		q    string
		want string
		path jpath.Path
	}{
		{q: "name", want: `"web"`, path: jpath.Of("name")},
		{q: "ports.1.port", want: `443`, path: jpath.Of("ports", 1, "port")},
		{q: `a\.b`, want: `"dotted"`, path: jpath.Of("a.b")},
		{q: "1", want: `"one"`, path: jpath.Of("1")},
		{q: "ports.#.port", want: `[80,443]`},
		{q: "ports.#", want: `2`},
	}
	for _, tc := range tests {
		t.Run(tc.q, func(t *testing.T) {
			m, err := Get(doc, tc.q)
			if err != nil {
				t.Fatal(err)
			}
			if got := jsonOf(t, m.Value); got != tc.want {
				t.Errorf("got %s want %s", got, tc.want)
			}
			if diff := cmp.Diff(tc.path, m.Path); diff != "" {
				t.Errorf("path (-want +got):\n%s", diff)
			}
		})
	}
	if _, err := Get(doc, "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := Get(doc, ""); !errors.Is(err, ErrQuery) {
		t.Errorf("expected ErrQuery, got %v", err)
	}
}

func TestSetDelete(t *testing.T) {
	doc := mustValue(t)
	out, err := Set(doc, "ports.0.port", ir.FromInt(8080))
	if err != nil {
		t.Fatal(err)
	}
	out, err = Set(out, "labels.app", ir.FromString("web"))
	if err != nil {
		t.Fatal(err)
	}
	out, err = Delete(out, `a\.b`)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"name":"web","ports":[{"port":8080},{"port":443}],"1":"one","labels":{"app":"web"}}`
	if got := jsonOf(t, out); got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
	if got := jsonOf(t, doc.GetPath(jpath.Of("ports", 0, "port"))); got != "80" {
		t.Errorf("source document modified: %s", got)
	}
}

func TestSplitPath(t *testing.T) {
	got := SplitPath(`a.b\.c.0.\\d`)
	want := []string{"a", "b.c", "0", `\d`}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
