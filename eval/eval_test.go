package eval

import (
	"errors"
	"testing"

	"github.com/expr-lang/expr"

	"github.com/signadot/yamlptr/ir"
)

func mustDoc(t *testing.T, s string) *ir.Node {
	t.Helper()
	n, err := ir.FromJSON([]byte(s))
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestEval(t *testing.T) {
	doc := mustDoc(t, `{"replicas": 3, "name": "web", "a": [1, "x"], "big": 123456789012345678901234567890}`)
	tests := []struct {
		code string
		env  Env
		want string
	}{
		{code: `replicas * 2`, want: `6`},
		{code: `name + "-svc"`, want: `"web-svc"`},
		{code: `doc.a[0]`, want: `1`},
		{code: `len(a)`, want: `2`},
		{code: `getpath("$.a[1]")`, want: `"x"`},
		{code: `getpath("$.nope")`, want: `null`},
		{code: `haspath("$.a[1]")`, want: `true`},
		{code: `haspath("$.a[2]")`, want: `false`},
		{code: `pointer("$.a[0]")`, want: `"#/a/0"`},
		{code: `big > 1e20`, want: `true`},
		{code: `replicas`, env: Env{"replicas": 5}, want: `5`},
		{code: `{"n": replicas}`, want: `{"n":3}`},
		{code: `map(a, {string(#)})`, want: `["1","x"]`},
	}
	for _, tc := range tests {
		t.Run(tc.code, func(t *testing.T) {
			v, err := Eval(doc, tc.code, tc.env)
			if err != nil {
				t.Fatal(err)
			}
			d, err := v.MarshalJSON()
			if err != nil {
				t.Fatal(err)
			}
			if string(d) != tc.want {
				t.Errorf("got %s want %s", d, tc.want)
			}
		})
	}
}

func TestEvalErrors(t *testing.T) {
	doc := mustDoc(t, `{"a": 1}`)
	if _, err := Eval(doc, `a +`, nil); !errors.Is(err, ErrCompile) {
		t.Errorf("expected compile error, got %v", err)
	}
	if _, err := Eval(doc, `getpath("a")`, nil); err == nil {
		t.Errorf("expected bad path error")
	}
}

func TestEvalNonObject(t *testing.T) {
	v, err := Eval(mustDoc(t, `[1, 2, 3]`), `len(doc) * 2`, nil)
	if err != nil {
		t.Fatal(err)
	}
	if v.Int64 == nil || *v.Int64 != 6 {
		t.Errorf("got %v", ToExpr(v))
	}
	v, err = Eval(nil, `doc == nil`, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !v.Bool {
		t.Errorf("nil doc should evaluate as null")
	}
}

func TestGetpathFunction(t *testing.T) {
	doc := mustDoc(t, `{"source": {"k": "value"}}`)
	prg, err := expr.Compile(`getpath("$.source").k`, exprOpts(doc)...)
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	res, err := expr.Run(prg, Env{})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if res != "value" {
		t.Errorf("got %v", res)
	}
}
