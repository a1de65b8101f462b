package ir

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMarshalJSON(t *testing.T) {
	b, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	n := FromKeyVals([]KeyVal{
		{Key: "z", Val: FromSlice([]*Node{FromInt(1), FromFloat(2.5), FromBigInt(b)})},
		{Key: "a", Val: FromString("q\"s")},
		{Key: "n", Val: Null()},
		{Key: "t", Val: FromBool(true)},
		{Key: "inf", Val: FromFloat(math.Inf(1))},
		{Key: "<<", Val: FromString("a&b")},
	})
	d, err := n.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"z":[1,2.5,123456789012345678901234567890],"a":"q\"s","n":null,"t":true,"inf":null,"<<":"a&b"}`
	if string(d) != want {
		t.Errorf("got  %s\nwant %s", d, want)
	}
}

func TestFromJSON(t *testing.T) {
	in := `{"b": [1, 2.5, 123456789012345678901234567890, "s", null, false], "a": {"x": 1, "x": 2}}`
	n, err := FromJSON([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"b", "a"}, n.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	arr := Get(n, "b")
	if arr.Values[0].Int64 == nil || arr.Values[1].Float64 == nil || arr.Values[2].BigInt == nil {
		t.Errorf("number kinds not kept: %s", mustJSON(t, arr))
	}
	if got := *Get(Get(n, "a"), "x").Int64; got != 2 {
		t.Errorf("duplicate key: got %d", got)
	}
	d := mustJSON(t, n)
	want := `{"b":[1,2.5,123456789012345678901234567890,"s",null,false],"a":{"x":2}}`
	if d != want {
		t.Errorf("got  %s\nwant %s", d, want)
	}
	for _, bad := range []string{"", "{", `{"a":1} 2`, "[1,]"} {
		if _, err := FromJSON([]byte(bad)); !errors.Is(err, ErrJSON) {
			t.Errorf("%q: expected ErrJSON, got %v", bad, err)
		}
	}
}

func TestAny(t *testing.T) {
	n := FromKeyVals([]KeyVal{
		{Key: "b", Val: FromSlice([]*Node{FromInt(1), FromString("x")})},
		{Key: "a", Val: FromFloat(0.5)},
	})
	v := ToAny(n)
	want := map[string]any{"b": []any{int64(1), "x"}, "a": 0.5}
	if diff := cmp.Diff(want, v); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	back, err := FromAny(v)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, back.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if _, err := FromAny(struct{}{}); !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected ErrUnsupported, got %v", err)
	}
}

func mustJSON(t *testing.T, n *Node) string {
	t.Helper()
	d, err := n.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	return string(d)
}
