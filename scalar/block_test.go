package scalar

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/yamlptr/cst"
	"github.com/signadot/yamlptr/token"
)

func TestBlockHeader(t *testing.T) {
	tests := []struct {
		raw  string
		want BlockScalarType
	}{
		{">\n  test\n", BlockScalarType{Style: cst.Folded}},
		{">2\n  test\n", BlockScalarType{Style: cst.Folded, Indentation: 2}},
		{">-2\n  test", BlockScalarType{Style: cst.Folded, Chomping: token.Strip, Indentation: 2}},
		{">2-\n  test", BlockScalarType{Style: cst.Folded, Chomping: token.Strip, Indentation: 2}},
		{">+2\n  test", BlockScalarType{Style: cst.Folded, Chomping: token.Keep, Indentation: 2}},
		{"|\n  test", BlockScalarType{Style: cst.Literal}},
		{"|-\n  test", BlockScalarType{Style: cst.Literal, Chomping: token.Strip}},
		{"|2+\n  test", BlockScalarType{Style: cst.Literal, Chomping: token.Keep, Indentation: 2}},
		{"|+ # c\n  test", BlockScalarType{Style: cst.Literal, Chomping: token.Keep}},
		{"|++\n  test", BlockScalarType{Style: cst.Literal}},
		{"|20\n  test", BlockScalarType{Style: cst.Literal}},
		{"|2#a", BlockScalarType{Style: cst.Literal, Indentation: 2}},
		{"|-+2", BlockScalarType{Style: cst.Literal}},
		{"|\r\n  test", BlockScalarType{Style: cst.Literal}},
	}
	for _, tt := range tests {
		got, ok := BlockHeader(tt.raw)
		if !ok {
			t.Errorf("%q: not a block scalar", tt.raw)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%q (-want +got):\n%s", tt.raw, diff)
		}
	}
	for _, raw := range []string{"", "plain", "'|'"} {
		if _, ok := BlockHeader(raw); ok {
			t.Errorf("%q: unexpected block scalar", raw)
		}
	}
}

func TestBlockScalarTypeJSON(t *testing.T) {
	for _, tt := range []struct {
		b    BlockScalarType
		want string
	}{
		{BlockScalarType{Style: cst.Literal, Chomping: token.Strip, Indentation: 2}, `{"style":"literal","chomping":"strip","indentation":"2"}`},
		{BlockScalarType{Style: cst.Folded}, `{"style":"folded","chomping":"clip","indentation":null}`},
	} {
		d, err := json.Marshal(tt.b)
		if err != nil {
			t.Fatal(err)
		}
		if string(d) != tt.want {
			t.Errorf("got %s want %s", d, tt.want)
		}
	}
}
