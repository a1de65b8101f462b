package comments

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/yamlptr/parse"
	"github.com/signadot/yamlptr/token"
)

func attach(src string) map[string][]Attached {
	tree := parse.Parse([]byte(src))
	return Attach(tree, token.BuildLines(tree.Src), tree.Comments)
}

func TestAttach(t *testing.T) {
	tests := []struct {
		name string
		in   string
		out  map[string][]Attached
	}{
		{
			name: "mapping",
			in:   "# top\na: 1 # one\n# two\nb: |  # hdr\n  x\n",
			out: map[string][]Attached{
				"#": {
					{Value: " top", Placement: Leading},
					{Value: " two", Placement: Between, Between: []string{"a", "b"}},
				},
				"#/a": {{Value: " one", Placement: BeforeEOL}},
				"#/b": {{Value: " hdr", Placement: BeforeEOL}},
			},
		},
		{
			name: "sequence",
			in:   "- x # cx\n- y\n# end\n",
			out: map[string][]Attached{
				"#/0": {{Value: " cx", Placement: BeforeEOL}},
				"#":   {{Value: " end", Placement: Trailing}},
			},
		},
		{
			name: "nested",
			in:   "a:\n  # lead\n  b: 1\n  c: 2\n",
			out: map[string][]Attached{
				"#/a": {{Value: " lead", Placement: Leading}},
			},
		},
		{
			name: "escaped key",
			in:   "a/b: 1 # s\n",
			out: map[string][]Attached{
				"#/a~1b": {{Value: " s", Placement: BeforeEOL}},
			},
		},
		{
			name: "only comments",
			in:   "# a\n# b\n",
			out: map[string][]Attached{
				"#": {
					{Value: " a", Placement: Trailing},
					{Value: " b", Placement: Trailing},
				},
			},
		},
		{
			name: "none",
			in:   "a: 1\n",
			out:  map[string][]Attached{},
		},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.out, attach(tt.in)); diff != "" {
			t.Errorf("%s (-want +got):\n%s", tt.name, diff)
		}
	}
}
