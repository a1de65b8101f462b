package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch a.(type) {
		case map[string]any, []any, json.Marshaler:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case bool, string, float64, int, fmt.Stringer:
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}

// Dump returns a structured rendering of v.
func Dump(v ...any) string {
	return dumper.Sdump(v...)
}

// Dumpf writes a structured rendering of v to stderr after msg.
func Dumpf(msg string, v ...any) {
	fmt.Fprintf(os.Stderr, "%s\n%s", msg, dumper.Sdump(v...))
}
