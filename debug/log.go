package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/signadot/go-nbt/ir"
	"github.com/signadot/go-nbt/snbt"
)

var out io.Writer = os.Stderr

// SNBT renders a tag as SNBT when formatted with %v or %s.
type SNBT struct{ ir.Tag }

func (s SNBT) String() string {
	if s.Tag == nil {
		return "<nil>"
	}
	return snbt.MustString(s.Tag)
}

// Logf writes a debug message to stderr. Tag arguments are rendered as
// SNBT and plain maps and slices as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case ir.Tag:
			args[i] = SNBT{x}.String()
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(out, msg, args...)
}
