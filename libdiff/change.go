package libdiff

import (
	"fmt"
	"strings"

	"github.com/signadot/go-nbt/ir"
	"github.com/signadot/go-nbt/snbt"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Kind int

const (
	Add Kind = iota
	Remove
	Replace
)

func (k Kind) String() string {
	d, err := k.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case Add:
		return []byte("add"), nil
	case Remove:
		return []byte("remove"), nil
	case Replace:
		return []byte("replace"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a change kind>", k)
	}
}

func (k *Kind) UnmarshalText(d []byte) error {
	switch string(d) {
	case "add":
		*k = Add
	case "remove":
		*k = Remove
	case "replace":
		*k = Replace
	default:
		return fmt.Errorf("unknown change kind %q", d)
	}
	return nil
}

// Change is one edit. Path is the textual path of the edited location,
// empty for the root. From is nil for Add and To is nil for Remove.
type Change struct {
	Kind Kind
	Path string
	From ir.Tag
	To   ir.Tag
}

func (c *Change) path() string {
	if c.Path == "" {
		return "$"
	}
	return c.Path
}

// String renders c on one line. A replaced string is shown as an
// inline character diff.
func (c *Change) String() string {
	switch c.Kind {
	case Add:
		return "+ " + c.path() + ": " + snbt.MustString(c.To)
	case Remove:
		return "- " + c.path() + ": " + snbt.MustString(c.From)
	}
	fs, fok := c.From.(ir.String)
	ts, tok := c.To.(ir.String)
	if fok && tok {
		return "~ " + c.path() + ": " + DiffString(string(fs), string(ts))
	}
	return "~ " + c.path() + ": " + snbt.MustString(c.From) + " -> " + snbt.MustString(c.To)
}

// DiffString renders the character level difference between two
// strings, marking deleted runs [-like this-] and inserted runs
// {+like this+}.
func DiffString(from, to string) string {
	dmp := diffpatch.New()
	doMultiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := dmp.DiffMain(from, to, doMultiLine)
	diffs = dmp.DiffCleanupSemantic(diffs)
	var sb strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffDelete:
			sb.WriteString("[-" + d.Text + "-]")
		case diffpatch.DiffInsert:
			sb.WriteString("{+" + d.Text + "+}")
		case diffpatch.DiffEqual:
			sb.WriteString(d.Text)
		}
	}
	return sb.String()
}
