package libdiff

import (
	"fmt"

	"github.com/signadot/go-nbt/ir"
)

// Apply applies changes to root in order through the ir mutation
// functions and returns the resulting root, which differs from root
// only when a change replaces the root itself. On error the changes
// before the failing one remain applied; callers wanting all or
// nothing apply to a clone.
func Apply(root ir.Tag, changes []Change) (ir.Tag, error) {
	for i := range changes {
		c := &changes[i]
		var err error
		root, err = apply(root, c)
		if err != nil {
			return root, fmt.Errorf("change %d (%s %s): %w", i, c.Kind, c.path(), err)
		}
	}
	return root, nil
}

func apply(root ir.Tag, c *Change) (ir.Tag, error) {
	p, err := ir.ParsePath(c.Path)
	if err != nil {
		return root, err
	}
	if p == nil {
		if c.Kind != Replace {
			return root, fmt.Errorf("%w: cannot %s the root", ir.ErrBadPath, c.Kind)
		}
		return ir.Clone(c.To), nil
	}
	last := p.Last()
	switch c.Kind {
	case Remove:
		return root, ir.RemovePath(root, p)
	case Add:
		if last.Index != nil {
			return root, ir.InsertPath(root, p.Parent(), *last.Index, c.To)
		}
		return root, ir.SetPath(root, p, c.To)
	case Replace:
		return root, ir.SetPath(root, p, c.To)
	default:
		return root, fmt.Errorf("unknown change kind %d", c.Kind)
	}
}
