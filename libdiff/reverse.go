package libdiff

import "github.com/signadot/go-nbt/ir"

// Reverse returns the changes undoing changes: applied after them it
// restores the original tree, except that a removed compound key comes
// back at the end of its compound.
func Reverse(changes []Change) []Change {
	res := make([]Change, len(changes))
	for i := range changes {
		c := changes[len(changes)-1-i]
		switch c.Kind {
		case Add:
			c.Kind = Remove
		case Remove:
			c.Kind = Add
		}
		res[i] = Change{Kind: c.Kind, Path: c.Path, From: cloneOrNil(c.To), To: cloneOrNil(c.From)}
	}
	return res
}

func cloneOrNil(t ir.Tag) ir.Tag {
	if t == nil {
		return nil
	}
	return ir.Clone(t)
}
