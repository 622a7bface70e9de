package ir

import (
	"errors"
	"fmt"
)

// The mutation functions edit a tree in place. Each call either
// succeeds completely or returns an error leaving the tree exactly as
// it was. Values passed in are cloned before they are stored, so a
// tree never shares storage with the caller's value and cannot become
// cyclic.
//
// A tree must not be mutated from more than one goroutine at a time.

// Set stores a clone of v at expr.
//
// Missing compound entries along the path are created as empty
// compounds; lists are never created, so an index step below a missing
// key fails. An existing compound entry is replaced in place, keeping
// its position. A list element may only be replaced by a value of the
// list's element type (or any type when it is the only element).
func Set(root Tag, expr string, v Tag) error {
	p, err := ParsePath(expr)
	if err != nil {
		return err
	}
	return SetPath(root, p, v)
}

// SetPath is like Set for a parsed path.
func SetPath(root Tag, p *Path, v Tag) error {
	if p == nil {
		return fmt.Errorf("%w: cannot set the root", ErrBadPath)
	}
	if p.HasWildcard() {
		return fmt.Errorf("%w: wildcard in %s", ErrBadPath, p)
	}
	if v == nil || v.Type() == EndType {
		return fmt.Errorf("%w: cannot store %s", ErrTypeMismatch, typeOf(v))
	}
	if root == nil {
		return fmt.Errorf("%w: nil root", ErrPathNotFound)
	}
	cur := root
	x := p
	for ; x.Next != nil; x = x.Next {
		if x.Index != nil {
			next, err := step(cur, x)
			if err != nil {
				return stepErr(err, p, x)
			}
			cur = next
			continue
		}
		c, ok := cur.(*Compound)
		if !ok {
			return stepErr(mismatch(CompoundType, typeOf(cur)), p, x)
		}
		next, ok := c.Get(*x.Field)
		if !ok {
			return createAt(c, p, x, v)
		}
		cur = next
	}
	if x.Index != nil {
		l, ok := cur.(*List)
		if !ok {
			return stepErr(mismatch(ListType, typeOf(cur)), p, x)
		}
		if err := l.Set(*x.Index, v.Clone()); err != nil {
			return stepErr(err, p, x)
		}
		return nil
	}
	c, ok := cur.(*Compound)
	if !ok {
		return stepErr(mismatch(CompoundType, typeOf(cur)), p, x)
	}
	return c.Set(*x.Field, v.Clone())
}

// createAt builds the compounds for the steps from x on, detached from
// the tree, and attaches them to c under x's key as the last action.
func createAt(c *Compound, p, x *Path, v Tag) error {
	for y := x.Next; y != nil; y = y.Next {
		if y.Field == nil {
			return stepErr(fmt.Errorf("%w: %q (lists are not created)", ErrKeyNotFound, *x.Field), p, x)
		}
	}
	var build func(y *Path) Tag
	build = func(y *Path) Tag {
		if y == nil {
			return v.Clone()
		}
		return NewCompound().Put(*y.Field, build(y.Next))
	}
	return c.Set(*x.Field, build(x.Next))
}

// Remove deletes the entry or element addressed by expr. Removing a
// list element shifts the following elements down.
//
// Any missing step fails with ErrPathNotFound; an out of range final
// index fails with ErrIndexOutOfBounds.
func Remove(root Tag, expr string) error {
	p, err := ParsePath(expr)
	if err != nil {
		return err
	}
	return RemovePath(root, p)
}

// RemovePath is like Remove for a parsed path.
func RemovePath(root Tag, p *Path) error {
	s, err := ResolvePathSlot(root, p)
	if err != nil {
		if errors.Is(err, ErrIndexOutOfBounds) {
			return fmt.Errorf("%w: %w", ErrPathNotFound, err)
		}
		return err
	}
	if err := s.Remove(); err != nil {
		return fmt.Errorf("%w at %s", err, p)
	}
	return nil
}

// Insert places a clone of v into the list addressed by expr at
// position index, shifting later elements up. index may equal the
// list's length. v must have the list's element type unless the list
// is empty, in which case v commits the element type.
func Insert(root Tag, expr string, index int, v Tag) error {
	p, err := ParsePath(expr)
	if err != nil {
		return err
	}
	return InsertPath(root, p, index, v)
}

// InsertPath is like Insert for a parsed path.
func InsertPath(root Tag, p *Path, index int, v Tag) error {
	t, err := ResolvePath(root, p)
	if err != nil {
		return err
	}
	l, err := AsList(t)
	if err != nil {
		return fmt.Errorf("%w at %s", err, p)
	}
	if v == nil {
		return fmt.Errorf("%w: nil tag", ErrTypeMismatch)
	}
	if err := l.Insert(index, v.Clone()); err != nil {
		return fmt.Errorf("%w at %s", err, p)
	}
	return nil
}

// Append is Insert at the end of the list.
func Append(root Tag, expr string, v Tag) error {
	p, err := ParsePath(expr)
	if err != nil {
		return err
	}
	t, err := ResolvePath(root, p)
	if err != nil {
		return err
	}
	l, err := AsList(t)
	if err != nil {
		return fmt.Errorf("%w at %s", err, p)
	}
	return InsertPath(root, p, l.Len(), v)
}
