package ir

import (
	"errors"
	"fmt"
)

// Resolve returns the tag addressed by expr in root.
//
// The result is a view into root: it must not be modified except
// through the mutation functions (Set, Insert, Remove) applied to
// root.
func Resolve(root Tag, expr string) (Tag, error) {
	p, err := ParsePath(expr)
	if err != nil {
		return nil, err
	}
	return ResolvePath(root, p)
}

// ResolvePath is like Resolve for a parsed path.
//
// A missing key, or a key step applied to anything but a compound,
// fails with ErrKeyNotFound. An index step fails with
// ErrIndexOutOfBounds when the index is negative or too large and with
// ErrTypeMismatch when applied to anything but a list.
func ResolvePath(root Tag, p *Path) (Tag, error) {
	if root == nil {
		return nil, fmt.Errorf("%w: nil root", ErrPathNotFound)
	}
	cur := root
	for x := p; x != nil; x = x.Next {
		next, err := step(cur, x)
		if err != nil {
			return nil, stepErr(err, p, x)
		}
		cur = next
	}
	return cur, nil
}

// stepErr annotates err with the prefix of p ending at step x.
func stepErr(err error, p, x *Path) error {
	return fmt.Errorf("%w at %s", err, prefixThrough(p, x))
}

func prefixThrough(p, x *Path) *Path {
	res := *p
	if p == x {
		res.Next = nil
		return &res
	}
	res.Next = prefixThrough(p.Next, x)
	return &res
}

func step(cur Tag, x *Path) (Tag, error) {
	switch {
	case x.FieldAll || x.IndexAll:
		return nil, fmt.Errorf("%w: wildcard in single valued path", ErrBadPath)
	case x.Field != nil:
		c, ok := cur.(*Compound)
		if !ok {
			return nil, fmt.Errorf("%w: %q in %s", ErrKeyNotFound, *x.Field, cur.Type())
		}
		return c.Lookup(*x.Field)
	case x.Index != nil:
		l, ok := cur.(*List)
		if !ok {
			return nil, mismatch(ListType, cur.Type())
		}
		return l.At(*x.Index)
	default:
		return cur, nil
	}
}

// Slot is a mutable handle on one storage location: an entry of a
// compound or an element of a list.
//
// A Slot is only valid until the next structural change to the tree it
// was resolved from; it must not be kept across mutation calls.
type Slot struct {
	compound *Compound
	key      string

	list  *List
	index int
}

// ResolveSlot resolves the parent of the last step of expr and returns
// a handle on the addressed location. The location itself need not
// exist yet when the last step is a key.
func ResolveSlot(root Tag, expr string) (*Slot, error) {
	p, err := ParsePath(expr)
	if err != nil {
		return nil, err
	}
	return ResolvePathSlot(root, p)
}

// ResolvePathSlot is like ResolveSlot for a parsed path.
func ResolvePathSlot(root Tag, p *Path) (*Slot, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: the root has no slot", ErrBadPath)
	}
	last := p.Last()
	parent, err := ResolvePath(root, p.Parent())
	if err != nil {
		return nil, err
	}
	switch {
	case last.FieldAll || last.IndexAll:
		return nil, fmt.Errorf("%w: wildcard in single valued path", ErrBadPath)
	case last.Field != nil:
		c, ok := parent.(*Compound)
		if !ok {
			return nil, stepErr(fmt.Errorf("%w: %q in %s", ErrKeyNotFound, *last.Field, parent.Type()), p, last)
		}
		return &Slot{compound: c, key: *last.Field}, nil
	case last.Index != nil:
		l, ok := parent.(*List)
		if !ok {
			return nil, stepErr(mismatch(ListType, parent.Type()), p, last)
		}
		return &Slot{list: l, index: *last.Index}, nil
	}
	return nil, errInternal
}

// Get returns the value held in the slot.
func (s *Slot) Get() (Tag, error) {
	if s.compound != nil {
		return s.compound.Lookup(s.key)
	}
	return s.list.At(s.index)
}

// Set stores v in the slot. For a compound entry the key is created
// if absent; for a list element the index must exist and v must have
// the list's element type.
func (s *Slot) Set(v Tag) error {
	if s.compound != nil {
		return s.compound.Set(s.key, v)
	}
	return s.list.Set(s.index, v)
}

// Remove deletes the slot's value.
func (s *Slot) Remove() error {
	if s.compound != nil {
		if _, ok := s.compound.Remove(s.key); !ok {
			return fmt.Errorf("%w: %q", ErrKeyNotFound, s.key)
		}
		return nil
	}
	_, err := s.list.Remove(s.index)
	return err
}

// Match is one result of a wildcard query.
type Match struct {
	Path string
	Tag  Tag
}

// ListPath returns every tag matched by expr, which may contain
// wildcards. Steps that do not apply (a missing key, an index out of
// range, a key step on a list) contribute nothing rather than failing.
func ListPath(root Tag, expr string) ([]Tag, error) {
	ms, err := Matches(root, expr)
	if err != nil {
		return nil, err
	}
	res := make([]Tag, len(ms))
	for i := range ms {
		res[i] = ms[i].Tag
	}
	return res, nil
}

// Matches is like ListPath but also reports the concrete path of each
// result.
func Matches(root Tag, expr string) ([]Match, error) {
	p, err := ParsePath(expr)
	if err != nil {
		return nil, err
	}
	return listPath(nil, "", root, p), nil
}

func listPath(dst []Match, at string, t Tag, p *Path) []Match {
	if p == nil {
		return append(dst, Match{Path: at, Tag: t})
	}
	switch x := t.(type) {
	case *Compound:
		switch {
		case p.FieldAll:
			for k, v := range x.All() {
				dst = listPath(dst, PathField(at, k), v, p.Next)
			}
		case p.Field != nil:
			if v, ok := x.Get(*p.Field); ok {
				dst = listPath(dst, PathField(at, *p.Field), v, p.Next)
			}
		}
	case *List:
		switch {
		case p.IndexAll:
			for i, v := range x.All() {
				dst = listPath(dst, PathIndex(at, i), v, p.Next)
			}
		case p.Index != nil:
			if v, err := x.At(*p.Index); err == nil {
				dst = listPath(dst, PathIndex(at, *p.Index), v, p.Next)
			}
		}
	}
	return dst
}

// SkipChildren may be returned by a Walk callback to skip the children
// of the current tag.
var SkipChildren = errors.New("skip children")

// Walk calls fn for t and every tag below it in pre-order, passing the
// textual path of each relative to t.
func Walk(t Tag, fn func(path string, t Tag) error) error {
	return walk("", t, fn)
}

func walk(at string, t Tag, fn func(string, Tag) error) error {
	if err := fn(at, t); err != nil {
		if errors.Is(err, SkipChildren) {
			return nil
		}
		return err
	}
	switch x := t.(type) {
	case *Compound:
		for k, v := range x.All() {
			if err := walk(PathField(at, k), v, fn); err != nil {
				return err
			}
		}
	case *List:
		for i, v := range x.All() {
			if err := walk(PathIndex(at, i), v, fn); err != nil {
				return err
			}
		}
	}
	return nil
}
