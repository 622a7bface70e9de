package ir

import (
	"fmt"
	"iter"
	"slices"
)

// List is an ordered sequence of tags sharing one element type.
//
// The element type is committed by NewList or by the first insertion
// into an empty list. An empty list accepts a value of any type, which
// then becomes the committed type.
type List struct {
	elem   Type
	values []Tag
}

// NewList returns an empty list with the given committed element
// type. Use EndType for a list whose type is decided by its first
// element.
func NewList(elem Type) *List {
	return &List{elem: elem}
}

// ListOf returns a list holding elems.
func ListOf(elems ...Tag) (*List, error) {
	l := &List{}
	for _, e := range elems {
		if err := l.Append(e); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// MustListOf is like ListOf but panics on error.
func MustListOf(elems ...Tag) *List {
	l, err := ListOf(elems...)
	if err != nil {
		panic(err)
	}
	return l
}

func (*List) Type() Type { return ListType }

// ElemType returns the committed element type. For an empty list this
// is the type given to NewList or decoded from the wire, usually End.
func (l *List) ElemType() Type { return l.elem }

func (l *List) Len() int { return len(l.values) }

// At returns the i'th element.
func (l *List) At(i int) (Tag, error) {
	if i < 0 || i >= len(l.values) {
		return nil, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfBounds, i, len(l.values))
	}
	return l.values[i], nil
}

// All iterates over the elements in order.
func (l *List) All() iter.Seq2[int, Tag] {
	return func(yield func(int, Tag) bool) {
		for i, v := range l.values {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values returns the backing slice. Callers must not modify it.
func (l *List) Values() []Tag {
	return l.values
}

// check reports whether v may be stored in l, and the element type l
// would have afterwards.
func (l *List) check(v Tag) (Type, error) {
	if v == nil {
		return 0, fmt.Errorf("%w: nil tag", ErrTypeMismatch)
	}
	vt := v.Type()
	if vt == EndType {
		return 0, fmt.Errorf("%w: End is not a list element", ErrTypeMismatch)
	}
	if len(l.values) == 0 || vt == l.elem {
		return vt, nil
	}
	return 0, fmt.Errorf("%w: list of %s, got %s", ErrDuplicateElementType, l.elem, vt)
}

// Append adds v at the end of l. The list takes ownership of v; clone
// a tag that is already part of another tree before appending it.
func (l *List) Append(v Tag) error {
	return l.Insert(len(l.values), v)
}

// Insert places v at index i, shifting later elements up. i may equal
// Len.
func (l *List) Insert(i int, v Tag) error {
	if i < 0 || i > len(l.values) {
		return fmt.Errorf("%w: insert at %d (len %d)", ErrIndexOutOfBounds, i, len(l.values))
	}
	et, err := l.check(v)
	if err != nil {
		return err
	}
	l.elem = et
	l.values = slices.Insert(l.values, i, v)
	return nil
}

// Set replaces the element at i with v. v must have the committed
// element type unless it replaces the only element.
func (l *List) Set(i int, v Tag) error {
	if i < 0 || i >= len(l.values) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfBounds, i, len(l.values))
	}
	if v == nil {
		return fmt.Errorf("%w: nil tag", ErrTypeMismatch)
	}
	vt := v.Type()
	switch {
	case vt == EndType:
		return fmt.Errorf("%w: End is not a list element", ErrTypeMismatch)
	case vt != l.elem && len(l.values) > 1:
		return fmt.Errorf("%w: list of %s, got %s", ErrDuplicateElementType, l.elem, vt)
	}
	l.elem = vt
	l.values[i] = v
	return nil
}

// Remove deletes the element at i, shifting later elements down, and
// returns it. The committed element type is kept when the list becomes
// empty.
func (l *List) Remove(i int) (Tag, error) {
	if i < 0 || i >= len(l.values) {
		return nil, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfBounds, i, len(l.values))
	}
	v := l.values[i]
	l.values = slices.Delete(l.values, i, i+1)
	return v, nil
}

func (l *List) Clone() Tag {
	res := &List{elem: l.elem, values: make([]Tag, len(l.values))}
	for i, v := range l.values {
		res.values[i] = v.Clone()
	}
	return res
}
