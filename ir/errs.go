package ir

import (
	"errors"
	"fmt"
)

var (
	errInternal = errors.New("internal error")

	ErrTypeMismatch     = errors.New("type mismatch")
	ErrPathNotFound     = errors.New("path not found")
	ErrIndexOutOfBounds = errors.New("index out of bounds")
	ErrEncodingLimit    = errors.New("encoding limit exceeded")
	ErrBadPath          = errors.New("bad path")
	ErrUnknownType      = errors.New("unknown tag type")

	// ErrKeyNotFound is a PathNotFound caused by a missing compound key.
	ErrKeyNotFound = fmt.Errorf("%w: key not found", ErrPathNotFound)

	// ErrDuplicateElementType is a TypeMismatch caused by a value whose
	// variant differs from a list's committed element type.
	ErrDuplicateElementType = fmt.Errorf("%w: list element type conflict", ErrTypeMismatch)
)

func mismatch(want, got Type) error {
	return fmt.Errorf("%w: expected %s, got %s", ErrTypeMismatch, want, got)
}
