package snbt

import (
	"errors"
	"fmt"
)

var (
	ErrSyntax       = errors.New("syntax error")
	ErrUnterminated = errors.New("unterminated")
	ErrBadEscape    = errors.New("bad escape")
	ErrNumber       = errors.New("number")
	ErrTrailing     = errors.New("trailing input")
)

// ParseErr locates a parse failure in the input.
type ParseErr struct {
	Err error
	Pos *Pos
}

func (e *ParseErr) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Pos)
}

func (e *ParseErr) Unwrap() error {
	return e.Err
}
