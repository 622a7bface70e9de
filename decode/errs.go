package decode

import "errors"

var (
	ErrUnexpectedEOF   = errors.New("unexpected end of input")
	ErrUnknownTagType  = errors.New("unknown tag type")
	ErrMalformedLength = errors.New("malformed length")
	ErrMaxDepth        = errors.New("maximum nesting depth exceeded")
)
