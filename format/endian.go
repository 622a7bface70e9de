package format

import (
	"encoding/binary"
	"fmt"
)

// Endian selects the byte order of fixed-width numbers and length
// prefixes on the wire.
type Endian int

const (
	// BigEndian is the classical (Java edition) byte order.
	BigEndian Endian = iota
	// LittleEndian is used by the Bedrock edition dialect.
	LittleEndian
)

func ParseEndian(v string) (Endian, error) {
	e, ok := map[string]Endian{
		"big":     BigEndian,
		"be":      BigEndian,
		"java":    BigEndian,
		"little":  LittleEndian,
		"le":      LittleEndian,
		"bedrock": LittleEndian,
	}[v]
	if ok {
		return e, nil
	}
	return 0, fmt.Errorf("%w: unknown byte order %q", ErrBadFormat, v)
}

func (e Endian) String() string {
	d, err := e.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (e Endian) MarshalText() ([]byte, error) {
	switch e {
	case BigEndian:
		return []byte("big"), nil
	case LittleEndian:
		return []byte("little"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a byte order>", e)
	}
}

func (e *Endian) UnmarshalText(d []byte) error {
	pe, err := ParseEndian(string(d))
	if err != nil {
		return err
	}
	*e = pe
	return nil
}

// ByteOrder is implemented by binary.BigEndian and binary.LittleEndian.
type ByteOrder interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// ByteOrder returns the encoding/binary order for e.
func (e Endian) ByteOrder() ByteOrder {
	if e == LittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}
