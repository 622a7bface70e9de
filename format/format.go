package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	SNBTFormat Format = iota
	JSONFormat
	YAMLFormat
	CBORFormat
	NBTFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"s":    SNBTFormat,
		"snbt": SNBTFormat,
		"j":    JSONFormat,
		"json": JSONFormat,
		"y":    YAMLFormat,
		"yaml": YAMLFormat,
		"c":    CBORFormat,
		"cbor": CBORFormat,
		"n":    NBTFormat,
		"nbt":  NBTFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case SNBTFormat:
		return []byte("snbt"), nil
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	case CBORFormat:
		return []byte("cbor"), nil
	case NBTFormat:
		return []byte("nbt"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

// IsText reports whether f produces human readable output.
func (f Format) IsText() bool {
	switch f {
	case SNBTFormat, JSONFormat, YAMLFormat:
		return true
	default:
		return false
	}
}

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case SNBTFormat:
		return ".snbt"
	case JSONFormat:
		return ".json"
	case YAMLFormat:
		return ".yaml"
	case CBORFormat:
		return ".cbor"
	case NBTFormat:
		return ".nbt"
	default:
		return ""
	}
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{SNBTFormat, JSONFormat, YAMLFormat, CBORFormat, NBTFormat}
}
