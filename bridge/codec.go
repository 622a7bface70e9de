package bridge

import (
	"bytes"
	"fmt"
	"reflect"

	"github.com/fxamacker/cbor/v2"
	"github.com/goccy/go-yaml"
	"github.com/signadot/go-nbt/format"
	"github.com/signadot/go-nbt/ir"
	"github.com/signadot/go-nbt/snbt"
)

var (
	cborEnc cbor.EncMode
	cborDec cbor.DecMode
)

func init() {
	var err error
	cborEnc, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("bridge: CBOR encoder initialization failed: " + err.Error())
	}
	cborDec, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("bridge: CBOR decoder initialization failed: " + err.Error())
	}
}

// Marshal renders t in a text or CBOR format. NBT itself is handled by
// the encode package.
func Marshal(t ir.Tag, f format.Format, opts ...snbt.EncodeOption) ([]byte, error) {
	switch f {
	case format.SNBTFormat:
		buf := bytes.NewBuffer(nil)
		if err := snbt.Encode(t, buf, opts...); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case format.YAMLFormat:
		return yaml.Marshal(ToAny(t))
	case format.JSONFormat:
		d, err := yaml.MarshalWithOptions(ToAny(t), yaml.JSON())
		if err != nil {
			return nil, err
		}
		if !bytes.HasSuffix(d, []byte("\n")) {
			d = append(d, '\n')
		}
		return d, nil
	case format.CBORFormat:
		return cborEnc.Marshal(ToPlain(t))
	default:
		return nil, fmt.Errorf("%w: bridge cannot write %s", format.ErrBadFormat, f)
	}
}

// Unmarshal parses data in format f into a tag, typed after hint as
// described for FromAny. SNBT carries its own types and ignores hint.
func Unmarshal(data []byte, f format.Format, hint ir.Tag) (ir.Tag, error) {
	var v any
	switch f {
	case format.SNBTFormat:
		return snbt.Parse(data)
	case format.YAMLFormat, format.JSONFormat:
		if err := yaml.UnmarshalWithOptions(data, &v, yaml.UseOrderedMap()); err != nil {
			return nil, fmt.Errorf("%s: %w", f, err)
		}
	case format.CBORFormat:
		if err := cborDec.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("%s: %w", f, err)
		}
	default:
		return nil, fmt.Errorf("%w: bridge cannot read %s", format.ErrBadFormat, f)
	}
	return FromAny(v, hint)
}
