package snbt

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/go-nbt/ir"
)

type EncState struct {
	pretty bool
	indent int
	depth  int

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes t to w as SNBT followed by a newline.
func Encode(t ir.Tag, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	buf := bytes.NewBuffer(nil)
	if err := es.encode(buf, t); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err := w.Write(buf.Bytes())
	return err
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func (es *EncState) newline(buf *bytes.Buffer) {
	buf.WriteByte('\n')
	buf.WriteString(strings.Repeat(" ", es.depth*es.indent))
}

func (es *EncState) encode(buf *bytes.Buffer, t ir.Tag) error {
	switch x := t.(type) {
	case ir.Byte:
		es.number(buf, ir.ByteType, strconv.FormatInt(int64(x), 10), "b")
	case ir.Short:
		es.number(buf, ir.ShortType, strconv.FormatInt(int64(x), 10), "s")
	case ir.Int:
		es.number(buf, ir.IntType, strconv.FormatInt(int64(x), 10), "")
	case ir.Long:
		es.number(buf, ir.LongType, strconv.FormatInt(int64(x), 10), "L")
	case ir.Float:
		es.number(buf, ir.FloatType, formatFloat(float64(x), 32), "f")
	case ir.Double:
		es.number(buf, ir.DoubleType, formatFloat(float64(x), 64), "d")
	case ir.String:
		buf.WriteString(es.color(ir.StringType, ValueColor, Quote(string(x))))
	case ir.ByteArray:
		es.array(buf, ir.ByteArrayType, "B", len(x), func(i int) string {
			return es.color(ir.ByteType, ValueColor, strconv.Itoa(int(x[i]))) + es.color(ir.ByteType, TagColor, "b")
		})
	case ir.IntArray:
		es.array(buf, ir.IntArrayType, "I", len(x), func(i int) string {
			return es.color(ir.IntType, ValueColor, strconv.Itoa(int(x[i])))
		})
	case ir.LongArray:
		es.array(buf, ir.LongArrayType, "L", len(x), func(i int) string {
			return es.color(ir.LongType, ValueColor, strconv.FormatInt(x[i], 10)) + es.color(ir.LongType, TagColor, "L")
		})
	case *ir.List:
		return es.list(buf, x)
	case *ir.Compound:
		return es.compound(buf, x)
	case ir.End:
		return fmt.Errorf("%w: End has no text form", ir.ErrTypeMismatch)
	default:
		return fmt.Errorf("%w: unexpected tag %T", ir.ErrTypeMismatch, t)
	}
	return nil
}

func (es *EncState) number(buf *bytes.Buffer, t ir.Type, v, suffix string) {
	buf.WriteString(es.color(t, ValueColor, v))
	if suffix != "" {
		buf.WriteString(es.color(t, TagColor, suffix))
	}
}

// formatFloat renders v so that it reads back as a decimal, not an
// integer, with the shortest digits that round trip at bitSize.
func formatFloat(v float64, bitSize int) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	}
	s := strconv.FormatFloat(v, 'g', -1, bitSize)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func (es *EncState) array(buf *bytes.Buffer, t ir.Type, prefix string, n int, elem func(int) string) {
	buf.WriteString(es.color(t, SepColor, "["))
	buf.WriteString(es.color(t, TagColor, prefix+";"))
	for i := range n {
		if i > 0 {
			buf.WriteString(es.color(t, SepColor, ","))
			if es.pretty {
				buf.WriteByte(' ')
			}
		}
		buf.WriteString(elem(i))
	}
	buf.WriteString(es.color(t, SepColor, "]"))
}

func (es *EncState) list(buf *bytes.Buffer, l *ir.List) error {
	open, sep, end := es.color(ir.ListType, SepColor, "["), es.color(ir.ListType, SepColor, ","), es.color(ir.ListType, SepColor, "]")
	buf.WriteString(open)
	if l.Len() == 0 {
		buf.WriteString(end)
		return nil
	}
	multi := es.pretty && l.ElemType().IsContainer()
	es.depth++
	for i, v := range l.All() {
		if i > 0 {
			buf.WriteString(sep)
			if es.pretty && !multi {
				buf.WriteByte(' ')
			}
		}
		if multi {
			es.newline(buf)
		}
		if err := es.encode(buf, v); err != nil {
			return fmt.Errorf("[%d]: %w", i, err)
		}
	}
	es.depth--
	if multi {
		es.newline(buf)
	}
	buf.WriteString(end)
	return nil
}

func (es *EncState) compound(buf *bytes.Buffer, c *ir.Compound) error {
	open, sep, end := es.color(ir.CompoundType, SepColor, "{"), es.color(ir.CompoundType, SepColor, ","), es.color(ir.CompoundType, SepColor, "}")
	buf.WriteString(open)
	if c.Len() == 0 {
		buf.WriteString(end)
		return nil
	}
	es.depth++
	i := 0
	for k, v := range c.All() {
		if i > 0 {
			buf.WriteString(sep)
		}
		i++
		if es.pretty {
			es.newline(buf)
		}
		buf.WriteString(es.color(ir.CompoundType, FieldColor, quoteKey(k)))
		buf.WriteString(es.color(ir.CompoundType, SepColor, ":"))
		if es.pretty {
			buf.WriteByte(' ')
		}
		if err := es.encode(buf, v); err != nil {
			return fmt.Errorf("%s: %w", quoteKey(k), err)
		}
	}
	es.depth--
	if es.pretty {
		es.newline(buf)
	}
	buf.WriteString(end)
	return nil
}
