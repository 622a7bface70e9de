package snbt

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/signadot/go-nbt/ir"
)

type parser struct {
	d   []byte
	i   int
	doc *PosDoc
}

// Parse parses one SNBT value. Surrounding whitespace is allowed;
// anything else after the value is an error.
func Parse(d []byte) (ir.Tag, error) {
	p := &parser{d: d}
	p.skipSpace()
	t, err := p.value()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.i != len(p.d) {
		return nil, p.errf(ErrTrailing, "")
	}
	return t, nil
}

// ParseString is Parse for a string.
func ParseString(s string) (ir.Tag, error) {
	return Parse([]byte(s))
}

// MustParse is like ParseString but panics on error.
func MustParse(s string) ir.Tag {
	t, err := ParseString(s)
	if err != nil {
		panic(err)
	}
	return t
}

func (p *parser) errf(err error, f string, args ...any) error {
	if p.doc == nil {
		p.doc = newPosDoc(p.d)
	}
	if f != "" {
		err = fmt.Errorf("%w: "+f, append([]any{err}, args...)...)
	}
	return &ParseErr{Err: err, Pos: p.doc.Pos(p.i)}
}

func (p *parser) skipSpace() {
	for p.i < len(p.d) {
		switch p.d[p.i] {
		case ' ', '\t', '\n', '\r':
			p.i++
		default:
			return
		}
	}
}

func (p *parser) peek() byte {
	if p.i < len(p.d) {
		return p.d[p.i]
	}
	return 0
}

// expect consumes c, after optional whitespace.
func (p *parser) expect(c byte) error {
	p.skipSpace()
	if p.peek() != c {
		if p.i == len(p.d) {
			return p.errf(ErrUnterminated, "expected %q", c)
		}
		return p.errf(ErrSyntax, "expected %q", c)
	}
	p.i++
	return nil
}

func (p *parser) value() (ir.Tag, error) {
	switch c := p.peek(); c {
	case '{':
		return p.compound()
	case '[':
		return p.list()
	case '"', '\'':
		s, err := p.quoted()
		if err != nil {
			return nil, err
		}
		return ir.String(s), nil
	default:
		if p.i == len(p.d) {
			return nil, p.errf(ErrUnterminated, "expected a value")
		}
		start := p.i
		w := p.bare()
		if w == "" {
			return nil, p.errf(ErrSyntax, "unexpected %q", c)
		}
		t, err := scalar(w)
		if err != nil {
			p.i = start
			return nil, p.errf(err, "%q", w)
		}
		return t, nil
	}
}

func (p *parser) bare() string {
	start := p.i
	for p.i < len(p.d) && isBare(p.d[p.i]) {
		p.i++
	}
	return string(p.d[start:p.i])
}

func (p *parser) quoted() (string, error) {
	q := p.d[p.i]
	p.i++
	var sb strings.Builder
	for p.i < len(p.d) {
		c := p.d[p.i]
		switch {
		case c == q:
			p.i++
			return sb.String(), nil
		case c == '\\':
			if p.i+1 >= len(p.d) {
				return "", p.errf(ErrUnterminated, "escape at end of input")
			}
			p.i++
			if err := p.escape(&sb); err != nil {
				return "", err
			}
		default:
			r, n := utf8.DecodeRune(p.d[p.i:])
			if r == utf8.RuneError && n <= 1 {
				return "", p.errf(ErrSyntax, "invalid utf8")
			}
			sb.Write(p.d[p.i : p.i+n])
			p.i += n
		}
	}
	return "", p.errf(ErrUnterminated, "string")
}

func (p *parser) escape(sb *strings.Builder) error {
	c := p.d[p.i]
	p.i++
	switch c {
	case '\\', '"', '\'':
		sb.WriteByte(c)
	case 'n':
		sb.WriteByte('\n')
	case 'r':
		sb.WriteByte('\r')
	case 't':
		sb.WriteByte('\t')
	case 'b':
		sb.WriteByte('\b')
	case 'f':
		sb.WriteByte('\f')
	case 'u':
		if p.i+4 > len(p.d) {
			return p.errf(ErrBadEscape, `short \u escape`)
		}
		v, err := strconv.ParseUint(string(p.d[p.i:p.i+4]), 16, 16)
		if err != nil {
			return p.errf(ErrBadEscape, `\u%s`, p.d[p.i:p.i+4])
		}
		sb.WriteRune(rune(v))
		p.i += 4
	case 'x':
		if p.i+2 > len(p.d) {
			return p.errf(ErrBadEscape, `short \x escape`)
		}
		v, err := strconv.ParseUint(string(p.d[p.i:p.i+2]), 16, 8)
		if err != nil {
			return p.errf(ErrBadEscape, `\x%s`, p.d[p.i:p.i+2])
		}
		sb.WriteByte(byte(v))
		p.i += 2
	default:
		p.i--
		return p.errf(ErrBadEscape, `\%c`, c)
	}
	return nil
}

func (p *parser) key() (string, error) {
	p.skipSpace()
	switch p.peek() {
	case '"', '\'':
		return p.quoted()
	}
	k := p.bare()
	if k == "" {
		if p.i == len(p.d) {
			return "", p.errf(ErrUnterminated, "expected a key")
		}
		return "", p.errf(ErrSyntax, "expected a key")
	}
	return k, nil
}

func (p *parser) compound() (ir.Tag, error) {
	p.i++
	c := ir.NewCompound()
	p.skipSpace()
	if p.peek() == '}' {
		p.i++
		return c, nil
	}
	for {
		k, err := p.key()
		if err != nil {
			return nil, err
		}
		if err := p.expect(':'); err != nil {
			return nil, err
		}
		p.skipSpace()
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		if err := c.Set(k, v); err != nil {
			return nil, p.errf(err, "")
		}
		done, err := p.next('}')
		if err != nil {
			return nil, err
		}
		if done {
			return c, nil
		}
	}
}

// next consumes either a comma, reporting false, or end, reporting
// true.
func (p *parser) next(end byte) (bool, error) {
	p.skipSpace()
	switch p.peek() {
	case ',':
		p.i++
		return false, nil
	case end:
		p.i++
		return true, nil
	}
	if p.i == len(p.d) {
		return false, p.errf(ErrUnterminated, "expected ',' or %q", end)
	}
	return false, p.errf(ErrSyntax, "expected ',' or %q", end)
}

func (p *parser) list() (ir.Tag, error) {
	p.i++
	if p.i+1 < len(p.d) && p.d[p.i+1] == ';' {
		switch p.d[p.i] {
		case 'B', 'I', 'L':
			return p.array(p.d[p.i])
		}
	}
	l := ir.NewList(ir.EndType)
	p.skipSpace()
	if p.peek() == ']' {
		p.i++
		return l, nil
	}
	for {
		p.skipSpace()
		start := p.i
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		if err := l.Append(v); err != nil {
			p.i = start
			return nil, p.errf(err, "")
		}
		done, err := p.next(']')
		if err != nil {
			return nil, err
		}
		if done {
			return l, nil
		}
	}
}

func (p *parser) array(kind byte) (ir.Tag, error) {
	p.i += 2
	var (
		ba ir.ByteArray
		ia ir.IntArray
		la ir.LongArray
	)
	p.skipSpace()
	if p.peek() != ']' {
		for {
			p.skipSpace()
			start := p.i
			w := p.bare()
			v, err := arrayElem(kind, w)
			if err != nil {
				p.i = start
				if w == "" && p.i == len(p.d) {
					return nil, p.errf(ErrUnterminated, "array")
				}
				return nil, p.errf(err, "%q in [%c;]", w, kind)
			}
			switch kind {
			case 'B':
				ba = append(ba, int8(v))
			case 'I':
				ia = append(ia, int32(v))
			default:
				la = append(la, v)
			}
			done, err := p.next(']')
			if err != nil {
				return nil, err
			}
			if done {
				break
			}
		}
	} else {
		p.i++
	}
	switch kind {
	case 'B':
		if ba == nil {
			ba = ir.ByteArray{}
		}
		return ba, nil
	case 'I':
		if ia == nil {
			ia = ir.IntArray{}
		}
		return ia, nil
	default:
		if la == nil {
			la = ir.LongArray{}
		}
		return la, nil
	}
}

// arrayElem parses an element of a typed array. The element's suffix,
// if any, must match the array kind.
func arrayElem(kind byte, w string) (int64, error) {
	bits := 64
	switch kind {
	case 'B':
		bits = 8
		w = trimSuffix(w, 'b')
	case 'I':
		bits = 32
	case 'L':
		w = trimSuffix(w, 'l')
	}
	v, err := strconv.ParseInt(w, 10, bits)
	if err != nil {
		return 0, ErrNumber
	}
	return v, nil
}

func trimSuffix(w string, lower byte) string {
	if n := len(w); n > 0 && (w[n-1] == lower || w[n-1] == lower-'a'+'A') {
		return w[:n-1]
	}
	return w
}

// scalar interprets a bare word. Words that look numeric but do not
// fit their type are errors; other words are strings.
func scalar(w string) (ir.Tag, error) {
	switch w {
	case "true":
		return ir.Bool(true), nil
	case "false":
		return ir.Bool(false), nil
	}
	if !looksNumeric(w) {
		return ir.String(w), nil
	}
	n := len(w)
	body := w[:n-1]
	switch w[n-1] {
	case 'b', 'B':
		v, err := strconv.ParseInt(body, 10, 8)
		return ir.Byte(v), numErr(err)
	case 's', 'S':
		v, err := strconv.ParseInt(body, 10, 16)
		return ir.Short(v), numErr(err)
	case 'l', 'L':
		v, err := strconv.ParseInt(body, 10, 64)
		return ir.Long(v), numErr(err)
	case 'f', 'F':
		v, err := strconv.ParseFloat(body, 32)
		return ir.Float(v), numErr(err)
	case 'd', 'D':
		v, err := strconv.ParseFloat(body, 64)
		return ir.Double(v), numErr(err)
	}
	if strings.ContainsAny(w, ".eE") || isSpecialFloat(w) {
		v, err := strconv.ParseFloat(w, 64)
		return ir.Double(v), numErr(err)
	}
	v, err := strconv.ParseInt(w, 10, 32)
	return ir.Int(v), numErr(err)
}

func numErr(err error) error {
	if err != nil {
		return ErrNumber
	}
	return nil
}

func isSpecialFloat(w string) bool {
	switch strings.TrimLeft(w, "+-") {
	case "NaN", "Inf":
		return true
	}
	return false
}

// looksNumeric reports whether w is a number with an optional type
// suffix, or one of the special float spellings.
func looksNumeric(w string) bool {
	body := w
	if n := len(w); n > 1 {
		switch w[n-1] {
		case 'b', 'B', 's', 'S', 'l', 'L', 'f', 'F', 'd', 'D':
			body = w[:n-1]
		}
	}
	if isSpecialFloat(body) {
		return true
	}
	body = strings.TrimLeft(body, "+-")
	if body == "" || strings.Count(w, "+")+strings.Count(w, "-") > 2 {
		return false
	}
	if c := body[0]; c != '.' && (c < '0' || c > '9') {
		return false
	}
	digits := 0
	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case c >= '0' && c <= '9':
			digits++
		case c == '.', c == 'e', c == 'E', c == '+', c == '-':
		default:
			return false
		}
	}
	return digits > 0
}
