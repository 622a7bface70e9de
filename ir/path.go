package ir

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Path is a parsed path expression: a linked sequence of navigation
// steps. Each step sets exactly one of Field, FieldAll, Index or
// IndexAll. A nil *Path addresses the root.
//
// The textual form is
//
//	key.key[index].key
//
// optionally preceded by '$'. Keys containing any of ". [ ] ' * $" or
// whitespace, and the empty key, are written in single quotes with
// backslash escapes. "*" as a key and "[*]" as an index are wildcards,
// accepted only by ListPath.
type Path struct {
	Field    *string
	FieldAll bool
	Index    *int
	IndexAll bool
	Next     *Path
}

// Field returns a one step path selecting compound entry key.
func Field(key string) *Path {
	return &Path{Field: &key}
}

// Index returns a one step path selecting list element i.
func Index(i int) *Path {
	return &Path{Index: &i}
}

// Append returns a copy of p followed by q. Neither p nor q is
// modified.
func (p *Path) Append(q *Path) *Path {
	if p == nil {
		return q.copy()
	}
	res := p.copy()
	tail := res
	for tail.Next != nil {
		tail = tail.Next
	}
	tail.Next = q.copy()
	return res
}

func (p *Path) copy() *Path {
	if p == nil {
		return nil
	}
	res := *p
	res.Next = p.Next.copy()
	return &res
}

// Len returns the number of steps.
func (p *Path) Len() int {
	n := 0
	for x := p; x != nil; x = x.Next {
		n++
	}
	return n
}

// Parent returns p without its last step, or nil.
func (p *Path) Parent() *Path {
	if p == nil || p.Next == nil {
		return nil
	}
	res := *p
	res.Next = p.Next.Parent()
	return &res
}

// Last returns the final step of p.
func (p *Path) Last() *Path {
	if p == nil {
		return nil
	}
	x := p
	for x.Next != nil {
		x = x.Next
	}
	return x
}

// HasWildcard reports whether any step is a wildcard.
func (p *Path) HasWildcard() bool {
	for x := p; x != nil; x = x.Next {
		if x.FieldAll || x.IndexAll {
			return true
		}
	}
	return false
}

func (p *Path) String() string {
	if p == nil {
		return "$"
	}
	buf := bytes.NewBuffer(nil)
	for x := p; x != nil; x = x.Next {
		switch {
		case x.FieldAll:
			if buf.Len() > 0 {
				buf.WriteByte('.')
			}
			buf.WriteByte('*')
		case x.Field != nil:
			if buf.Len() > 0 {
				buf.WriteByte('.')
			}
			buf.WriteString(quoteField(*x.Field))
		case x.IndexAll:
			buf.WriteString("[*]")
		case x.Index != nil:
			fmt.Fprintf(buf, "[%d]", *x.Index)
		}
	}
	return buf.String()
}

// PathField returns the textual path of entry key below parent.
func PathField(parent, key string) string {
	if parent == "" || parent == "$" {
		return quoteField(key)
	}
	return parent + "." + quoteField(key)
}

// PathIndex returns the textual path of element i below parent.
func PathIndex(parent string, i int) string {
	if parent == "$" {
		parent = ""
	}
	return parent + "[" + strconv.Itoa(i) + "]"
}

func quoteField(f string) string {
	if f != "" && f != "*" && strings.IndexFunc(f, needsQuote) == -1 {
		return f
	}
	var sb strings.Builder
	sb.WriteByte('\'')
	for i := 0; i < len(f); i++ {
		if f[i] == '\'' || f[i] == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(f[i])
	}
	sb.WriteByte('\'')
	return sb.String()
}

func needsQuote(r rune) bool {
	switch r {
	case '.', '[', ']', '\'', '$', '\\', ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

// ParsePath parses a path expression. The empty string and "$" address
// the root and parse to nil.
func ParsePath(p string) (*Path, error) {
	frag := strings.TrimPrefix(p, "$")
	if frag == "" {
		return nil, nil
	}
	if frag[0] != '.' && frag[0] != '[' {
		frag = "." + frag
	}
	root := &Path{}
	if err := parseFrag(frag, root); err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrBadPath, p, err)
	}
	return root, nil
}

// MustParsePath is like ParsePath but panics on error.
func MustParsePath(p string) *Path {
	res, err := ParsePath(p)
	if err != nil {
		panic(err)
	}
	return res
}

func parseFrag(frag string, parent *Path) error {
	var rest string
	switch frag[0] {
	case '.':
		field, r, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		if field == nil {
			parent.FieldAll = true
		} else {
			parent.Field = field
		}
		rest = r
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		index, all, err := parseIndex(frag[1 : i+1])
		if err != nil {
			return err
		}
		parent.IndexAll = all
		if !all {
			parent.Index = &index
		}
		rest = frag[i+2:]
	default:
		return fmt.Errorf("expected '.' or '[' at %q", frag)
	}
	if len(rest) == 0 {
		return nil
	}
	next := &Path{}
	if err := parseFrag(rest, next); err != nil {
		return err
	}
	parent.Next = next
	return nil
}

func parseIndex(is string) (index int, all bool, err error) {
	if is == "*" {
		return 0, true, nil
	}
	i, err := strconv.Atoi(strings.TrimSpace(is))
	if err != nil {
		return 0, false, fmt.Errorf("bad index %q", is)
	}
	return i, false, nil
}

// parseField returns the field at the head of frag, or nil for the
// wildcard, and the unparsed remainder.
func parseField(frag string) (field *string, rest string, err error) {
	if len(frag) == 0 {
		return nil, "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			i = len(frag)
		}
		f := frag[:i]
		if f == "" {
			return nil, "", fmt.Errorf("empty field")
		}
		if strings.ContainsAny(f, "]'$") {
			return nil, "", fmt.Errorf("unquoted field %q", f)
		}
		if f == "*" {
			return nil, frag[i:], nil
		}
		return &f, frag[i:], nil
	}
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch c {
		case '\\':
			if i+1 == len(frag) {
				return nil, "", fmt.Errorf("dangling escape")
			}
			i++
			res = append(res, frag[i])
		case '\'':
			f := string(res)
			return &f, frag[i+1:], nil
		default:
			res = append(res, c)
		}
	}
	return nil, "", fmt.Errorf("end of string scanning for \"'\"")
}
