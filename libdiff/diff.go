package libdiff

import (
	"github.com/signadot/go-nbt/debug"
	"github.com/signadot/go-nbt/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// maxRunes bounds the number of distinct keys or elements aligned
// through the rune based diff; beyond it runes would reach the
// surrogate range.
const maxRunes = 0xd000

// Diff returns the changes turning from into to, or nil if they are
// Equal up to compound key order.
func Diff(from, to ir.Tag) []Change {
	var res []Change
	res = diffTag(res, "", from, to)
	if debug.Diff() {
		debug.Logf("diff: %d changes\n", len(res))
	}
	return res
}

func diffTag(dst []Change, at string, from, to ir.Tag) []Change {
	if from.Type() != to.Type() {
		return append(dst, Change{Kind: Replace, Path: at, From: from, To: to})
	}
	switch x := from.(type) {
	case *ir.Compound:
		return diffCompound(dst, at, x, to.(*ir.Compound))
	case *ir.List:
		y := to.(*ir.List)
		if x.Len() > 0 && y.Len() > 0 && x.ElemType() != y.ElemType() {
			return append(dst, Change{Kind: Replace, Path: at, From: from, To: to})
		}
		return diffList(dst, at, x, y)
	}
	if ir.Equal(from, to) {
		return dst
	}
	return append(dst, Change{Kind: Replace, Path: at, From: from, To: to})
}

func diffCompound(dst []Change, at string, from, to *ir.Compound) []Change {
	for k, fv := range from.All() {
		tv, ok := to.Get(k)
		if !ok {
			dst = append(dst, Change{Kind: Remove, Path: ir.PathField(at, k), From: fv})
			continue
		}
		dst = diffTag(dst, ir.PathField(at, k), fv, tv)
	}
	for k, tv := range to.All() {
		if !from.Has(k) {
			dst = append(dst, Change{Kind: Add, Path: ir.PathField(at, k), To: tv})
		}
	}
	return dst
}

// diffList aligns the elements of from and to by structural hash and
// turns the alignment into removals and insertions at running indices.
// A removal directly followed by an insertion of the same container
// type is diffed recursively instead.
func diffList(dst []Change, at string, from, to *ir.List) []Change {
	fromRunes, toRunes, ok := listRunes(from, to)
	if !ok {
		return diffListByIndex(dst, at, from, to)
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffMainRunes(fromRunes, toRunes, false)
	fi, ti, ri := 0, 0, 0
	for i := 0; i < len(diffs); i++ {
		d := diffs[i]
		n := len([]rune(d.Text))
		switch d.Type {
		case diffpatch.DiffEqual:
			fi += n
			ti += n
			ri += n
		case diffpatch.DiffDelete:
			m := 0
			if i+1 < len(diffs) && diffs[i+1].Type == diffpatch.DiffInsert && from.ElemType().IsContainer() {
				m = min(n, len([]rune(diffs[i+1].Text)))
			}
			for j := 0; j < m; j++ {
				fv, _ := from.At(fi + j)
				tv, _ := to.At(ti + j)
				dst = diffTag(dst, ir.PathIndex(at, ri+j), fv, tv)
			}
			fi += m
			ti += m
			ri += m
			for j := m; j < n; j++ {
				fv, _ := from.At(fi)
				dst = append(dst, Change{Kind: Remove, Path: ir.PathIndex(at, ri), From: fv})
				fi++
			}
			if m > 0 {
				i++
				for j := m; j < len([]rune(diffs[i].Text)); j++ {
					tv, _ := to.At(ti)
					dst = append(dst, Change{Kind: Add, Path: ir.PathIndex(at, ri), To: tv})
					ti++
					ri++
				}
			}
		case diffpatch.DiffInsert:
			for j := 0; j < n; j++ {
				tv, _ := to.At(ti)
				dst = append(dst, Change{Kind: Add, Path: ir.PathIndex(at, ri), To: tv})
				ti++
				ri++
			}
		}
	}
	return dst
}

// listRunes maps each distinct element of from and to to a rune.
func listRunes(from, to *ir.List) ([]rune, []rune, bool) {
	type entry struct {
		tag ir.Tag
		r   rune
	}
	byHash := map[uint64][]entry{}
	next := rune(0)
	runeOf := func(t ir.Tag) rune {
		h := ir.Hash(t)
		for _, e := range byHash[h] {
			if ir.Equal(e.tag, t) {
				return e.r
			}
		}
		r := next
		next++
		byHash[h] = append(byHash[h], entry{tag: t, r: r})
		return r
	}
	if from.Len()+to.Len() > maxRunes {
		return nil, nil, false
	}
	fr := make([]rune, 0, from.Len())
	for _, v := range from.All() {
		fr = append(fr, runeOf(v))
	}
	tr := make([]rune, 0, to.Len())
	for _, v := range to.All() {
		tr = append(tr, runeOf(v))
	}
	return fr, tr, true
}

func diffListByIndex(dst []Change, at string, from, to *ir.List) []Change {
	n := min(from.Len(), to.Len())
	for i := 0; i < n; i++ {
		fv, _ := from.At(i)
		tv, _ := to.At(i)
		dst = diffTag(dst, ir.PathIndex(at, i), fv, tv)
	}
	for i := from.Len() - 1; i >= n; i-- {
		fv, _ := from.At(i)
		dst = append(dst, Change{Kind: Remove, Path: ir.PathIndex(at, i), From: fv})
	}
	for i := n; i < to.Len(); i++ {
		tv, _ := to.At(i)
		dst = append(dst, Change{Kind: Add, Path: ir.PathIndex(at, i), To: tv})
	}
	return dst
}
