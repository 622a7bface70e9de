package nbt

import (
	"errors"
	"testing"

	"github.com/signadot/go-nbt/ir"
	"github.com/signadot/go-nbt/libdiff"
	"github.com/signadot/go-nbt/snbt"
)

func TestDiffPatch(t *testing.T) {
	tests := []struct {
		from, to string
	}{
		{`{a:1,b:"x"}`, `{a:2,b:"x"}`},
		{`{a:1}`, `{a:1,c:{d:[1b,2b]}}`},
		{`{l:[{id:1},{id:2},{id:3}]}`, `{l:[{id:1},{id:3}]}`},
		{`{l:[1,2,3]}`, `{l:[0,1,2,3,4]}`},
		{`{ba:[B;1b,2b]}`, `{ba:[B;1b,2b,3b]}`},
		{`{a:{b:{c:1s}}}`, `{a:{b:{}}}`},
	}
	for _, tc := range tests {
		from := snbt.MustParse(tc.from)
		to := snbt.MustParse(tc.to)
		changes := Diff(from, to)
		got, err := Patch(from, changes)
		if err != nil {
			t.Errorf("%s -> %s: %v", tc.from, tc.to, err)
			continue
		}
		if !ir.Equal(to, got) {
			t.Errorf("%s -> %s: got %s", tc.from, tc.to, snbt.MustString(got))
		}
		if !ir.Equal(snbt.MustParse(tc.from), from) {
			t.Errorf("%s: input modified to %s", tc.from, snbt.MustString(from))
		}
	}
}

func TestPatchAtomic(t *testing.T) {
	root := snbt.MustParse(`{a:1,l:[1,2]}`)
	changes := []libdiff.Change{
		{Kind: libdiff.Replace, Path: "a", From: ir.Int(1), To: ir.Int(9)},
		{Kind: libdiff.Remove, Path: "l[7]", From: ir.Int(0)},
	}
	if _, err := Patch(root, changes); !errors.Is(err, ir.ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds, got %v", err)
	}
	if got := snbt.MustString(root); got != `{a:1,l:[1,2]}` {
		t.Errorf("root modified: %s", got)
	}
}

func TestJSONPatch(t *testing.T) {
	root := snbt.MustParse(`{name:"x",items:[1b,2b],n:5s,pos:[L;1L,2L]}`)
	patch := []byte(`[
		{"op": "replace", "path": "/n", "value": 7},
		{"op": "add", "path": "/items/-", "value": 3},
		{"op": "add", "path": "/extra", "value": "y"},
		{"op": "remove", "path": "/pos/0"}
	]`)
	got, err := JSONPatch(root, patch)
	if err != nil {
		t.Fatal(err)
	}
	want := snbt.MustParse(`{name:"x",items:[1b,2b,3b],n:7s,pos:[L;2L],extra:"y"}`)
	if !ir.Equal(want, got) {
		t.Errorf("got %s want %s", snbt.MustString(got), snbt.MustString(want))
	}
	if got := snbt.MustString(root); got != `{name:"x",items:[1b,2b],n:5s,pos:[L;1L,2L]}` {
		t.Errorf("root modified: %s", got)
	}
}

func TestJSONPatchErrors(t *testing.T) {
	root := snbt.MustParse(`{n:5b}`)
	for _, p := range []string{
		`not json`,
		`[{"op": "remove", "path": "/missing"}]`,
		`[{"op": "replace", "path": "/n", "value": 300}]`,
		`[{"op": "replace", "path": "/n", "value": "text"}]`,
	} {
		if _, err := JSONPatch(root, []byte(p)); err == nil {
			t.Errorf("%s: expected error", p)
		}
	}
}
