package eval

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/go-nbt/ir"
	"github.com/signadot/go-nbt/snbt"
)

const doc = `{Data:{Player:{Health:20.0f,Name:"Steve",Inv:[{id:"stone",n:3b},{id:"dirt",n:64b}]}},ver:3}`

func TestEval(t *testing.T) {
	tests := []struct {
		expr string
		want any
	}{
		{`getpath("Data.Player.Health")`, float64(20)},
		{`getpath("Data.Player.Name")`, "Steve"},
		{`getpath("ver") == 3`, true},
		{`getpath("Data.Player.Health") > 10`, true},
		{`typeof("Data.Player.Inv")`, "List"},
		{`typeof("$")`, "Compound"},
		{`typeof("Data.Player.Inv[0].n")`, "Byte"},
		{`len(getpath("Data.Player.Inv"))`, 2},
		{`len(getpath("Data.Player"))`, 3},
		{`listpath("Data.Player.Inv[*].id")`, []any{"stone", "dirt"}},
		{`exists("Data.Player.Armor")`, false},
		{`exists("Data.Player.Inv[1]")`, true},
		{`exists("Data.Player.Inv[2]")`, false},
		{`tag("ver")`, "3"},
		{`root.Data.Player.Name`, "Steve"},
		{`root.ver == 3 && typeof("ver") == "Int"`, true},
	}
	root := snbt.MustParse(doc)
	for _, tc := range tests {
		t.Run(tc.expr, func(t *testing.T) {
			got, err := Eval(root, tc.expr)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestEvalErrors(t *testing.T) {
	root := snbt.MustParse(doc)
	for _, expr := range []string{
		`getpath("nope")`,
		`typeof("Data.Player.Inv[9]")`,
		`exists("a[")`,
		`listpath("Data[")`,
		`getpath(`,
	} {
		if _, err := Eval(root, expr); err == nil {
			t.Errorf("%s: expected error", expr)
		}
	}
	if _, err := Eval(nil, `1`); err == nil {
		t.Error("nil root: expected error")
	}
}

func TestEvalTag(t *testing.T) {
	root := snbt.MustParse(doc)
	got, err := EvalTag(root, `getpath("Data.Player.Inv[1]")`)
	if err != nil {
		t.Fatal(err)
	}
	want := snbt.MustParse(`{id:"dirt",n:64}`)
	if !ir.Equal(want, got) {
		t.Errorf("got %s want %s", snbt.MustString(got), snbt.MustString(want))
	}
}

func TestProgramSeesMutation(t *testing.T) {
	root := snbt.MustParse(doc)
	p, err := Compile(root, `getpath("ver") + n`)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Run(Env{"n": int64(1)}); err != nil {
		t.Fatal(err)
	}
	if err := ir.Set(root, "ver", ir.Int(4)); err != nil {
		t.Fatal(err)
	}
	got, err := p.Run(Env{"n": int64(1)})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(int64(5), got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
