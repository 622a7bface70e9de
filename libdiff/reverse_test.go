package libdiff

import (
	"testing"

	"github.com/signadot/go-nbt/ir"
	"github.com/signadot/go-nbt/snbt"
)

func TestReverse(t *testing.T) {
	pairs := [][2]string{
		{`{a:1,b:2}`, `{a:1,b:3}`},
		{`[1,2,3,4]`, `[1,4]`},
		{`[1,2,4]`, `[0,1,2,3,4,5]`},
		{`{inv:[{id:"stone",n:1b}]}`, `{inv:[{id:"stone",n:5b},{id:"dirt",n:2b}]}`},
		{`{a:{b:"x"},c:1}`, `{a:{b:"y",d:2L},c:1}`},
		{`1`, `"x"`},
	}
	for _, p := range pairs {
		from, to := snbt.MustParse(p[0]), snbt.MustParse(p[1])
		changes := Diff(from, to)
		fwd, err := Apply(ir.Clone(from), changes)
		if err != nil {
			t.Fatalf("%s -> %s: %v", p[0], p[1], err)
		}
		back, err := Apply(fwd, Reverse(changes))
		if err != nil {
			t.Fatalf("%s <- %s: %v", p[0], p[1], err)
		}
		if !ir.Equal(from, back) {
			t.Errorf("%s <- %s: got %s", p[0], p[1], snbt.MustString(back))
		}
	}
}

func TestReverseKeyOrder(t *testing.T) {
	from := snbt.MustParse(`{a:1,b:2}`)
	to := snbt.MustParse(`{b:2}`)
	back, err := Apply(ir.Clone(to), Reverse(Diff(from, to)))
	if err != nil {
		t.Fatal(err)
	}
	if got := snbt.MustString(back); got != `{b:2,a:1}` {
		t.Errorf("got %s", got)
	}
}
