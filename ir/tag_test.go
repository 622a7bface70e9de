package ir

import (
	"errors"
	"math"
	"testing"
)

func sampleDoc() *Compound {
	return NewCompound().
		PutString("name", "world").
		Put("items", MustListOf(Int(1), Int(2), Int(3))).
		Put("player", NewCompound().
			PutDouble("health", 20).
			Put("inventory", MustListOf(
				NewCompound().PutString("id", "stone").PutByte("count", 64),
				NewCompound().PutString("id", "dirt").PutByte("count", 3),
			))).
		Put("bytes", ByteArray{1, -2, 3})
}

func TestCompoundOrder(t *testing.T) {
	c := NewCompound().PutInt("b", 1).PutInt("a", 2).PutInt("c", 3)
	c.PutInt("a", 20)
	want := []string{"b", "a", "c"}
	if got := c.Keys(); !equalStrings(got, want) {
		t.Errorf("keys %v want %v", got, want)
	}
	if v, _ := c.GetInt("a"); v != 20 {
		t.Errorf("a = %d", v)
	}
	if _, ok := c.Remove("b"); !ok {
		t.Fatal("remove b")
	}
	if got := c.Keys(); !equalStrings(got, []string{"a", "c"}) {
		t.Errorf("keys %v", got)
	}
	if c.IndexOf("c") != 1 || c.IndexOf("b") != -1 {
		t.Errorf("index after remove: c=%d b=%d", c.IndexOf("c"), c.IndexOf("b"))
	}
}

func TestCompoundSetRejectsEnd(t *testing.T) {
	c := NewCompound()
	if err := c.Set("x", End{}); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("got %v", err)
	}
	if err := c.Set("x", nil); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("got %v", err)
	}
	var zero Compound
	if err := zero.Set("x", Int(1)); err != nil {
		t.Errorf("zero compound: %v", err)
	}
}

func TestCompoundGetters(t *testing.T) {
	c := sampleDoc()
	if _, err := c.GetInt("name"); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("GetInt(name): %v", err)
	}
	if _, err := c.GetInt("nope"); !errors.Is(err, ErrKeyNotFound) || !errors.Is(err, ErrPathNotFound) {
		t.Errorf("GetInt(nope): %v", err)
	}
	c.PutBool("flag", true)
	if b, err := c.GetBool("flag"); err != nil || !b {
		t.Errorf("GetBool: %v %v", b, err)
	}
	if v, _ := c.GetByte("flag"); v != 1 {
		t.Errorf("bool stored as %d", v)
	}
}

func TestListHomogeneity(t *testing.T) {
	l := MustListOf(Int(1), Int(2))
	err := l.Append(String("x"))
	if !errors.Is(err, ErrDuplicateElementType) || !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("got %v", err)
	}
	if l.Len() != 2 || l.ElemType() != IntType {
		t.Errorf("list modified: len %d elem %s", l.Len(), l.ElemType())
	}
	if err := l.Append(End{}); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("End: %v", err)
	}

	e := NewList(EndType)
	if err := e.Append(String("a")); err != nil {
		t.Fatal(err)
	}
	if e.ElemType() != StringType {
		t.Errorf("committed %s", e.ElemType())
	}
	if _, err := e.Remove(0); err != nil {
		t.Fatal(err)
	}
	if e.ElemType() != StringType {
		t.Errorf("empty list lost its type: %s", e.ElemType())
	}
	if err := e.Append(Int(1)); err != nil {
		t.Errorf("empty list should accept any type: %v", err)
	}

	single := MustListOf(Int(1))
	if err := single.Set(0, Long(2)); err != nil {
		t.Errorf("replace only element: %v", err)
	}
	if single.ElemType() != LongType {
		t.Errorf("elem %s", single.ElemType())
	}
}

func TestListBounds(t *testing.T) {
	l := MustListOf(Byte(1), Byte(2), Byte(3))
	for _, i := range []int{-1, 3, 10} {
		if _, err := l.At(i); !errors.Is(err, ErrIndexOutOfBounds) {
			t.Errorf("At(%d): %v", i, err)
		}
	}
	if err := l.Insert(3, Byte(4)); err != nil {
		t.Errorf("insert at len: %v", err)
	}
	if err := l.Insert(5, Byte(4)); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("insert past len: %v", err)
	}
}

func TestCloneIsDeep(t *testing.T) {
	a := sampleDoc()
	b := a.Clone().(*Compound)
	if !Equal(a, b) {
		t.Fatal("clone not equal")
	}
	inv, _ := Resolve(b, "player.inventory[0]")
	inv.(*Compound).PutByte("count", 1)
	arr, _ := b.GetByteArray("bytes")
	arr[0] = 100
	if Equal(a, b) {
		t.Error("mutating clone changed original")
	}
	if v, _ := Resolve(a, "player.inventory[0].count"); v != Byte(64) {
		t.Errorf("original count %v", v)
	}
	if v, _ := a.GetByteArray("bytes"); v[0] != 1 {
		t.Errorf("original array %v", v)
	}
}

func TestEqual(t *testing.T) {
	nan := Double(math.NaN())
	tests := []struct {
		name string
		a, b Tag
		want bool
	}{
		{"int", Int(1), Int(1), true},
		{"int/long", Int(1), Long(1), false},
		{"nan", nan, nan, true},
		{"neg zero", Float(0), Float(float32(math.Copysign(0, -1))), false},
		{"empty lists of different type", NewList(IntType), NewList(StringType), true},
		{"lists", MustListOf(Int(1)), MustListOf(Int(2)), false},
		{"key order", NewCompound().PutInt("a", 1).PutInt("b", 2), NewCompound().PutInt("b", 2).PutInt("a", 1), false},
		{"arrays", IntArray{1, 2}, IntArray{1, 2}, true},
		{"nil", nil, nil, true},
		{"nil/int", nil, Int(0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal got %v want %v", got, tt.want)
			}
			if tt.want && tt.a != nil && Hash(tt.a) != Hash(tt.b) {
				t.Error("equal tags hash differently")
			}
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Tag
		want int
	}{
		{"Byte < Short", Byte(100), Short(1), -1},
		{"Int < Int", Int(1), Int(2), -1},
		{"String == String", String("a"), String("a"), 0},
		{"String > String", String("b"), String("a"), 1},
		{"short list < long list", MustListOf(Int(1)), MustListOf(Int(1), Int(2)), -1},
		{"list element", MustListOf(Int(3)), MustListOf(Int(2), Int(9)), 1},
		{"compound key", NewCompound().PutInt("a", 1), NewCompound().PutInt("b", 1), -1},
		{"compound value", NewCompound().PutInt("a", 2), NewCompound().PutInt("a", 1), 1},
		{"arrays", LongArray{1, 2}, LongArray{1, 3}, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.want {
				t.Errorf("got %d want %d", got, tt.want)
			}
			if got := Compare(tt.b, tt.a); got != -tt.want {
				t.Errorf("reversed got %d want %d", got, -tt.want)
			}
		})
	}
}

func TestTypeText(t *testing.T) {
	for _, typ := range Types() {
		d, err := typ.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Type
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != typ {
			t.Errorf("%s round tripped to %s", typ, back)
		}
		if z := Zero(typ); z == nil || z.Type() != typ {
			t.Errorf("Zero(%s) = %v", typ, z)
		}
	}
	if _, err := Type(13).MarshalText(); !errors.Is(err, ErrUnknownType) {
		t.Errorf("got %v", err)
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
