package ir

import (
	"fmt"
	"iter"
	"slices"
)

// Compound is an insertion ordered mapping from names to tags. Names
// are unique; putting an existing name replaces its value without
// moving it.
type Compound struct {
	keys   []string
	values []Tag
	index  map[string]int
}

func NewCompound() *Compound {
	return &Compound{index: map[string]int{}}
}

func (*Compound) Type() Type { return CompoundType }

func (c *Compound) Len() int { return len(c.keys) }

// Keys returns the names in order. Callers must not modify the result.
func (c *Compound) Keys() []string { return c.keys }

func (c *Compound) Has(key string) bool {
	_, ok := c.index[key]
	return ok
}

// IndexOf returns the position of key, or -1.
func (c *Compound) IndexOf(key string) int {
	i, ok := c.index[key]
	if !ok {
		return -1
	}
	return i
}

func (c *Compound) Get(key string) (Tag, bool) {
	i, ok := c.index[key]
	if !ok {
		return nil, false
	}
	return c.values[i], true
}

// Lookup is like Get but reports a missing key as ErrKeyNotFound.
func (c *Compound) Lookup(key string) (Tag, error) {
	v, ok := c.Get(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	return v, nil
}

// Put stores v under key and returns c so calls can be chained. An
// existing key keeps its position. The compound takes ownership of v;
// clone a tag that is already part of another tree before putting it.
// Put panics if v is nil or End.
func (c *Compound) Put(key string, v Tag) *Compound {
	if err := c.Set(key, v); err != nil {
		panic(err)
	}
	return c
}

// Set is like Put but returns an error instead of panicking.
func (c *Compound) Set(key string, v Tag) error {
	if v == nil {
		return fmt.Errorf("%w: nil tag for %q", ErrTypeMismatch, key)
	}
	if v.Type() == EndType {
		return fmt.Errorf("%w: End is not a compound entry (%q)", ErrTypeMismatch, key)
	}
	if c.index == nil {
		c.index = map[string]int{}
	}
	if i, ok := c.index[key]; ok {
		c.values[i] = v
		return nil
	}
	c.index[key] = len(c.keys)
	c.keys = append(c.keys, key)
	c.values = append(c.values, v)
	return nil
}

// Remove deletes key and returns its value, preserving the order of
// the remaining entries.
func (c *Compound) Remove(key string) (Tag, bool) {
	i, ok := c.index[key]
	if !ok {
		return nil, false
	}
	v := c.values[i]
	c.keys = slices.Delete(c.keys, i, i+1)
	c.values = slices.Delete(c.values, i, i+1)
	delete(c.index, key)
	for j := i; j < len(c.keys); j++ {
		c.index[c.keys[j]] = j
	}
	return v, true
}

// All iterates over the entries in insertion order.
func (c *Compound) All() iter.Seq2[string, Tag] {
	return func(yield func(string, Tag) bool) {
		for i, k := range c.keys {
			if !yield(k, c.values[i]) {
				return
			}
		}
	}
}

// Merge puts clones of all entries of other into c, in other's order.
func (c *Compound) Merge(other *Compound) *Compound {
	for k, v := range other.All() {
		c.Put(k, v.Clone())
	}
	return c
}

func (c *Compound) Clone() Tag {
	res := &Compound{
		keys:   slices.Clone(c.keys),
		values: make([]Tag, len(c.values)),
		index:  make(map[string]int, len(c.keys)),
	}
	for i, v := range c.values {
		res.values[i] = v.Clone()
		res.index[c.keys[i]] = i
	}
	return res
}

func (c *Compound) PutByte(key string, v int8) *Compound {
	return c.Put(key, Byte(v))
}

func (c *Compound) PutBool(key string, v bool) *Compound {
	return c.Put(key, Bool(v))
}

func (c *Compound) PutShort(key string, v int16) *Compound {
	return c.Put(key, Short(v))
}

func (c *Compound) PutInt(key string, v int32) *Compound {
	return c.Put(key, Int(v))
}

func (c *Compound) PutLong(key string, v int64) *Compound {
	return c.Put(key, Long(v))
}

func (c *Compound) PutFloat(key string, v float32) *Compound {
	return c.Put(key, Float(v))
}

func (c *Compound) PutDouble(key string, v float64) *Compound {
	return c.Put(key, Double(v))
}

func (c *Compound) PutString(key string, v string) *Compound {
	return c.Put(key, String(v))
}

func (c *Compound) GetByte(key string) (int8, error) {
	return getAs(c, key, AsByte)
}

func (c *Compound) GetBool(key string) (bool, error) {
	return getAs(c, key, AsBool)
}

func (c *Compound) GetShort(key string) (int16, error) {
	return getAs(c, key, AsShort)
}

func (c *Compound) GetInt(key string) (int32, error) {
	return getAs(c, key, AsInt)
}

func (c *Compound) GetLong(key string) (int64, error) {
	return getAs(c, key, AsLong)
}

func (c *Compound) GetFloat(key string) (float32, error) {
	return getAs(c, key, AsFloat)
}

func (c *Compound) GetDouble(key string) (float64, error) {
	return getAs(c, key, AsDouble)
}

func (c *Compound) GetString(key string) (string, error) {
	return getAs(c, key, AsString)
}

func (c *Compound) GetList(key string) (*List, error) {
	return getAs(c, key, AsList)
}

func (c *Compound) GetCompound(key string) (*Compound, error) {
	return getAs(c, key, AsCompound)
}

func (c *Compound) GetByteArray(key string) ([]int8, error) {
	return getAs(c, key, AsByteArray)
}

func (c *Compound) GetIntArray(key string) ([]int32, error) {
	return getAs(c, key, AsIntArray)
}

func (c *Compound) GetLongArray(key string) ([]int64, error) {
	return getAs(c, key, AsLongArray)
}

func getAs[T any](c *Compound, key string, as func(Tag) (T, error)) (T, error) {
	v, err := c.Lookup(key)
	if err != nil {
		var zero T
		return zero, err
	}
	res, err := as(v)
	if err != nil {
		return res, fmt.Errorf("%q: %w", key, err)
	}
	return res, nil
}
