package ir

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit structural hash of t. Tags that are Equal have
// the same hash within one process.
// It panics if t is nil.
func Hash(t Tag) uint64 {
	if t == nil {
		panic("ir: Hash called on nil tag")
	}
	var h maphash.Hash
	h.SetSeed(hashSeed)
	writeHash(&h, t)
	return h.Sum64()
}

func writeHash(h *maphash.Hash, t Tag) {
	var b [8]byte
	h.WriteByte(byte(t.Type()))

	switch x := t.(type) {
	case End:
	case Byte:
		h.WriteByte(byte(x))
	case Short:
		binary.LittleEndian.PutUint16(b[:], uint16(x))
		h.Write(b[:2])
	case Int:
		binary.LittleEndian.PutUint32(b[:], uint32(x))
		h.Write(b[:4])
	case Long:
		binary.LittleEndian.PutUint64(b[:], uint64(x))
		h.Write(b[:])
	case Float:
		binary.LittleEndian.PutUint32(b[:], math.Float32bits(float32(x)))
		h.Write(b[:4])
	case Double:
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(float64(x)))
		h.Write(b[:])
	case String:
		h.WriteString(string(x))
	case ByteArray:
		for _, v := range x {
			h.WriteByte(byte(v))
		}
	case IntArray:
		for _, v := range x {
			binary.LittleEndian.PutUint32(b[:], uint32(v))
			h.Write(b[:4])
		}
	case LongArray:
		for _, v := range x {
			binary.LittleEndian.PutUint64(b[:], uint64(v))
			h.Write(b[:])
		}
	case *List:
		// Combining child hashes in order keeps the result order
		// dependent.
		for _, v := range x.values {
			binary.LittleEndian.PutUint64(b[:], Hash(v))
			h.Write(b[:])
		}
	case *Compound:
		for i, k := range x.keys {
			h.WriteString(k)
			h.WriteByte(0)
			binary.LittleEndian.PutUint64(b[:], Hash(x.values[i]))
			h.Write(b[:])
		}
	default:
		panic(errInternal)
	}
}
