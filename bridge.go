package fasthash

import (
	"encoding/binary"
	"math"
)

// stringTerminator follows every string written through HashString so that
// ("ab", "c") and ("a", "bc") hash differently.
const stringTerminator = 0xff

// Bridge drives a Hasher with typed values and reduces the digest to the
// single uint64 a hash table consumes.
//
// Typed values are encoded little-endian. Finish reduces 32-bit digests by
// zero extension and 128-bit digests to their low lane.
//
// A Bridge hashes one value; get a fresh one from a Factory or RandomState
// for the next.
type Bridge struct {
	h   Hasher
	buf [8]byte
}

// NewBridge wraps h.
func NewBridge(h Hasher) *Bridge { return &Bridge{h: h} }

// Write feeds raw bytes.
func (b *Bridge) Write(p []byte) (int, error) { return b.h.Write(p) }

func (b *Bridge) WriteString(s string) (int, error) { return b.h.WriteString(s) }

func (b *Bridge) HashUint8(v uint8) {
	b.buf[0] = v
	_, _ = b.h.Write(b.buf[:1])
}

func (b *Bridge) HashUint16(v uint16) {
	binary.LittleEndian.PutUint16(b.buf[:2], v)
	_, _ = b.h.Write(b.buf[:2])
}

func (b *Bridge) HashUint32(v uint32) {
	binary.LittleEndian.PutUint32(b.buf[:4], v)
	_, _ = b.h.Write(b.buf[:4])
}

func (b *Bridge) HashUint64(v uint64) {
	binary.LittleEndian.PutUint64(b.buf[:], v)
	_, _ = b.h.Write(b.buf[:])
}

// HashUint writes v as 64 bits regardless of platform word size.
func (b *Bridge) HashUint(v uint) { b.HashUint64(uint64(v)) }

func (b *Bridge) HashInt8(v int8)   { b.HashUint8(uint8(v)) }
func (b *Bridge) HashInt16(v int16) { b.HashUint16(uint16(v)) }
func (b *Bridge) HashInt32(v int32) { b.HashUint32(uint32(v)) }
func (b *Bridge) HashInt64(v int64) { b.HashUint64(uint64(v)) }

// HashInt writes v as 64 bits regardless of platform word size.
func (b *Bridge) HashInt(v int) { b.HashUint64(uint64(v)) }

func (b *Bridge) HashByte(v byte) { b.HashUint8(v) }

func (b *Bridge) HashRune(v rune) { b.HashUint32(uint32(v)) }

func (b *Bridge) HashBool(v bool) {
	if v {
		b.HashUint8(1)
		return
	}
	b.HashUint8(0)
}

func (b *Bridge) HashFloat32(v float32) { b.HashUint32(math.Float32bits(v)) }

func (b *Bridge) HashFloat64(v float64) { b.HashUint64(math.Float64bits(v)) }

// HashString writes the bytes of s followed by a 0xff terminator.
func (b *Bridge) HashString(s string) {
	_, _ = b.h.WriteString(s)
	b.HashUint8(stringTerminator)
}

// HashBytes writes a 64-bit length prefix followed by p.
func (b *Bridge) HashBytes(p []byte) {
	b.HashUint64(uint64(len(p)))
	_, _ = b.h.Write(p)
}

// Finish returns the reduced digest of everything written so far.
func (b *Bridge) Finish() uint64 { return b.h.Digest().Uint64() }

// Sum64 is Finish.
func (b *Bridge) Sum64() uint64 { return b.Finish() }

// Digest returns the full digest.
func (b *Bridge) Digest() Digest { return b.h.Digest() }

func (b *Bridge) Reset() { b.h.Reset() }
