// Package lookup3 provides Bob Jenkins' lookup3 hash (hashlittle) as a
// seeded 32-bit algorithm. Streaming buffers input.
package lookup3

import (
	"encoding/binary"
	"math/bits"

	"github.com/hupe1980/fasthash"
)

var Hash32 = fasthash.DefineSeeded(fasthash.Descriptor[uint32, fasthash.Digest32]{
	Name: "lookup3",
	HashWithSeed: func(b []byte, seed uint32) fasthash.Digest32 {
		c, _ := Sum2(b, seed, 0)
		return fasthash.Digest32(c)
	},
})

// Sum2 is hashlittle2: it returns the primary hash c and the secondary hash
// b for the initial values pc and pb. Sum2(k, seed, 0) yields hashlittle.
func Sum2(k []byte, pc, pb uint32) (c, b uint32) {
	a := 0xdeadbeef + uint32(len(k)) + pc
	b, c = a, a+pb

	for len(k) > 12 {
		a += binary.LittleEndian.Uint32(k[0:])
		b += binary.LittleEndian.Uint32(k[4:])
		c += binary.LittleEndian.Uint32(k[8:])
		a, b, c = mix(a, b, c)
		k = k[12:]
	}

	switch len(k) {
	case 0:
		// Zero length strings require no mixing.
		return c, b
	case 12:
		c += binary.LittleEndian.Uint32(k[8:])
		fallthrough
	case 8:
		b += binary.LittleEndian.Uint32(k[4:])
		fallthrough
	case 4:
		a += binary.LittleEndian.Uint32(k[0:])
	default:
		var tail [12]byte
		copy(tail[:], k)
		a += binary.LittleEndian.Uint32(tail[0:])
		b += binary.LittleEndian.Uint32(tail[4:])
		c += binary.LittleEndian.Uint32(tail[8:])
	}

	a, b, c = final(a, b, c)
	return c, b
}

func mix(a, b, c uint32) (uint32, uint32, uint32) {
	a -= c
	a ^= bits.RotateLeft32(c, 4)
	c += b
	b -= a
	b ^= bits.RotateLeft32(a, 6)
	a += c
	c -= b
	c ^= bits.RotateLeft32(b, 8)
	b += a
	a -= c
	a ^= bits.RotateLeft32(c, 16)
	c += b
	b -= a
	b ^= bits.RotateLeft32(a, 19)
	a += c
	c -= b
	c ^= bits.RotateLeft32(b, 4)
	b += a
	return a, b, c
}

func final(a, b, c uint32) (uint32, uint32, uint32) {
	c ^= b
	c -= bits.RotateLeft32(b, 14)
	a ^= c
	a -= bits.RotateLeft32(c, 11)
	b ^= a
	b -= bits.RotateLeft32(a, 25)
	c ^= b
	c -= bits.RotateLeft32(b, 16)
	a ^= c
	a -= bits.RotateLeft32(c, 4)
	b ^= a
	b -= bits.RotateLeft32(a, 14)
	c ^= b
	c -= bits.RotateLeft32(b, 24)
	return a, b, c
}
