// Package highway provides HighwayHash adapters keyed by a 256-bit seed.
//
// The key is the little-endian encoding of the four seed lanes, lane 0 first.
// Streaming is native.
package highway

import (
	"encoding/binary"
	"hash"

	"github.com/minio/highwayhash"

	"github.com/hupe1980/fasthash"
)

var (
	Hash64 = fasthash.DefineSeeded(fasthash.Descriptor[fasthash.Seed256, fasthash.Digest64]{
		Name: "highway64",
		HashWithSeed: func(b []byte, seed fasthash.Seed256) fasthash.Digest64 {
			return fasthash.Digest64(highwayhash.Sum64(b, Key(seed)))
		},
		NewWithSeed: func(seed fasthash.Seed256) fasthash.Primitive[fasthash.Digest64] {
			h, err := highwayhash.New64(Key(seed))
			must(err)
			return fasthash.Wrap64(h)
		},
		BlockSize: 32,
	})

	Hash128 = fasthash.DefineSeeded(fasthash.Descriptor[fasthash.Seed256, fasthash.Digest128]{
		Name: "highway128",
		HashWithSeed: func(b []byte, seed fasthash.Seed256) fasthash.Digest128 {
			sum := highwayhash.Sum128(b, Key(seed))
			return decode128(sum[:])
		},
		NewWithSeed: func(seed fasthash.Seed256) fasthash.Primitive[fasthash.Digest128] {
			h, err := highwayhash.New128(Key(seed))
			must(err)
			return prim128{h: h}
		},
		BlockSize: 32,
	})
)

// Key returns the 32-byte key encoding of seed.
func Key(seed fasthash.Seed256) []byte {
	k := make([]byte, 32)
	for i, lane := range seed {
		binary.LittleEndian.PutUint64(k[i*8:], lane)
	}
	return k
}

type prim128 struct {
	h   hash.Hash
	buf [16]byte
}

func (p prim128) Write(b []byte) (int, error) { return p.h.Write(b) }

func (p prim128) Sum() fasthash.Digest128 { return decode128(p.h.Sum(p.buf[:0])) }

func decode128(b []byte) fasthash.Digest128 {
	return fasthash.Digest128{
		Lo: binary.LittleEndian.Uint64(b[:8]),
		Hi: binary.LittleEndian.Uint64(b[8:16]),
	}
}

// must panics on key errors, which Key rules out.
func must(err error) {
	if err != nil {
		panic(err)
	}
}
