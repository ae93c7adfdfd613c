// Package xxh3 provides XXH3 adapters.
//
// Unseeded streaming is native. Seeded streaming buffers input and hashes it
// once, which keeps it bit-identical to the seeded one-shot function.
package xxh3

import (
	zxxh3 "github.com/zeebo/xxh3"

	"github.com/hupe1980/fasthash"
)

var (
	Hash64 = fasthash.DefineSeeded(fasthash.Descriptor[uint64, fasthash.Digest64]{
		Name: "xxh3_64",
		Hash: func(b []byte) fasthash.Digest64 { return fasthash.Digest64(zxxh3.Hash(b)) },
		HashWithSeed: func(b []byte, seed uint64) fasthash.Digest64 {
			return fasthash.Digest64(zxxh3.HashSeed(b, seed))
		},
		New:       func() fasthash.Primitive[fasthash.Digest64] { return prim64{zxxh3.New()} },
		BlockSize: 64,
	})

	Hash128 = fasthash.DefineSeeded(fasthash.Descriptor[uint64, fasthash.Digest128]{
		Name: "xxh3_128",
		Hash: func(b []byte) fasthash.Digest128 { return digest128(zxxh3.Hash128(b)) },
		HashWithSeed: func(b []byte, seed uint64) fasthash.Digest128 {
			return digest128(zxxh3.Hash128Seed(b, seed))
		},
		New:       func() fasthash.Primitive[fasthash.Digest128] { return prim128{zxxh3.New()} },
		BlockSize: 64,
	})
)

type prim64 struct{ h *zxxh3.Hasher }

func (p prim64) Write(b []byte) (int, error) { return p.h.Write(b) }
func (p prim64) Sum() fasthash.Digest64       { return fasthash.Digest64(p.h.Sum64()) }

type prim128 struct{ h *zxxh3.Hasher }

func (p prim128) Write(b []byte) (int, error) { return p.h.Write(b) }
func (p prim128) Sum() fasthash.Digest128     { return digest128(p.h.Sum128()) }

func digest128(u zxxh3.Uint128) fasthash.Digest128 {
	return fasthash.Digest128{Lo: u.Lo, Hi: u.Hi}
}
