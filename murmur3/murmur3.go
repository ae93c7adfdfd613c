// Package murmur3 provides MurmurHash3 adapters with native streaming.
//
// Hash32 is the x86_32 variant. Hash128 is x64_128 with h1 as the low lane,
// and Hash64 is that low lane on its own.
package murmur3

import (
	mmh3 "github.com/spaolacci/murmur3"

	"github.com/hupe1980/fasthash"
)

var (
	Hash32 = fasthash.DefineSeeded(fasthash.Descriptor[uint32, fasthash.Digest32]{
		Name:         "murmur3_32",
		Hash:         func(b []byte) fasthash.Digest32 { return fasthash.Digest32(mmh3.Sum32(b)) },
		HashWithSeed: func(b []byte, seed uint32) fasthash.Digest32 { return fasthash.Digest32(mmh3.Sum32WithSeed(b, seed)) },
		New:          func() fasthash.Primitive[fasthash.Digest32] { return fasthash.Wrap32(mmh3.New32()) },
		NewWithSeed: func(seed uint32) fasthash.Primitive[fasthash.Digest32] {
			return fasthash.Wrap32(mmh3.New32WithSeed(seed))
		},
		BlockSize: 4,
	})

	Hash64 = fasthash.DefineSeeded(fasthash.Descriptor[uint32, fasthash.Digest64]{
		Name:         "murmur3_64",
		Hash:         func(b []byte) fasthash.Digest64 { return fasthash.Digest64(mmh3.Sum64(b)) },
		HashWithSeed: func(b []byte, seed uint32) fasthash.Digest64 { return fasthash.Digest64(mmh3.Sum64WithSeed(b, seed)) },
		New:          func() fasthash.Primitive[fasthash.Digest64] { return fasthash.Wrap64(mmh3.New64()) },
		NewWithSeed: func(seed uint32) fasthash.Primitive[fasthash.Digest64] {
			return fasthash.Wrap64(mmh3.New64WithSeed(seed))
		},
		BlockSize: 16,
	})

	Hash128 = fasthash.DefineSeeded(fasthash.Descriptor[uint32, fasthash.Digest128]{
		Name: "murmur3_128",
		Hash: func(b []byte) fasthash.Digest128 {
			h1, h2 := mmh3.Sum128(b)
			return fasthash.Digest128{Lo: h1, Hi: h2}
		},
		HashWithSeed: func(b []byte, seed uint32) fasthash.Digest128 {
			h1, h2 := mmh3.Sum128WithSeed(b, seed)
			return fasthash.Digest128{Lo: h1, Hi: h2}
		},
		New: func() fasthash.Primitive[fasthash.Digest128] { return prim128{mmh3.New128()} },
		NewWithSeed: func(seed uint32) fasthash.Primitive[fasthash.Digest128] {
			return prim128{mmh3.New128WithSeed(seed)}
		},
		BlockSize: 16,
	})
)

type prim128 struct{ h mmh3.Hash128 }

func (p prim128) Write(b []byte) (int, error) { return p.h.Write(b) }

func (p prim128) Sum() fasthash.Digest128 {
	h1, h2 := p.h.Sum128()
	return fasthash.Digest128{Lo: h1, Hi: h2}
}
