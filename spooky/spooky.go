// Package spooky provides SpookyHash V2 adapters.
//
// The library exposes the 128-bit function with in/out seed lanes. The 64-
// and 32-bit variants derive from it by seeding both lanes and keeping the
// first, as the reference implementation does.
package spooky

import (
	gospooky "github.com/dgryski/go-spooky"

	"github.com/hupe1980/fasthash"
)

var (
	Hash32 = fasthash.DefineSeeded(fasthash.Descriptor[uint32, fasthash.Digest32]{
		Name: "spooky32",
		HashWithSeed: func(b []byte, seed uint32) fasthash.Digest32 {
			h1, h2 := uint64(seed), uint64(seed)
			gospooky.Hash128(b, &h1, &h2)
			return fasthash.Digest32(uint32(h1))
		},
	})

	Hash64 = fasthash.DefineSeeded(fasthash.Descriptor[uint64, fasthash.Digest64]{
		Name: "spooky64",
		HashWithSeed: func(b []byte, seed uint64) fasthash.Digest64 {
			h1, h2 := seed, seed
			gospooky.Hash128(b, &h1, &h2)
			return fasthash.Digest64(h1)
		},
	})

	Hash128 = fasthash.DefineSeeded(fasthash.Descriptor[fasthash.Seed128, fasthash.Digest128]{
		Name: "spooky128",
		HashWithSeed: func(b []byte, seed fasthash.Seed128) fasthash.Digest128 {
			h1, h2 := seed.Lo, seed.Hi
			gospooky.Hash128(b, &h1, &h2)
			return fasthash.Digest128{Lo: h1, Hi: h2}
		},
	})
)
