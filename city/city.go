// Package city provides CityHash adapters.
//
// Hash64 and Hash128 take native seeds. Hash32 has none. All variants buffer
// input when streamed.
package city

import (
	gocity "github.com/go-faster/city"

	"github.com/hupe1980/fasthash"
)

var (
	// Hash32 is CityHash32.
	Hash32 = fasthash.Define(fasthash.Descriptor[fasthash.NoSeed, fasthash.Digest32]{
		Name: "city32",
		Hash: func(b []byte) fasthash.Digest32 { return fasthash.Digest32(gocity.Hash32(b)) },
	})

	// Hash64 is CityHash64. The unseeded and seeded forms are distinct
	// functions; HashWithSeed(b, 0) differs from Hash(b).
	Hash64 = fasthash.DefineSeeded(fasthash.Descriptor[uint64, fasthash.Digest64]{
		Name: "city64",
		Hash: func(b []byte) fasthash.Digest64 { return fasthash.Digest64(gocity.Hash64(b)) },
		HashWithSeed: func(b []byte, seed uint64) fasthash.Digest64 {
			return fasthash.Digest64(gocity.Hash64WithSeed(b, seed))
		},
	})

	// Hash128 is CityHash128.
	Hash128 = fasthash.DefineSeeded(fasthash.Descriptor[fasthash.Seed128, fasthash.Digest128]{
		Name: "city128",
		Hash: func(b []byte) fasthash.Digest128 { return digest128(gocity.Hash128(b)) },
		HashWithSeed: func(b []byte, seed fasthash.Seed128) fasthash.Digest128 {
			return digest128(gocity.Hash128Seed(b, gocity.U128{Low: seed.Lo, High: seed.Hi}))
		},
	})

	// CH64 is the CityHash64 variant frozen by ClickHouse (v1.0.2).
	CH64 = fasthash.Define(fasthash.Descriptor[fasthash.NoSeed, fasthash.Digest64]{
		Name: "city64_ch",
		Hash: func(b []byte) fasthash.Digest64 { return fasthash.Digest64(gocity.CH64(b)) },
	})
)

func digest128(u gocity.U128) fasthash.Digest128 {
	return fasthash.Digest128{Lo: u.Low, Hi: u.High}
}
