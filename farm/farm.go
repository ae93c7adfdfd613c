// Package farm provides FarmHash adapters, including the fingerprint
// variants whose output is frozen across releases.
package farm

import (
	gofarm "github.com/dgryski/go-farm"

	"github.com/hupe1980/fasthash"
)

var (
	Hash32 = fasthash.DefineSeeded(fasthash.Descriptor[uint32, fasthash.Digest32]{
		Name: "farm32",
		Hash: func(b []byte) fasthash.Digest32 { return fasthash.Digest32(gofarm.Hash32(b)) },
		HashWithSeed: func(b []byte, seed uint32) fasthash.Digest32 {
			return fasthash.Digest32(gofarm.Hash32WithSeed(b, seed))
		},
	})

	Hash64 = fasthash.DefineSeeded(fasthash.Descriptor[uint64, fasthash.Digest64]{
		Name: "farm64",
		Hash: func(b []byte) fasthash.Digest64 { return fasthash.Digest64(gofarm.Hash64(b)) },
		HashWithSeed: func(b []byte, seed uint64) fasthash.Digest64 {
			return fasthash.Digest64(gofarm.Hash64WithSeed(b, seed))
		},
	})

	Hash128 = fasthash.DefineSeeded(fasthash.Descriptor[fasthash.Seed128, fasthash.Digest128]{
		Name: "farm128",
		Hash: func(b []byte) fasthash.Digest128 {
			lo, hi := gofarm.Hash128(b)
			return fasthash.Digest128{Lo: lo, Hi: hi}
		},
		HashWithSeed: func(b []byte, seed fasthash.Seed128) fasthash.Digest128 {
			lo, hi := gofarm.Hash128WithSeed(b, seed.Lo, seed.Hi)
			return fasthash.Digest128{Lo: lo, Hi: hi}
		},
	})

	Fingerprint32 = fasthash.Define(fasthash.Descriptor[fasthash.NoSeed, fasthash.Digest32]{
		Name: "farm_fingerprint32",
		Hash: func(b []byte) fasthash.Digest32 { return fasthash.Digest32(gofarm.Fingerprint32(b)) },
	})

	Fingerprint64 = fasthash.Define(fasthash.Descriptor[fasthash.NoSeed, fasthash.Digest64]{
		Name: "farm_fingerprint64",
		Hash: func(b []byte) fasthash.Digest64 { return fasthash.Digest64(gofarm.Fingerprint64(b)) },
	})

	Fingerprint128 = fasthash.Define(fasthash.Descriptor[fasthash.NoSeed, fasthash.Digest128]{
		Name: "farm_fingerprint128",
		Hash: func(b []byte) fasthash.Digest128 {
			lo, hi := gofarm.Fingerprint128(b)
			return fasthash.Digest128{Lo: lo, Hi: hi}
		},
	})
)
