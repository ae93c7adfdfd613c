// Package metro provides MetroHash adapters. Streaming buffers input.
package metro

import (
	gometro "github.com/dgryski/go-metro"

	"github.com/hupe1980/fasthash"
)

var (
	Hash64 = fasthash.DefineSeeded(fasthash.Descriptor[uint64, fasthash.Digest64]{
		Name: "metro64",
		HashWithSeed: func(b []byte, seed uint64) fasthash.Digest64 {
			return fasthash.Digest64(gometro.Hash64(b, seed))
		},
	})

	Hash128 = fasthash.DefineSeeded(fasthash.Descriptor[uint64, fasthash.Digest128]{
		Name: "metro128",
		HashWithSeed: func(b []byte, seed uint64) fasthash.Digest128 {
			lo, hi := gometro.Hash128(b, seed)
			return fasthash.Digest128{Lo: lo, Hi: hi}
		},
	})
)
