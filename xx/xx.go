// Package xx provides xxHash adapters (XXH32 and XXH64) with native streaming.
package xx

import (
	"github.com/cespare/xxhash/v2"
	"github.com/pierrec/xxHash/xxHash32"
	"github.com/pierrec/xxHash/xxHash64"

	"github.com/hupe1980/fasthash"
)

var (
	Hash32 = fasthash.DefineSeeded(fasthash.Descriptor[uint32, fasthash.Digest32]{
		Name: "xx32",
		HashWithSeed: func(b []byte, seed uint32) fasthash.Digest32 {
			return fasthash.Digest32(xxHash32.Checksum(b, seed))
		},
		NewWithSeed: func(seed uint32) fasthash.Primitive[fasthash.Digest32] {
			return fasthash.Wrap32(xxHash32.New(seed))
		},
		BlockSize: 16,
	})

	Hash64 = fasthash.DefineSeeded(fasthash.Descriptor[uint64, fasthash.Digest64]{
		Name: "xx64",
		Hash: func(b []byte) fasthash.Digest64 { return fasthash.Digest64(xxhash.Sum64(b)) },
		HashWithSeed: func(b []byte, seed uint64) fasthash.Digest64 {
			return fasthash.Digest64(xxHash64.Checksum(b, seed))
		},
		New: func() fasthash.Primitive[fasthash.Digest64] { return fasthash.Wrap64(xxhash.New()) },
		NewWithSeed: func(seed uint64) fasthash.Primitive[fasthash.Digest64] {
			return fasthash.Wrap64(xxhash.NewWithSeed(seed))
		},
		BlockSize: 32,
	})
)
