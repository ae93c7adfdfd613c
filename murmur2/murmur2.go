// Package murmur2 provides MurmurHash2 adapters: the 32-bit MurmurHash2 and
// the 64-bit MurmurHash64A. Streaming buffers input.
package murmur2

import (
	gomurmur "github.com/aviddiviner/go-murmur"

	"github.com/hupe1980/fasthash"
)

var (
	Hash32 = fasthash.DefineSeeded(fasthash.Descriptor[uint32, fasthash.Digest32]{
		Name: "murmur2_32",
		HashWithSeed: func(b []byte, seed uint32) fasthash.Digest32 {
			return fasthash.Digest32(gomurmur.MurmurHash2(b, seed))
		},
	})

	Hash64 = fasthash.DefineSeeded(fasthash.Descriptor[uint64, fasthash.Digest64]{
		Name: "murmur2_64",
		HashWithSeed: func(b []byte, seed uint64) fasthash.Digest64 {
			return fasthash.Digest64(gomurmur.MurmurHash64A(b, seed))
		},
	})
)
