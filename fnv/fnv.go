// Package fnv provides FNV-1a adapters.
package fnv

import (
	stdfnv "hash/fnv"

	"github.com/hupe1980/fasthash"
)

var (
	Hash32 = fasthash.Define(fasthash.Descriptor[fasthash.NoSeed, fasthash.Digest32]{
		Name: "fnv1a32",
		Hash: func(b []byte) fasthash.Digest32 {
			h := stdfnv.New32a()
			_, _ = h.Write(b)
			return fasthash.Digest32(h.Sum32())
		},
		New: func() fasthash.Primitive[fasthash.Digest32] { return fasthash.Wrap32(stdfnv.New32a()) },
	})

	Hash64 = fasthash.Define(fasthash.Descriptor[fasthash.NoSeed, fasthash.Digest64]{
		Name: "fnv1a64",
		Hash: func(b []byte) fasthash.Digest64 {
			h := stdfnv.New64a()
			_, _ = h.Write(b)
			return fasthash.Digest64(h.Sum64())
		},
		New: func() fasthash.Primitive[fasthash.Digest64] { return fasthash.Wrap64(stdfnv.New64a()) },
	})
)
