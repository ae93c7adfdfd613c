// Package wy provides the wyhash adapter with native streaming.
package wy

import (
	"github.com/orisano/wyhash"

	"github.com/hupe1980/fasthash"
)

var Hash64 = fasthash.DefineSeeded(fasthash.Descriptor[uint64, fasthash.Digest64]{
	Name: "wy64",
	HashWithSeed: func(b []byte, seed uint64) fasthash.Digest64 {
		return fasthash.Digest64(wyhash.Sum64(seed, b))
	},
	NewWithSeed: func(seed uint64) fasthash.Primitive[fasthash.Digest64] {
		return fasthash.Wrap64(wyhash.New(seed))
	},
	BlockSize: wyhash.BlockSize,
})
