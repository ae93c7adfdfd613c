// Package sip provides SipHash-2-4 adapters keyed by a 128-bit seed.
//
// The key's low lane is k0, read little-endian from key bytes 0..7.
package sip

import (
	"encoding/binary"

	"github.com/dchest/siphash"

	"github.com/hupe1980/fasthash"
)

var (
	Hash64 = fasthash.DefineSeeded(fasthash.Descriptor[fasthash.Seed128, fasthash.Digest64]{
		Name: "sip64",
		HashWithSeed: func(b []byte, key fasthash.Seed128) fasthash.Digest64 {
			return fasthash.Digest64(siphash.Hash(key.Lo, key.Hi, b))
		},
		NewWithSeed: func(key fasthash.Seed128) fasthash.Primitive[fasthash.Digest64] {
			return fasthash.Wrap64(siphash.New(KeyBytes(key)))
		},
		BlockSize: 8,
	})

	Hash128 = fasthash.DefineSeeded(fasthash.Descriptor[fasthash.Seed128, fasthash.Digest128]{
		Name: "sip128",
		HashWithSeed: func(b []byte, key fasthash.Seed128) fasthash.Digest128 {
			lo, hi := siphash.Hash128(key.Lo, key.Hi, b)
			return fasthash.Digest128{Lo: lo, Hi: hi}
		},
	})
)

// KeyBytes returns the 16-byte key encoding of key.
func KeyBytes(key fasthash.Seed128) []byte {
	b := make([]byte, 16)
	binary.LittleEndian.PutUint64(b[:8], key.Lo)
	binary.LittleEndian.PutUint64(b[8:], key.Hi)
	return b
}
