package farm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/fasthash"
)

// Vectors from the farmhash reference test suite. Seeded forms use 32 for
// the 32- and 64-bit functions and (32, 64) for the 128-bit one.
var vectors = []struct {
	in               string
	h32, h32s        uint32
	fp64, h64, h64s  uint64
	h128lo, h128hi   uint64
	h128slo, h128shi uint64
}{
	{"", 0xdc56d17a, 0x0108292b, 0x9ae16a3b2f90404f, 0x9ae16a3b2f90404f, 0xb0403333574d37e4, 0x3df09dfc64c09a2b, 0x3cb540c392e51e29, 0x9fd4b80883017649, 0x806308c81d07d094},
	{"a", 0x3c973d4d, 0x7e4cfeed, 0xb3454265b6df75e3, 0xb3454265b6df75e3, 0x779ef0ca4870bcc2, 0x6e97d6bbdfc0a0c4, 0x52a71e38f43be561, 0xa347ea476dd92aff, 0xe12da4d2563e7840},
	{"abc", 0x2f635ec7, 0x27b6c746, 0x24a5b3a074e7f369, 0x24a5b3a074e7f369, 0x7c6dc4691a7576b6, 0x3980b2afd2126c04, 0xa085f09013029e45, 0xbeadc73cd0b92afe, 0xd0d697a5a943a657},
	{"Discard medicine more than two years old.", 0xe273108f, 0x6d328965, 0xe8f89ab6df9bdd25, 0x2d072041b535155d, 0xa3a2a2a6c80ebbd2, 0xc6c8eac0aafacfed, 0x8efcd3bd44573235, 0x445f11917c9e20cd, 0x6b22d6c3239d923d},
}

func TestVectors(t *testing.T) {
	for _, v := range vectors {
		t.Run(v.in, func(t *testing.T) {
			b := []byte(v.in)
			assert.Equal(t, fasthash.Digest32(v.h32), Hash32.Hash(b))
			assert.Equal(t, fasthash.Digest32(v.h32), Fingerprint32.Hash(b))
			assert.Equal(t, fasthash.Digest32(v.h32s), Hash32.HashWithSeed(b, 32))
			assert.Equal(t, fasthash.Digest64(v.h64), Hash64.Hash(b))
			assert.Equal(t, fasthash.Digest64(v.fp64), Fingerprint64.Hash(b))
			assert.Equal(t, fasthash.Digest64(v.h64s), Hash64.HashWithSeed(b, 32))
			h128 := fasthash.Digest128{Lo: v.h128lo, Hi: v.h128hi}
			assert.Equal(t, h128, Hash128.Hash(b))
			assert.Equal(t, h128, Fingerprint128.Hash(b))
			assert.Equal(t, fasthash.Digest128{Lo: v.h128slo, Hi: v.h128shi},
				Hash128.HashWithSeed(b, fasthash.Seed128{Lo: 32, Hi: 64}))
		})
	}
}

func TestFingerprintsAreUnseeded(t *testing.T) {
	assert.Equal(t, 0, Fingerprint32.SeedLanes())
	assert.Equal(t, 0, Fingerprint64.SeedLanes())
	assert.Equal(t, 0, Fingerprint128.SeedLanes())
	assert.Equal(t, 2, Hash128.SeedLanes())
}
