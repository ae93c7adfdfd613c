package highway

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/fasthash"
)

// refKey is the key 00 01 02 ... 1f of the HighwayHash reference vectors.
var refKey = fasthash.Seed256{
	0x0706050403020100, 0x0f0e0d0c0b0a0908, 0x1716151413121110, 0x1f1e1d1c1b1a1918,
}

// Reference vectors over the input 00 01 02 ... of length n, as hex of the
// little-endian digest.
var vectors = []struct {
	n      int
	sum64  string
	sum128 string
}{
	{0, "536ec222de567a90", "c7fe8f9d8f26ed0f6f3e097f765e5633"},
	{1, "78ddcdc7aa43ab7e", "a8e7813689a8b0d6b4dc9cebf91d29dc"},
	{3, "803d468aabef6b5c", "eb0b5f291b62070679ddced90f9ae6bf"},
	{32, "fc80d5ecd964c9a0", "aa4a43c166df8419b9e4b3f95819fc16"},
	{33, "fc8131a03cf7902c", "6cc3c6e0af7816119d84a2e59db558f9"},
	{64, "ffa6d24c5d2c5475", "f2c4d498711fbb98c88f91de7105bce0"},
}

func TestVectors(t *testing.T) {
	input := make([]byte, 64)
	for i := range input {
		input[i] = byte(i)
	}

	for _, v := range vectors {
		b := input[:v.n]
		assert.Equal(t, v.sum64, hex.EncodeToString(Hash64.HashWithSeed(b, refKey).Bytes()), "n=%d", v.n)
		assert.Equal(t, v.sum128, hex.EncodeToString(Hash128.HashWithSeed(b, refKey).Bytes()), "n=%d", v.n)

		s := Hash64.NewWithSeed(refKey)
		_, _ = s.Write(b)
		assert.Equal(t, v.sum64, hex.EncodeToString(s.Finalize().Bytes()), "streamed n=%d", v.n)
	}
}

func TestHelloWorld(t *testing.T) {
	in := []byte("hello world")
	assert.Equal(t, fasthash.Digest64(10265319535608467649), Hash64.Hash(in))
	assert.Equal(t, fasthash.Digest64(6273970844710122614), Hash64.HashWithSeed(in, fasthash.Seed256{1, 2, 3, 4}))
}

func TestKey(t *testing.T) {
	k := Key(fasthash.Seed256{1, 2, 3, 4})
	assert.Len(t, k, 32)
	assert.Equal(t, byte(1), k[0])
	assert.Equal(t, byte(2), k[8])
	assert.Equal(t, byte(4), k[24])
}

func TestStreaming(t *testing.T) {
	seed := fasthash.Seed256{1, 2, 3, 4}
	data := make([]byte, 257)
	for i := range data {
		data[i] = byte(i)
	}

	s64 := Hash64.NewWithSeed(seed)
	s128 := Hash128.NewWithSeed(seed)
	for i := 0; i < len(data); i += 19 {
		end := min(i+19, len(data))
		_, _ = s64.Write(data[i:end])
		_, _ = s128.Write(data[i:end])
	}
	assert.Equal(t, Hash64.HashWithSeed(data, seed), s64.Finalize())
	assert.Equal(t, Hash128.HashWithSeed(data, seed), s128.Finalize())
}
