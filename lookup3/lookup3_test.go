package lookup3

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/fasthash"
)

func TestVectors(t *testing.T) {
	tests := []struct {
		in   string
		seed uint32
		want uint32
	}{
		// lookup3.c driver values.
		{"", 0, 0xdeadbeef},
		{"Four score and seven years ago", 0, 0x17770551},
		{"Four score and seven years ago", 1, 0xcd628161},

		{"hello", 0, 885767278},
		{"hello", 123, 632258402},
		{"helloworld", 0, 1392336737},
		{"0123456789ab", 0, 275113226},
		{"0123456789ab0123456789ab", 0, 1225087135},
		{"0123456789abc", 7, 4199831001},
	}

	for _, tt := range tests {
		assert.Equal(t, fasthash.Digest32(tt.want), Hash32.HashWithSeed([]byte(tt.in), tt.seed), "%q/%d", tt.in, tt.seed)
	}
	assert.Equal(t, fasthash.Digest32(885767278), Hash32.HashString("hello"))
}

func TestSum2(t *testing.T) {
	// hashlittle2 driver values for the empty string.
	c, b := Sum2(nil, 0, 0)
	assert.Equal(t, uint32(0xdeadbeef), c)
	assert.Equal(t, uint32(0xdeadbeef), b)

	c, b = Sum2(nil, 0, 0xdeadbeef)
	assert.Equal(t, uint32(0xbd5b7dde), c)
	assert.Equal(t, uint32(0xdeadbeef), b)

	c, b = Sum2(nil, 0xdeadbeef, 0xdeadbeef)
	assert.Equal(t, uint32(0x9c093ccd), c)
	assert.Equal(t, uint32(0xbd5b7dde), b)

	c, b = Sum2([]byte("hello"), 0, 0)
	assert.Equal(t, uint32(885767278), c)
	assert.Equal(t, uint32(1543812985), b)
}

func TestStreaming(t *testing.T) {
	s := Hash32.New()
	_, _ = s.WriteString("hello")
	assert.Equal(t, fasthash.Digest32(885767278), s.Finalize())
	_, _ = s.WriteString("world")
	assert.Equal(t, fasthash.Digest32(1392336737), s.Finalize())
}
