package murmur2

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/fasthash"
)

func TestVectors(t *testing.T) {
	tests := []struct {
		in     string
		seed   uint64
		want32 uint32
		want64 uint64
	}{
		{"", 0, 0, 0},
		{"hello", 0, 3848350155, 2191231550387646743},
		{"hello", 123, 2385981934, 2597646618390559622},
		{"helloworld", 0, 2155944146, 2139823713852166039},
		{"Four score and seven years ago", 1, 1132941535, 11893649724140452015},
	}

	for _, tt := range tests {
		b := []byte(tt.in)
		assert.Equal(t, fasthash.Digest32(tt.want32), Hash32.HashWithSeed(b, uint32(tt.seed)), "%q", tt.in)
		assert.Equal(t, fasthash.Digest64(tt.want64), Hash64.HashWithSeed(b, tt.seed), "%q", tt.in)
	}
}

func TestStreaming(t *testing.T) {
	s := Hash64.New()
	_, _ = s.WriteString("hello")
	assert.Equal(t, fasthash.Digest64(2191231550387646743), s.Finalize())
	_, _ = s.WriteString("world")
	assert.Equal(t, fasthash.Digest64(2139823713852166039), s.Finalize())

	s32 := Hash32.NewWithSeed(123)
	_, _ = s32.WriteString("hel")
	_, _ = s32.WriteString("lo")
	assert.Equal(t, fasthash.Digest32(2385981934), s32.Finalize())
}
