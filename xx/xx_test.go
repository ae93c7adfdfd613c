package xx

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/fasthash"
)

func TestHash32(t *testing.T) {
	tests := []struct {
		in   string
		seed uint32
		want uint32
	}{
		{"", 0, 0x02cc5d05},
		{"hello", 0, 4211111929},
		{"hello", 123, 2147069998},
		{"helloworld", 0, 593682946},
		{"hello world", 0, 3468387874},
	}
	for _, tt := range tests {
		assert.Equal(t, fasthash.Digest32(tt.want), Hash32.HashWithSeed([]byte(tt.in), tt.seed), "%q/%d", tt.in, tt.seed)

		s := Hash32.NewWithSeed(tt.seed)
		_, _ = s.WriteString(tt.in)
		assert.Equal(t, fasthash.Digest32(tt.want), s.Finalize())
	}
	assert.Equal(t, fasthash.Digest32(4211111929), Hash32.Hash([]byte("hello")))
}

func TestHash64(t *testing.T) {
	tests := []struct {
		in   string
		seed uint64
		want uint64
	}{
		{"", 0, 0xef46db3751d8e999},
		{"hello", 0, 2794345569481354659},
		{"hello", 123, 2900467397628653179},
		{"helloworld", 0, 9228181307863624271},
		{"hello world", 0, 0x45ab6734b21e6968},
	}
	for _, tt := range tests {
		assert.Equal(t, fasthash.Digest64(tt.want), Hash64.HashWithSeed([]byte(tt.in), tt.seed), "%q/%d", tt.in, tt.seed)

		s := Hash64.NewWithSeed(tt.seed)
		_, _ = s.WriteString(tt.in)
		assert.Equal(t, fasthash.Digest64(tt.want), s.Finalize())
	}
}
