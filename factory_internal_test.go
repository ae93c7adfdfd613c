package fasthash

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedSource_Entropy(t *testing.T) {
	entropy := []byte{1, 0, 0, 0, 0, 0, 0, 0, 2, 0, 0, 0, 0, 0, 0, 0}
	s := newSeedSource(bytes.NewReader(entropy))

	k0, k1 := s.next()
	assert.False(t, s.isDegraded())
	assert.Equal(t, splitmix64(1+0x9e3779b97f4a7c15), k0)
	assert.Equal(t, splitmix64(2^1), k1)

	n0, n1 := s.next()
	assert.NotEqual(t, k0, n0)
	assert.NotEqual(t, k1, n1)
}

func TestSeedSource_Degraded(t *testing.T) {
	var logs bytes.Buffer
	SetLogger(NewLogger(slog.NewTextHandler(&logs, nil)))
	t.Cleanup(func() { SetLogger(NewTextLogger(slog.LevelWarn)) })

	orig := keys
	keys = newSeedSource(iotest.ErrReader(errors.New("no entropy")))
	t.Cleanup(func() { keys = orig })

	assert.True(t, DegradedRandomness())
	assert.Contains(t, logs.String(), "entropy unavailable")
	assert.Contains(t, logs.String(), "no entropy")

	golden := uint64(0x9e3779b97f4a7c15)
	k0, k1 := RandomKeys()
	assert.Equal(t, splitmix64(FallbackK0+golden), k0)
	assert.Equal(t, splitmix64(FallbackK1^1), k1)

	// Still distinct per call.
	n0, _ := RandomKeys()
	assert.NotEqual(t, k0, n0)
}

func TestSeedSource_ShortRead(t *testing.T) {
	s := newSeedSource(bytes.NewReader([]byte{1, 2, 3}))
	s.next()
	assert.True(t, s.isDegraded())
}

func TestSeedSource_Concurrent(t *testing.T) {
	s := newSeedSource(bytes.NewReader(make([]byte, 16)))

	const n = 64
	out := make([][2]uint64, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			k0, k1 := s.next()
			out[i] = [2]uint64{k0, k1}
		}()
	}
	wg.Wait()

	seen := make(map[[2]uint64]bool, n)
	for _, k := range out {
		require.False(t, seen[k])
		seen[k] = true
	}
}

func TestSplitmix64(t *testing.T) {
	// First output of SplitMix64 seeded with zero.
	assert.Equal(t, uint64(0xe220a8397b1dcdaf), splitmix64(0))
}

func TestRandomState_UnkeyedLoggedOnce(t *testing.T) {
	var logs bytes.Buffer
	SetLogger(NewLogger(slog.NewTextHandler(&logs, nil)))
	t.Cleanup(func() { SetLogger(NewTextLogger(slog.LevelWarn)) })

	unseeded := Define(Descriptor[NoSeed, Digest64]{
		Name: "test_unkeyed64",
		Hash: func(b []byte) Digest64 { return Digest64(len(b)) },
	})
	seeded := DefineSeeded(Descriptor[uint64, Digest64]{
		Name:         "test_keyed64",
		HashWithSeed: func(b []byte, seed uint64) Digest64 { return Digest64(uint64(len(b)) ^ seed) },
	})

	r := RandomStateWithSeeds(unseeded, 1, 2)
	assert.False(t, r.Seeded())
	_ = RandomStateWithSeeds(unseeded, 3, 4)
	assert.Equal(t, 1, strings.Count(logs.String(), "hasher keys are ignored"))
	assert.Contains(t, logs.String(), "test_unkeyed64")

	k := RandomStateWithSeeds(seeded, 1, 2)
	assert.True(t, k.Seeded())
	assert.NotContains(t, logs.String(), "test_keyed64")
}
