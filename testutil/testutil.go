package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random 64-bit value.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Bytes returns n pseudo-random bytes.
func (r *RNG) Bytes(n int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	b := make([]byte, n)
	_, _ = r.rand.Read(b)
	return b
}

// Split cuts data into consecutive parts of 1 to maxPart bytes. The parts
// alias data and concatenate back to it. Empty data yields no parts.
func (r *RNG) Split(data []byte, maxPart int) [][]byte {
	if maxPart < 1 {
		maxPart = 1
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	var parts [][]byte
	for len(data) > 0 {
		n := 1 + r.rand.Intn(maxPart)
		if n > len(data) {
			n = len(data)
		}
		parts = append(parts, data[:n])
		data = data[n:]
	}
	return parts
}

// EdgeSizes returns input lengths that straddle the block and stripe
// boundaries common to non-cryptographic hashes (4, 8, 16, 32, 64, 128, 240
// and 256 bytes).
func EdgeSizes() []int {
	sizes := []int{0, 1, 2, 3}
	for _, b := range []int{4, 8, 16, 32, 64, 128, 240, 256} {
		sizes = append(sizes, b-1, b, b+1)
	}
	return append(sizes, 1000, 4096+7)
}
