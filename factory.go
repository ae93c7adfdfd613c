package fasthash

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	"sync"
	"sync/atomic"
)

// Fallback keys used when the entropy source fails.
const (
	FallbackK0 uint64 = 0x736f6d6570736575
	FallbackK1 uint64 = 0x646f72616e646f6d
)

// seedSource hands out per-factory keys. It reads 16 bytes of entropy once
// per process and derives every later key pair from them and a counter.
type seedSource struct {
	r        io.Reader
	once     sync.Once
	k0, k1   uint64
	degraded atomic.Bool
	counter  atomic.Uint64
}

var keys = newSeedSource(rand.Reader)

func newSeedSource(r io.Reader) *seedSource { return &seedSource{r: r} }

func (s *seedSource) init() {
	var buf [16]byte
	if _, err := io.ReadFull(s.r, buf[:]); err != nil {
		s.k0, s.k1 = FallbackK0, FallbackK1
		s.degraded.Store(true)
		logger().Warn("entropy unavailable, hasher factories use fixed keys", "error", err)
		return
	}
	s.k0 = binary.LittleEndian.Uint64(buf[:8])
	s.k1 = binary.LittleEndian.Uint64(buf[8:])
}

// next returns a key pair distinct from every pair handed out before.
func (s *seedSource) next() (uint64, uint64) {
	s.once.Do(s.init)
	n := s.counter.Add(1)
	return splitmix64(s.k0 + n*0x9e3779b97f4a7c15), splitmix64(s.k1 ^ n)
}

func (s *seedSource) isDegraded() bool {
	s.once.Do(s.init)
	return s.degraded.Load()
}

// DegradedRandomness reports whether the process-wide seed source fell back
// to the fixed keys FallbackK0 and FallbackK1.
func DegradedRandomness() bool { return keys.isDegraded() }

// RandomKeys draws a fresh key pair from the process-wide seed source.
func RandomKeys() (k0, k1 uint64) { return keys.next() }

// Factory builds independent streaming states that share one seed.
//
// A Factory is immutable and safe for concurrent use.
type Factory[S Seed, D DigestType] struct {
	alg    SeededFunc[S, D]
	seed   S
	k0, k1 uint64
}

// NewFactory returns a factory keyed from the process-wide seed source.
// Every call yields a different seed.
func NewFactory[S Seed, D DigestType](alg SeededFunc[S, D]) *Factory[S, D] {
	k0, k1 := keys.next()
	return WithSeeds(alg, k0, k1)
}

// WithSeeds returns a factory with pinned keys for reproducible hashing.
func WithSeeds[S Seed, D DigestType](alg SeededFunc[S, D], k0, k1 uint64) *Factory[S, D] {
	return &Factory[S, D]{
		alg:  alg,
		seed: seedFromKeys[S](k0, k1),
		k0:   k0,
		k1:   k1,
	}
}

// Build returns a new streaming state.
func (f *Factory[S, D]) Build() *State[S, D] { return f.alg.NewWithSeed(f.seed) }

// BuildBridge returns a new bridge over a fresh state.
func (f *Factory[S, D]) BuildBridge() *Bridge { return NewBridge(f.Build()) }

// HashOne hashes b in one shot under the factory seed.
func (f *Factory[S, D]) HashOne(b []byte) D { return f.alg.HashWithSeed(b, f.seed) }

func (f *Factory[S, D]) Seed() S { return f.seed }

func (f *Factory[S, D]) Keys() (k0, k1 uint64) { return f.k0, f.k1 }

func (f *Factory[S, D]) Algorithm() SeededFunc[S, D] { return f.alg }

// RandomState is the dynamic counterpart of Factory for algorithms selected
// at runtime. Keys are mapped onto the algorithm seed the same way; an
// algorithm without a seed ignores them, which Seeded reports and which is
// logged once per algorithm.
type RandomState struct {
	alg    Algorithm
	k0, k1 uint64
}

// unkeyed records algorithms already reported as ignoring keys.
var unkeyed sync.Map

// NewRandomState keys alg from the process-wide seed source.
func NewRandomState(alg Algorithm) *RandomState {
	k0, k1 := keys.next()
	return RandomStateWithSeeds(alg, k0, k1)
}

func RandomStateWithSeeds(alg Algorithm, k0, k1 uint64) *RandomState {
	if alg.SeedLanes() == 0 {
		if _, seen := unkeyed.LoadOrStore(alg.Name(), struct{}{}); !seen {
			logger().Warn("algorithm takes no seed, hasher keys are ignored", "algorithm", alg.Name())
		}
	}
	return &RandomState{alg: alg, k0: k0, k1: k1}
}

func (r *RandomState) Build() Hasher { return r.alg.NewHasherWithKeys(r.k0, r.k1) }

func (r *RandomState) BuildBridge() *Bridge { return NewBridge(r.Build()) }

func (r *RandomState) Algorithm() Algorithm { return r.alg }

func (r *RandomState) Keys() (k0, k1 uint64) { return r.k0, r.k1 }

// Seeded reports whether the keys reach the algorithm. It is false for
// algorithms without a seed, whose hashers are the same for every key pair.
func (r *RandomState) Seeded() bool { return r.alg.SeedLanes() > 0 }
