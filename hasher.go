package fasthash

import (
	"hash"
	"io"
)

// FastHash is the one-shot contract: hash a complete byte slice.
type FastHash[D DigestType] interface {
	Name() string
	Width() Width
	Hash(b []byte) D
}

// SeededHash is implemented by algorithms that accept a seed natively.
// Algorithms without a native seed never implement it.
type SeededHash[S Seed, D DigestType] interface {
	FastHash[D]
	HashWithSeed(b []byte, seed S) D
}

// StreamHasher is the incremental contract. Feeding any chunking of the
// input yields the same digest as the one-shot hash of the concatenation.
type StreamHasher[D DigestType] interface {
	io.Writer
	io.StringWriter
	// Finalize returns the digest of everything written so far. It does not
	// consume the state.
	Finalize() D
	// Reset restores the state to how it was constructed.
	Reset()
}

// SeededStreamHasher can be re-seeded in place.
type SeededStreamHasher[S Seed, D DigestType] interface {
	StreamHasher[D]
	ResetWithSeed(seed S)
}

type (
	Hasher32  = StreamHasher[Digest32]
	Hasher64  = StreamHasher[Digest64]
	Hasher128 = StreamHasher[Digest128]
)

// Algorithm is the dynamic contract used for runtime selection by name.
// Seeds travel as 64-bit lanes; see SeedLanes.
type Algorithm interface {
	Name() string
	Width() Width
	// SeedLanes is the number of 64-bit lanes a seed occupies, zero for
	// algorithms without a seed.
	SeedLanes() int
	// Incremental reports whether unseeded streaming uses a native
	// incremental primitive rather than buffering the input.
	Incremental() bool
	// IncrementalSeeded is Incremental for states built with an explicit
	// seed. The two differ for algorithms whose seeded primitive is not
	// bit-identical to the seeded one-shot function.
	IncrementalSeeded() bool
	Sum(b []byte) (Digest, error)
	SumWithSeed(b []byte, seed []uint64) (Digest, error)
	NewHasher() Hasher
	NewHasherWithSeed(seed []uint64) (Hasher, error)
	// NewHasherWithKeys maps a (k0, k1) key pair onto the seed the same way
	// a Factory does.
	NewHasherWithKeys(k0, k1 uint64) Hasher
}

// Hasher is the dynamic streaming contract. It is a hash.Hash64 whose Sum
// appends the canonical little-endian digest encoding.
type Hasher interface {
	hash.Hash64
	io.StringWriter
	io.ReaderFrom
	Name() string
	Digest() Digest
}

// Primitive is a native incremental hash implementation wrapped by a State.
// Sum must not change the underlying state. A State never reuses a primitive
// across resets.
type Primitive[D DigestType] interface {
	io.Writer
	Sum() D
}

type prim32 struct{ hash.Hash32 }

func (p prim32) Sum() Digest32 { return Digest32(p.Sum32()) }

type prim64 struct{ hash.Hash64 }

func (p prim64) Sum() Digest64 { return Digest64(p.Sum64()) }

// Wrap32 adapts a standard library style hash.Hash32.
func Wrap32(h hash.Hash32) Primitive[Digest32] { return prim32{h} }

// Wrap64 adapts a standard library style hash.Hash64.
func Wrap64(h hash.Hash64) Primitive[Digest64] { return prim64{h} }
