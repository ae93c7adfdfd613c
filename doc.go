// Package fasthash provides one interface over many non-cryptographic hash
// functions.
//
// Each algorithm lives in a family package (xx, xxh3, city, farm, murmur3,
// ...) as a value built with Define or DefineSeeded. Those values satisfy the
// typed contracts FastHash, SeededHash and StreamHasher for their digest and
// seed types, and the untyped Algorithm interface used for runtime selection.
//
// # Quick Start
//
// One-shot and streaming hashing:
//
//	d := xx.Hash64.Hash([]byte("hello"))            // fasthash.Digest64
//	d = xx.Hash64.HashWithSeed([]byte("hello"), 42)
//
//	s := xx.Hash64.New()
//	s.Write([]byte("hel"))
//	s.Write([]byte("lo"))
//	d = s.Finalize()                                // equals Hash("hello")
//
// States also implement hash.Hash, so they work with io.Copy and anything
// else that accepts a hash.Hash64.
//
// # Digests and Seeds
//
// Digests come in three widths. Digest128 holds two 64-bit lanes and reduces
// to its low lane wherever a 64-bit value is needed. Seeds are uint32,
// uint64, Seed128 or Seed256 depending on the algorithm; NoSeed marks
// algorithms without one.
//
// # Runtime Selection
//
// The registry package maps names to algorithms:
//
//	alg, _ := registry.Lookup("murmur3_128")
//	d, err := alg.SumWithSeed(data, []uint64{7})
//
// The dynamic entry points return *SeedWidthError when the lane count does
// not fit, *CapabilityError when an unseeded algorithm is given a seed, and
// *AlignmentError when an algorithm rejects misaligned input.
//
// # Keyed Hashers
//
// A Factory fixes a seed once and builds independent states from it.
// NewFactory draws keys from a process-wide source seeded from crypto/rand
// on first use:
//
//	f := fasthash.NewFactory(xxh3.Hash64)
//	h := f.Build()
//
// If the entropy read fails the source falls back to fixed keys and
// DegradedRandomness reports true.
//
// # Structured Hashing
//
// Bridge feeds typed values into a Hasher with a fixed encoding, and
// KeyHasher adapts an algorithm to the Hash/Equal shape of hash tables.
package fasthash
