package fasthash

import (
	"errors"
	"io"
)

const readChunk = 32 * 1024

// State is the incremental hashing state of one algorithm.
//
// Algorithms with a native incremental primitive feed it directly; the rest
// buffer the input and hash it once when a digest is requested. Finalize does
// not consume the state: writing after Finalize continues the same input, so
// Write(a), Finalize, Write(b), Finalize yields the digest of a||b.
//
// A State is not safe for concurrent use.
type State[S Seed, D DigestType] struct {
	alg    *algorithm[S, D]
	seed   S
	seeded bool
	prim   Primitive[D]
	buf    []byte
	n      uint64
}

// Write never returns an error.
func (s *State[S, D]) Write(p []byte) (int, error) {
	s.n += uint64(len(p))
	if s.prim != nil {
		return s.prim.Write(p)
	}
	s.buf = append(s.buf, p...)
	return len(p), nil
}

func (s *State[S, D]) WriteString(str string) (int, error) {
	s.n += uint64(len(str))
	if s.prim != nil {
		return io.WriteString(s.prim, str)
	}
	s.buf = append(s.buf, str...)
	return len(str), nil
}

// ReadFrom feeds r into the state until EOF.
func (s *State[S, D]) ReadFrom(r io.Reader) (int64, error) {
	chunk := make([]byte, readChunk)
	var total int64
	for {
		n, err := r.Read(chunk)
		if n > 0 {
			_, _ = s.Write(chunk[:n])
			total += int64(n)
		}
		if errors.Is(err, io.EOF) {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

// Finalize returns the digest of all input written since construction or the
// last reset.
func (s *State[S, D]) Finalize() D {
	if s.prim != nil {
		return s.prim.Sum()
	}
	if s.seeded {
		return s.alg.hashSeeded(s.buf, s.seed)
	}
	return s.alg.Hash(s.buf)
}

// Digest is Finalize behind the Digest interface.
func (s *State[S, D]) Digest() Digest { return s.Finalize() }

// Reset discards written input and restores the construction seed.
func (s *State[S, D]) Reset() {
	s.n = 0
	s.buf = s.buf[:0]
	s.prim = s.alg.primitive(s.seed, s.seeded)
}

// ResetWithSeed discards written input and installs seed.
func (s *State[S, D]) ResetWithSeed(seed S) {
	s.n = 0
	s.buf = s.buf[:0]
	s.seed, s.seeded = seed, true
	s.prim = s.alg.primitive(seed, true)
}

// Seed returns the active seed.
func (s *State[S, D]) Seed() S { return s.seed }

// Len returns the number of bytes written since the last reset.
func (s *State[S, D]) Len() uint64 { return s.n }

func (s *State[S, D]) Name() string { return s.alg.desc.Name }

// Sum appends the little-endian digest encoding to b.
func (s *State[S, D]) Sum(b []byte) []byte { return s.Finalize().AppendBytes(b) }

// Sum64 returns the digest reduced to 64 bits (see Digest.Uint64).
func (s *State[S, D]) Sum64() uint64 { return s.Finalize().Uint64() }

func (s *State[S, D]) Size() int { return s.alg.Width().Size() }

func (s *State[S, D]) BlockSize() int {
	if s.alg.desc.BlockSize > 0 {
		return s.alg.desc.BlockSize
	}
	return 1
}
