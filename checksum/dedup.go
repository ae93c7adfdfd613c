package checksum

import (
	"sync"

	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/hupe1980/fasthash"
)

// Dedup records digests and reports repeats. Digests are compared by their
// 64-bit reduction, so two 128-bit digests that share a low lane count as
// duplicates. It is safe for concurrent use.
type Dedup struct {
	mu   sync.Mutex
	seen *roaring64.Bitmap
}

// NewDedup returns an empty set.
func NewDedup() *Dedup {
	return &Dedup{seen: roaring64.New()}
}

// Add records d and reports whether it was already present.
func (s *Dedup) Add(d fasthash.Digest) (duplicate bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.seen.CheckedAdd(d.Uint64())
}

// Contains reports whether d was recorded.
func (s *Dedup) Contains(d fasthash.Digest) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seen.Contains(d.Uint64())
}

// Len returns the number of distinct digests.
func (s *Dedup) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int(s.seen.GetCardinality())
}

// Reset forgets every digest.
func (s *Dedup) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seen.Clear()
}
