package fasthash

import (
	"unsafe"
)

// Descriptor describes an algorithm over an external primitive.
//
// Hash is required for Define. HashWithSeed is required for DefineSeeded;
// when Hash is nil there, unseeded hashing uses DefaultSeed. New and
// NewWithSeed are optional native streaming constructors. Without them the
// State buffers input and hashes it once at Finalize.
type Descriptor[S Seed, D DigestType] struct {
	Name         string
	DefaultSeed  S
	Hash         func(b []byte) D
	HashWithSeed func(b []byte, seed S) D
	New          func() Primitive[D]
	NewWithSeed  func(seed S) Primitive[D]

	// BlockSize reported through hash.Hash. Defaults to 1.
	BlockSize int

	// Alignment is the required input alignment in bytes. Misaligned input is
	// copied into an aligned scratch buffer unless RejectMisaligned is set, in
	// which case the dynamic entry points return ErrInvalidInputAlignment.
	Alignment        int
	RejectMisaligned bool
}

type algorithm[S Seed, D DigestType] struct {
	desc Descriptor[S, D]
}

// Func is an algorithm without a native seed.
type Func[D DigestType] struct {
	*algorithm[NoSeed, D]
}

// SeededFunc is an algorithm with a native seed of type S.
type SeededFunc[S Seed, D DigestType] struct {
	*algorithm[S, D]
}

// Define builds an unseeded algorithm. It panics if d.Hash is nil.
func Define[D DigestType](d Descriptor[NoSeed, D]) Func[D] {
	if d.Hash == nil {
		panic("fasthash: Define " + d.Name + ": Hash is required")
	}
	h := d.Hash
	d.HashWithSeed = func(b []byte, _ NoSeed) D { return h(b) }
	if d.New != nil {
		n := d.New
		d.NewWithSeed = func(NoSeed) Primitive[D] { return n() }
	}
	return Func[D]{&algorithm[NoSeed, D]{desc: d}}
}

// DefineSeeded builds a seeded algorithm. It panics if d.HashWithSeed is nil.
func DefineSeeded[S Seed, D DigestType](d Descriptor[S, D]) SeededFunc[S, D] {
	if d.HashWithSeed == nil {
		panic("fasthash: DefineSeeded " + d.Name + ": HashWithSeed is required")
	}
	if d.Hash == nil {
		hs, seed := d.HashWithSeed, d.DefaultSeed
		d.Hash = func(b []byte) D { return hs(b, seed) }
		if d.New == nil && d.NewWithSeed != nil {
			ns := d.NewWithSeed
			d.New = func() Primitive[D] { return ns(seed) }
		}
	}
	return SeededFunc[S, D]{&algorithm[S, D]{desc: d}}
}

func (a *algorithm[S, D]) Name() string { return a.desc.Name }

func (a *algorithm[S, D]) Width() Width {
	var d D
	return d.Width()
}

func (a *algorithm[S, D]) SeedLanes() int { return SeedLanes[S]() }

func (a *algorithm[S, D]) Incremental() bool { return a.desc.New != nil }

func (a *algorithm[S, D]) IncrementalSeeded() bool {
	return a.SeedLanes() > 0 && a.desc.NewWithSeed != nil
}

// Hash returns the unseeded digest of b.
func (a *algorithm[S, D]) Hash(b []byte) D {
	return a.desc.Hash(a.realign(b))
}

// HashString hashes the bytes of s without copying.
func (a *algorithm[S, D]) HashString(s string) D {
	return a.Hash(unsafe.Slice(unsafe.StringData(s), len(s)))
}

// New returns a streaming state equivalent to Hash.
func (a *algorithm[S, D]) New() *State[S, D] {
	return &State[S, D]{alg: a, seed: a.desc.DefaultSeed, prim: a.primitive(a.desc.DefaultSeed, false)}
}

func (a *algorithm[S, D]) hashSeeded(b []byte, seed S) D {
	return a.desc.HashWithSeed(a.realign(b), seed)
}

func (a *algorithm[S, D]) newSeeded(seed S) *State[S, D] {
	return &State[S, D]{alg: a, seed: seed, seeded: true, prim: a.primitive(seed, true)}
}

// primitive returns a fresh native primitive, or nil when the state must buffer.
func (a *algorithm[S, D]) primitive(seed S, seeded bool) Primitive[D] {
	switch {
	case seeded && a.desc.NewWithSeed != nil:
		return a.desc.NewWithSeed(seed)
	case !seeded && a.desc.New != nil:
		return a.desc.New()
	}
	return nil
}

// Check reports whether b satisfies a strict alignment requirement.
func (a *algorithm[S, D]) Check(b []byte) error {
	if !a.desc.RejectMisaligned {
		return nil
	}
	if off := misalignment(b, a.desc.Alignment); off != 0 {
		return &AlignmentError{Algorithm: a.desc.Name, Alignment: a.desc.Alignment, Offset: off}
	}
	return nil
}

func (a *algorithm[S, D]) Sum(b []byte) (Digest, error) {
	if err := a.Check(b); err != nil {
		return nil, err
	}
	return a.Hash(b), nil
}

func (a *algorithm[S, D]) SumWithSeed(b []byte, lanes []uint64) (Digest, error) {
	if SeedLanes[S]() == 0 {
		if len(lanes) == 0 {
			return a.Sum(b)
		}
		return nil, &CapabilityError{Algorithm: a.desc.Name, Capability: "seeded hashing"}
	}
	seed, err := seedFromLanes[S](a.desc.Name, lanes)
	if err != nil {
		return nil, err
	}
	if err := a.Check(b); err != nil {
		return nil, err
	}
	return a.hashSeeded(b, seed), nil
}

func (a *algorithm[S, D]) NewHasher() Hasher { return a.New() }

func (a *algorithm[S, D]) NewHasherWithSeed(lanes []uint64) (Hasher, error) {
	if SeedLanes[S]() == 0 {
		if len(lanes) == 0 {
			return a.New(), nil
		}
		return nil, &CapabilityError{Algorithm: a.desc.Name, Capability: "seeded streaming"}
	}
	seed, err := seedFromLanes[S](a.desc.Name, lanes)
	if err != nil {
		return nil, err
	}
	return a.newSeeded(seed), nil
}

func (a *algorithm[S, D]) NewHasherWithKeys(k0, k1 uint64) Hasher {
	if SeedLanes[S]() == 0 {
		return a.New()
	}
	return a.newSeeded(seedFromKeys[S](k0, k1))
}

func (a *algorithm[S, D]) realign(b []byte) []byte {
	if misalignment(b, a.desc.Alignment) == 0 {
		return b
	}
	return alignedCopy(b, a.desc.Alignment)
}

// DefaultSeed returns the seed used when none is given.
func (f SeededFunc[S, D]) DefaultSeed() S { return f.desc.DefaultSeed }

// HashWithSeed returns the digest of b under seed.
func (f SeededFunc[S, D]) HashWithSeed(b []byte, seed S) D {
	return f.hashSeeded(b, seed)
}

// NewWithSeed returns a streaming state equivalent to HashWithSeed.
func (f SeededFunc[S, D]) NewWithSeed(seed S) *State[S, D] {
	return f.newSeeded(seed)
}

func misalignment(b []byte, align int) int {
	if align <= 1 || len(b) == 0 {
		return 0
	}
	return int(uintptr(unsafe.Pointer(unsafe.SliceData(b))) % uintptr(align))
}

func alignedCopy(b []byte, align int) []byte {
	buf := make([]byte, len(b)+align)
	off := 0
	if r := misalignment(buf, align); r != 0 {
		off = align - r
	}
	out := buf[off : off+len(b)]
	copy(out, b)
	return out
}
