package fasthash

import (
	"github.com/hupe1980/fasthash/internal/conv"
)

// NoSeed is the seed type of algorithms that take no seed.
type NoSeed struct{}

// Seed128 is a 128-bit seed, used by keyed algorithms such as SipHash.
type Seed128 struct {
	Lo uint64
	Hi uint64
}

// Seed256 is a 256-bit seed (HighwayHash keys). Lane 0 is the least significant.
type Seed256 [4]uint64

// Seed enumerates the seed types algorithms may declare.
type Seed interface {
	NoSeed | uint32 | uint64 | Seed128 | Seed256
}

// SeedLanes returns how many 64-bit lanes the seed type S occupies on the
// dynamic path. NoSeed has zero lanes.
func SeedLanes[S Seed]() int {
	var s S
	switch any(s).(type) {
	case uint32, uint64:
		return 1
	case Seed128:
		return 2
	case Seed256:
		return 4
	}
	return 0
}

func seedToLanes[S Seed](s S) []uint64 {
	switch v := any(s).(type) {
	case uint32:
		return []uint64{uint64(v)}
	case uint64:
		return []uint64{v}
	case Seed128:
		return []uint64{v.Lo, v.Hi}
	case Seed256:
		return []uint64{v[0], v[1], v[2], v[3]}
	}
	return nil
}

// seedFromLanes decodes a dynamic seed. The lane count must match exactly and
// a 32-bit seed must not carry bits above bit 31.
func seedFromLanes[S Seed](alg string, lanes []uint64) (S, error) {
	var s S
	want := SeedLanes[S]()
	if len(lanes) != want {
		return s, &SeedWidthError{Algorithm: alg, Expected: want, Actual: len(lanes)}
	}
	switch p := any(&s).(type) {
	case *uint32:
		v, err := conv.Uint64ToUint32(lanes[0])
		if err != nil {
			return s, &SeedWidthError{Algorithm: alg, Expected: want, Actual: len(lanes), cause: err}
		}
		*p = v
	case *uint64:
		*p = lanes[0]
	case *Seed128:
		*p = Seed128{Lo: lanes[0], Hi: lanes[1]}
	case *Seed256:
		*p = Seed256{lanes[0], lanes[1], lanes[2], lanes[3]}
	}
	return s, nil
}

// seedFromKeys maps a (k0, k1) key pair onto S.
//
//	uint32  <- low 32 bits of k0
//	uint64  <- k0
//	Seed128 <- {k0, k1}
//	Seed256 <- {k0, k1, mix(k0), mix(k1)}
func seedFromKeys[S Seed](k0, k1 uint64) S {
	var s S
	switch p := any(&s).(type) {
	case *uint32:
		*p = uint32(k0)
	case *uint64:
		*p = k0
	case *Seed128:
		*p = Seed128{Lo: k0, Hi: k1}
	case *Seed256:
		*p = Seed256{k0, k1, splitmix64(k0), splitmix64(k1)}
	}
	return s
}

// splitmix64 is the finalizer of the SplitMix64 generator.
func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
