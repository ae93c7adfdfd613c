package fasthash

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// Key lists the key types KeyHasher can encode.
type Key interface {
	string | bool |
		int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 | uintptr |
		float32 | float64
}

// KeyHasher adapts an algorithm to the Hash/Equal contract of hash tables.
//
// Strings are hashed as their raw bytes. Integers, booleans and floats are
// widened to 64 bits and hashed as 8 little-endian bytes, so int32(7) and
// int64(7) collide on purpose. Float zero is normalised so that -0 and +0
// hash alike.
type KeyHasher[K Key, D DigestType] struct {
	hash func([]byte) D
}

// NewKeyHasher hashes keys with the unseeded one-shot function of alg.
func NewKeyHasher[K Key, D DigestType](alg FastHash[D]) KeyHasher[K, D] {
	return KeyHasher[K, D]{hash: alg.Hash}
}

// NewSeededKeyHasher hashes keys under seed.
func NewSeededKeyHasher[K Key, S Seed, D DigestType](alg SeededHash[S, D], seed S) KeyHasher[K, D] {
	return KeyHasher[K, D]{hash: func(b []byte) D { return alg.HashWithSeed(b, seed) }}
}

// FactoryKeyHasher hashes keys under the seed of f.
func FactoryKeyHasher[K Key, S Seed, D DigestType](f *Factory[S, D]) KeyHasher[K, D] {
	return KeyHasher[K, D]{hash: f.HashOne}
}

// Hash returns the reduced digest of key.
func (k KeyHasher[K, D]) Hash(key K) uint64 {
	var buf [8]byte
	switch v := any(key).(type) {
	case string:
		return k.hash(unsafe.Slice(unsafe.StringData(v), len(v))).Uint64()
	case bool:
		if v {
			buf[0] = 1
		}
	case int:
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
	case int8:
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
	case int16:
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
	case int32:
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
	case int64:
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
	case uint:
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
	case uint8:
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
	case uint16:
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
	case uint32:
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
	case uint64:
		binary.LittleEndian.PutUint64(buf[:], v)
	case uintptr:
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
	case float32:
		binary.LittleEndian.PutUint64(buf[:], floatBits(float64(v)))
	case float64:
		binary.LittleEndian.PutUint64(buf[:], floatBits(v))
	}
	return k.hash(buf[:]).Uint64()
}

// Equal reports key equality with ==.
func (k KeyHasher[K, D]) Equal(a, b K) bool { return a == b }

// Func returns Hash as a plain function value.
func (k KeyHasher[K, D]) Func() func(K) uint64 { return k.Hash }

func floatBits(f float64) uint64 {
	if f == 0 {
		return 0
	}
	return math.Float64bits(f)
}
