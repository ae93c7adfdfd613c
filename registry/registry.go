// Package registry maps a closed set of algorithm identifiers to their
// implementations for selection at runtime.
package registry

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hupe1980/fasthash"
	"github.com/hupe1980/fasthash/city"
	"github.com/hupe1980/fasthash/crc"
	"github.com/hupe1980/fasthash/farm"
	"github.com/hupe1980/fasthash/fnv"
	"github.com/hupe1980/fasthash/highway"
	"github.com/hupe1980/fasthash/lookup3"
	"github.com/hupe1980/fasthash/metro"
	"github.com/hupe1980/fasthash/murmur2"
	"github.com/hupe1980/fasthash/murmur3"
	"github.com/hupe1980/fasthash/sea"
	"github.com/hupe1980/fasthash/sip"
	"github.com/hupe1980/fasthash/spooky"
	"github.com/hupe1980/fasthash/wy"
	"github.com/hupe1980/fasthash/xx"
	"github.com/hupe1980/fasthash/xxh3"
)

// ID identifies an algorithm. The zero value is invalid.
type ID uint8

const (
	Invalid ID = iota
	City32
	City64
	City128
	CityCH64
	Farm32
	Farm64
	Farm128
	FarmFingerprint32
	FarmFingerprint64
	FarmFingerprint128
	Metro64
	Metro128
	Murmur2x32
	Murmur2x64
	Murmur3x32
	Murmur3x64
	Murmur3x128
	Spooky32
	Spooky64
	Spooky128
	Sip64
	Sip128
	XX32
	XX64
	XXH3x64
	XXH3x128
	Wy64
	Sea64
	Highway64
	Highway128
	CRC32C
	CRC32
	FNV1a32
	FNV1a64
	Lookup3

	numIDs
)

// Default is the algorithm used when none is configured.
const Default = XXH3x64

// EnvAlgorithm names the environment variable that overrides Default.
const EnvAlgorithm = "FASTHASH_ALGORITHM"

var table = [numIDs]fasthash.Algorithm{
	City32:             city.Hash32,
	City64:             city.Hash64,
	City128:            city.Hash128,
	CityCH64:           city.CH64,
	Farm32:             farm.Hash32,
	Farm64:             farm.Hash64,
	Farm128:            farm.Hash128,
	FarmFingerprint32:  farm.Fingerprint32,
	FarmFingerprint64:  farm.Fingerprint64,
	FarmFingerprint128: farm.Fingerprint128,
	Metro64:            metro.Hash64,
	Metro128:           metro.Hash128,
	Murmur2x32:         murmur2.Hash32,
	Murmur2x64:         murmur2.Hash64,
	Murmur3x32:         murmur3.Hash32,
	Murmur3x64:         murmur3.Hash64,
	Murmur3x128:        murmur3.Hash128,
	Spooky32:           spooky.Hash32,
	Spooky64:           spooky.Hash64,
	Spooky128:          spooky.Hash128,
	Sip64:              sip.Hash64,
	Sip128:             sip.Hash128,
	XX32:               xx.Hash32,
	XX64:               xx.Hash64,
	XXH3x64:            xxh3.Hash64,
	XXH3x128:           xxh3.Hash128,
	Wy64:               wy.Hash64,
	Sea64:              sea.Hash64,
	Highway64:          highway.Hash64,
	Highway128:         highway.Hash128,
	CRC32C:             crc.CRC32C,
	CRC32:              crc.IEEE,
	FNV1a32:            fnv.Hash32,
	FNV1a64:            fnv.Hash64,
	Lookup3:            lookup3.Hash32,
}

var byName = func() map[string]ID {
	m := make(map[string]ID, numIDs)
	for id := ID(1); id < numIDs; id++ {
		m[table[id].Name()] = id
	}
	return m
}()

// Valid reports whether id names a registered algorithm.
func (id ID) Valid() bool { return id > Invalid && id < numIDs }

func (id ID) String() string {
	if !id.Valid() {
		return "invalid(" + strconv.Itoa(int(id)) + ")"
	}
	return table[id].Name()
}

// Algorithm returns the implementation of id, or nil if id is invalid.
func (id ID) Algorithm() fasthash.Algorithm {
	if !id.Valid() {
		return nil
	}
	return table[id]
}

// Parse resolves an algorithm name. Matching ignores case and treats '-' as '_'.
func Parse(name string) (ID, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	if id, ok := byName[key]; ok {
		return id, nil
	}
	return Invalid, &fasthash.UnknownAlgorithmError{Name: name}
}

// Lookup resolves name to its implementation.
func Lookup(name string) (fasthash.Algorithm, error) {
	id, err := Parse(name)
	if err != nil {
		return nil, err
	}
	return table[id], nil
}

// Selected returns the algorithm named by FASTHASH_ALGORITHM, or Default if
// the variable is unset or names no algorithm.
func Selected() ID {
	if override := os.Getenv(EnvAlgorithm); override != "" {
		if id, err := Parse(override); err == nil {
			return id
		}
	}
	return Default
}

// All returns every valid ID in declaration order.
func All() []ID {
	ids := make([]ID, 0, numIDs-1)
	for id := ID(1); id < numIDs; id++ {
		ids = append(ids, id)
	}
	return ids
}

// Names returns the names of all algorithms in declaration order.
func Names() []string {
	names := make([]string, 0, numIDs-1)
	for _, id := range All() {
		names = append(names, id.String())
	}
	return names
}

// ParseSeed parses comma-separated seed lanes, lane 0 first. Each lane is
// decimal or 0x-prefixed hex. An empty string yields no lanes.
func ParseSeed(s string) ([]uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	lanes := make([]uint64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 0, 64)
		if err != nil {
			return nil, fmt.Errorf("parse seed lane %q: %w", p, err)
		}
		lanes = append(lanes, v)
	}
	return lanes, nil
}
