// Package crc provides CRC-32 adapters.
//
// The seed is the initial CRC value, so HashWithSeed(b, Hash(a)) equals
// Hash(a||b). Streaming is native and uses hardware instructions where the
// standard library has them (SSE4.2, ARM CRC).
package crc

import (
	"hash/crc32"

	"github.com/hupe1980/fasthash"
)

// castagnoli is pre-computed once for the CRC32-Castagnoli polynomial.
var castagnoli = crc32.MakeTable(crc32.Castagnoli)

var (
	// CRC32C is CRC32-Castagnoli (iSCSI, RocksDB, Btrfs).
	CRC32C = define("crc32c", castagnoli)

	// IEEE is the CRC-32 used by zip, gzip and PNG.
	IEEE = define("crc32", crc32.IEEETable)
)

func define(name string, tab *crc32.Table) fasthash.SeededFunc[uint32, fasthash.Digest32] {
	return fasthash.DefineSeeded(fasthash.Descriptor[uint32, fasthash.Digest32]{
		Name: name,
		HashWithSeed: func(b []byte, seed uint32) fasthash.Digest32 {
			return fasthash.Digest32(crc32.Update(seed, tab, b))
		},
		NewWithSeed: func(seed uint32) fasthash.Primitive[fasthash.Digest32] {
			return &digest{crc: seed, tab: tab}
		},
	})
}

type digest struct {
	crc uint32
	tab *crc32.Table
}

func (d *digest) Write(p []byte) (int, error) {
	d.crc = crc32.Update(d.crc, d.tab, p)
	return len(p), nil
}

func (d *digest) Sum() fasthash.Digest32 { return fasthash.Digest32(d.crc) }
