package fasthash

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
)

// Width is the output size of an algorithm in bits.
type Width int

const (
	Width32  Width = 32
	Width64  Width = 64
	Width128 Width = 128
)

// Size returns the width in bytes.
func (w Width) Size() int { return int(w) / 8 }

func (w Width) String() string { return fmt.Sprintf("%d-bit", int(w)) }

// Digest is the common behaviour of all fixed-width hash outputs.
//
// Byte order is little-endian. A 128-bit digest is encoded as the low lane
// followed by the high lane, both little-endian.
type Digest interface {
	Width() Width
	// AppendBytes appends the canonical byte encoding to b.
	AppendBytes(b []byte) []byte
	// Uint64 reduces the digest to the single word a hash table consumes.
	Uint64() uint64
	String() string
}

// DigestType constrains generic code to the concrete digest types.
type DigestType interface {
	Digest32 | Digest64 | Digest128
	Digest
}

// Digest32 is a 32-bit hash output.
type Digest32 uint32

func (d Digest32) Width() Width { return Width32 }

func (d Digest32) AppendBytes(b []byte) []byte {
	return binary.LittleEndian.AppendUint32(b, uint32(d))
}

// Bytes returns the 4-byte little-endian encoding.
func (d Digest32) Bytes() []byte { return d.AppendBytes(make([]byte, 0, 4)) }

func (d Digest32) Uint32() uint32 { return uint32(d) }

// Uint64 zero-extends the digest.
func (d Digest32) Uint64() uint64 { return uint64(d) }

func (d Digest32) String() string { return fmt.Sprintf("%08x", uint32(d)) }

// Digest64 is a 64-bit hash output.
type Digest64 uint64

func (d Digest64) Width() Width { return Width64 }

func (d Digest64) AppendBytes(b []byte) []byte {
	return binary.LittleEndian.AppendUint64(b, uint64(d))
}

// Bytes returns the 8-byte little-endian encoding.
func (d Digest64) Bytes() []byte { return d.AppendBytes(make([]byte, 0, 8)) }

func (d Digest64) Uint64() uint64 { return uint64(d) }

func (d Digest64) String() string { return fmt.Sprintf("%016x", uint64(d)) }

// Digest128 is a 128-bit hash output made of two independent 64-bit lanes.
type Digest128 struct {
	Lo uint64
	Hi uint64
}

func (d Digest128) Width() Width { return Width128 }

func (d Digest128) AppendBytes(b []byte) []byte {
	b = binary.LittleEndian.AppendUint64(b, d.Lo)
	return binary.LittleEndian.AppendUint64(b, d.Hi)
}

// Bytes returns the 16-byte encoding: Lo then Hi, each little-endian.
func (d Digest128) Bytes() []byte { return d.AppendBytes(make([]byte, 0, 16)) }

// Lanes returns the low and high lanes.
func (d Digest128) Lanes() (lo, hi uint64) { return d.Lo, d.Hi }

// Uint64 returns the low lane. The reduction is the same for every
// 128-bit algorithm so table hashes stay stable across algorithm swaps.
func (d Digest128) Uint64() uint64 { return d.Lo }

// Compare orders digests as unsigned 128-bit integers.
func (d Digest128) Compare(o Digest128) int {
	switch {
	case d.Hi < o.Hi:
		return -1
	case d.Hi > o.Hi:
		return 1
	case d.Lo < o.Lo:
		return -1
	case d.Lo > o.Lo:
		return 1
	}
	return 0
}

func (d Digest128) Equal(o Digest128) bool { return d == o }

// String renders the digest as a 128-bit big-endian hex number.
func (d Digest128) String() string { return fmt.Sprintf("%016x%016x", d.Hi, d.Lo) }

// Digest128FromBytes decodes the canonical 16-byte encoding.
func Digest128FromBytes(b []byte) (Digest128, error) {
	if len(b) != 16 {
		return Digest128{}, fmt.Errorf("fasthash: digest128 needs 16 bytes, got %d", len(b))
	}
	return Digest128{
		Lo: binary.LittleEndian.Uint64(b[:8]),
		Hi: binary.LittleEndian.Uint64(b[8:]),
	}, nil
}

// ParseDigest parses the String form of a digest of width w.
func ParseDigest(w Width, s string) (Digest, error) {
	s = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "0x")
	if len(s) != w.Size()*2 {
		return nil, fmt.Errorf("fasthash: %s digest needs %d hex digits, got %d", w, w.Size()*2, len(s))
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("fasthash: parse digest: %w", err)
	}
	switch w {
	case Width32:
		return Digest32(binary.BigEndian.Uint32(raw)), nil
	case Width64:
		return Digest64(binary.BigEndian.Uint64(raw)), nil
	case Width128:
		return Digest128{Hi: binary.BigEndian.Uint64(raw[:8]), Lo: binary.BigEndian.Uint64(raw[8:])}, nil
	default:
		return nil, fmt.Errorf("fasthash: unsupported width %d", int(w))
	}
}
