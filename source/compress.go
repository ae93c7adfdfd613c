package source

import (
	"bytes"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Codec is a compression format a blob may be stored in.
type Codec int

const (
	CodecNone Codec = iota
	CodecZstd
	CodecGzip
	CodecLZ4
)

var (
	magicZstd = []byte{0x28, 0xb5, 0x2f, 0xfd}
	magicGzip = []byte{0x1f, 0x8b}
	magicLZ4  = []byte{0x04, 0x22, 0x4d, 0x18}
)

func (c Codec) String() string {
	switch c {
	case CodecNone:
		return "none"
	case CodecZstd:
		return "zstd"
	case CodecGzip:
		return "gzip"
	case CodecLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("codec(%d)", int(c))
	}
}

// ParseCodec parses a codec name as printed by String.
func ParseCodec(s string) (Codec, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return CodecNone, nil
	case "zstd", "zst":
		return CodecZstd, nil
	case "gzip", "gz":
		return CodecGzip, nil
	case "lz4":
		return CodecLZ4, nil
	}
	return CodecNone, fmt.Errorf("unknown codec %q", s)
}

// CodecFromName picks a codec from the file extension.
func CodecFromName(name string) Codec {
	switch strings.ToLower(path.Ext(name)) {
	case ".zst", ".zstd":
		return CodecZstd
	case ".gz", ".gzip":
		return CodecGzip
	case ".lz4":
		return CodecLZ4
	}
	return CodecNone
}

// Sniff picks a codec from the leading bytes of a blob.
func Sniff(prefix []byte) Codec {
	switch {
	case bytes.HasPrefix(prefix, magicZstd):
		return CodecZstd
	case bytes.HasPrefix(prefix, magicGzip):
		return CodecGzip
	case bytes.HasPrefix(prefix, magicLZ4):
		return CodecLZ4
	}
	return CodecNone
}

// Decompress wraps r so that reads return decompressed bytes. Closing the
// result releases decoder resources but does not close r.
func Decompress(c Codec, r io.Reader) (io.ReadCloser, error) {
	switch c {
	case CodecNone:
		return io.NopCloser(r), nil
	case CodecZstd:
		d, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}
		return d.IOReadCloser(), nil
	case CodecGzip:
		z, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		return z, nil
	case CodecLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	}
	return nil, fmt.Errorf("unsupported codec %s", c)
}
