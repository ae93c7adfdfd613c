// Package source provides the inputs a batch hash run reads from.
//
// Store is the interface for listing and opening named blobs. Implementations
// must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem, mmap-backed (Mappable)
//   - MemoryStore: in-memory, for tests and piped input
//   - s3.Store: Amazon S3 with range reads and parallel downloads
//   - minio.Store: MinIO and other S3-compatible services
//
// # Optional Capabilities
//
// Hashing code checks for these in order:
//
//	type Mappable interface { Bytes() ([]byte, error) }          // zero copy
//	type Downloadable interface { Download(ctx) ([]byte, error) } // parallel fetch
//
// and otherwise streams ReadRange(ctx, 0, Size()).
//
// # Compression
//
// Decompress wraps a reader according to the name's extension (.zst, .gz,
// .lz4), so archived inputs hash to the digest of their contents.
package source
