// Package checksum hashes many named sources concurrently with one
// algorithm.
//
// Each source gets its own streaming state. Sources whose bytes are
// addressable (local files, in-memory blobs) are hashed in place, remote
// objects are downloaded under a memory reservation, and everything else is
// streamed. Compressed inputs can be decoded before hashing.
//
// # Usage
//
//	eng, err := checksum.New(
//	    checksum.WithAlgorithm(xxh3.Hash64),
//	    checksum.WithConcurrency(8),
//	    checksum.WithDedup(),
//	)
//	results, err := eng.Run(ctx, source.NewLocalStore("."), names)
//	for _, r := range results {
//	    fmt.Println(r.Digest, r.Name)
//	}
package checksum
