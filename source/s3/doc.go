// Package s3 provides an Amazon S3 implementation of source.Store.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket", s3.WithPrefix("datasets/"))
//	names, _ := store.List(ctx, "2024/")
//
// # Features
//
//   - Range reads for streaming
//   - Parallel ranged downloads (source.Downloadable) via the transfer manager
//   - Automatic pagination for listing
package s3
