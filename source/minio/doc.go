// Package minio provides a source.Store for MinIO and other S3-compatible
// object stores.
//
// # Usage
//
//	store, err := minio.New("localhost:9000", "access", "secret", false, "bucket", "")
//	blob, err := store.Open(ctx, "object.bin")
package minio
