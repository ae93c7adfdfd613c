// Command fasthash prints and checks non-cryptographic digests of files,
// standard input and objects in S3 or MinIO.
//
// Usage:
//
//	fasthash sum [flags] [path|s3://bucket/key|minio://bucket/key|-]...
//	fasthash verify [flags] [listfile|-]
//	fasthash list
//
// Directories and URIs ending in '/' are expanded to every object below
// them. The algorithm defaults to $FASTHASH_ALGORITHM, then xxh3_64.
//
// MinIO inputs read MINIO_ENDPOINT, MINIO_ACCESS_KEY, MINIO_SECRET_KEY and
// MINIO_SECURE. S3 inputs use the default AWS credential chain.
package main
