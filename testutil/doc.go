// Package testutil provides reproducible inputs for hash tests.
//
// This package is intended for use in tests and benchmarks only.
//
// # Random Inputs
//
//	rng := testutil.NewRNG(seed)
//	data := rng.Bytes(4096)        // random payload
//	parts := rng.Split(data, 64)   // random chunking, parts cover data
//	sizes := testutil.EdgeSizes()  // lengths around block boundaries
package testutil
