// Package mmap maps files read-only so they can be hashed without copying
// their contents through kernel buffers.
//
// # Usage
//
//	m, err := mmap.Open("data.bin")
//	if err != nil { ... }
//	defer m.Close()
//
//	_ = m.Advise(mmap.AccessSequential)
//	sum := xxh3.Hash64.Hash(m.Bytes())
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with madvise(2) hints
//   - Windows: CreateFileMapping/MapViewOfFile (Advise is a no-op)
//
// Close is idempotent. Slices returned by Bytes and Window are invalid after
// Close returns.
package mmap
