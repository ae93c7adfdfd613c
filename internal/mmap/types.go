package mmap

import "errors"

// AccessPattern is a hint to the kernel about how mapped pages are read.
type AccessPattern int

const (
	AccessDefault AccessPattern = iota
	// AccessSequential enables aggressive read-ahead; the right hint for hashing.
	AccessSequential
	AccessRandom
	AccessWillNeed
	// AccessDontNeed lets the kernel drop pages once a file is hashed.
	AccessDontNeed
)

var (
	// ErrClosed is returned when a closed mapping is accessed.
	ErrClosed = errors.New("mmap: mapping is closed")
	// ErrInvalidSize is returned for files whose size cannot be mapped.
	ErrInvalidSize = errors.New("mmap: invalid file size")
	// ErrOutOfBounds is returned when a window exceeds the mapping.
	ErrOutOfBounds = errors.New("mmap: out of bounds")
	// ErrInvalidOffset is returned for negative offsets.
	ErrInvalidOffset = errors.New("mmap: invalid offset")
)
