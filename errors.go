package fasthash

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSeedWidth is returned when a runtime seed does not match the
	// seed width the algorithm declares.
	ErrInvalidSeedWidth = errors.New("invalid seed width")

	// ErrInvalidInputAlignment is returned by algorithms that require aligned
	// input and were configured to reject misaligned buffers.
	ErrInvalidInputAlignment = errors.New("invalid input alignment")

	// ErrUnsupportedCapability is returned when a capability is requested
	// through the dynamic path that the algorithm does not provide.
	ErrUnsupportedCapability = errors.New("unsupported capability")

	// ErrUnknownAlgorithm is returned when an algorithm name does not resolve.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)

// SeedWidthError reports a seed that does not fit the algorithm.
//
// The sentinel ErrInvalidSeedWidth can be matched via errors.Is.
type SeedWidthError struct {
	Algorithm string
	Expected  int // lanes
	Actual    int // lanes
	cause     error
}

func (e *SeedWidthError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Algorithm, ErrInvalidSeedWidth, e.cause)
	}
	return fmt.Sprintf("%s: %s: expected %d lanes, got %d", e.Algorithm, ErrInvalidSeedWidth, e.Expected, e.Actual)
}

func (e *SeedWidthError) Unwrap() []error {
	if e.cause == nil {
		return []error{ErrInvalidSeedWidth}
	}
	return []error{ErrInvalidSeedWidth, e.cause}
}

// AlignmentError reports a buffer whose address violates the required alignment.
type AlignmentError struct {
	Algorithm string
	Alignment int
	Offset    int
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("%s: %s: input must be %d-byte aligned (offset %d)", e.Algorithm, ErrInvalidInputAlignment, e.Alignment, e.Offset)
}

func (e *AlignmentError) Unwrap() error { return ErrInvalidInputAlignment }

// CapabilityError names the missing capability.
type CapabilityError struct {
	Algorithm  string
	Capability string
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Algorithm, ErrUnsupportedCapability, e.Capability)
}

func (e *CapabilityError) Unwrap() error { return ErrUnsupportedCapability }

// UnknownAlgorithmError carries the name that failed to resolve.
type UnknownAlgorithmError struct {
	Name string
}

func (e *UnknownAlgorithmError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownAlgorithm, e.Name)
}

func (e *UnknownAlgorithmError) Unwrap() error { return ErrUnknownAlgorithm }
