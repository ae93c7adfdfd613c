package conv

import (
	"fmt"
	"math"
)

// Uint64ToUint32 narrows v, failing if bits above bit 31 are set.
func Uint64ToUint32(v uint64) (uint32, error) {
	if v > math.MaxUint32 {
		return 0, fmt.Errorf("integer overflow: %#x does not fit in 32 bits", v)
	}
	return uint32(v), nil
}

// Int64ToInt narrows v to the platform int. Negative values are rejected
// since every caller uses the result as a length.
func Int64ToInt(v int64) (int, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: negative length %d", v)
	}
	if uint64(v) > uint64(math.MaxInt) {
		return 0, fmt.Errorf("integer overflow: %d exceeds int", v)
	}
	return int(v), nil
}
