// Package safe provides overflow checked integer narrowing.
package safe

import (
	"fmt"
	"math"
)

// Integer covers the integer kinds that show up at conversion boundaries.
type Integer interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64
}

// Uint32 converts v to uint32, failing when the value does not fit.
func Uint32[T Integer](v T) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of uint32 range", v)
	}
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("value %d out of uint32 range", v)
	}
	return uint32(v), nil
}

// Uint64 converts v to uint64, failing on negative values.
func Uint64[T Integer](v T) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of uint64 range", v)
	}
	return uint64(v), nil
}
