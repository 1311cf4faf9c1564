// Package buf contains overflow-safe sizing arithmetic and in-place shift
// helpers for contiguous element buffers.
package buf

import "math"

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies two non-negative ints, returning ok = false when
// the result would overflow int or either operand is negative.
func MulOverflowSafe(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// NextCapacity computes the capacity a buffer of capacity old should grow to.
//
// The geometric step is 2*old+1, which makes progress even from zero. A target
// larger than the step wins. offset extra leading slots are added on top of
// either result. ok is false when the computation would overflow int.
//
//	NextCapacity(0, 0, 0)  == 1
//	NextCapacity(4, 0, 0)  == 9
//	NextCapacity(4, 0, 1)  == 10
//	NextCapacity(4, 20, 0) == 20
func NextCapacity(old, target, offset int) (int, bool) {
	doubled, ok := MulOverflowSafe(old, 2)
	if !ok {
		return 0, false
	}
	// doubled is even and at most MaxInt-1, so the +1 cannot overflow.
	step := doubled + 1
	return AddOverflowSafe(max(step, target), offset)
}
