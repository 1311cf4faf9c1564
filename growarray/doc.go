// Package growarray provides Array, a resizable array of int32 elements with
// explicit control over its growth policy.
//
// # Overview
//
// Array owns a contiguous buffer, a count of logically valid elements (the
// size) and the buffer length (the capacity). Elements can be added or
// removed at either end and inserted or removed at any position. Mid-array
// mutations shift the tail in place.
//
// # Growth Policy
//
// The buffer is reallocated only when a write would run past its end:
//
//	AddEnd, InsertAt (mid-array)   capacity = 2*capacity + 1
//	AddStart                       capacity = 2*capacity + 1 + 1 (slot 0 left free)
//	InsertAt (at or past the end)  capacity = max(2*capacity + 1, 2*(pos+1))
//
// The +1 term guarantees progress from a zero capacity. Capacity never
// shrinks. Reallocation copies every valid element into the new buffer and
// drops the old one, so no slice into the old storage survives a mutating call.
//
// # Out-of-Range Access
//
// Reads past the end do not fail. At and RemoveFromPosition return 0 for an
// index outside [0, Size()), and so do RemoveStart and RemoveEnd on an empty
// array. A returned 0 is therefore ambiguous between a stored zero and a
// miss; use Lookup when the difference matters:
//
//	if v, ok := a.Lookup(i); ok {
//	    // v is a real element
//	}
//
// InsertAt beyond the current end extends the size to pos+1. The slots
// between the old end and pos hold unspecified values.
//
// # Thread Safety
//
// Array is not safe for concurrent use. Callers must confine an Array to one
// goroutine or synchronize access externally.
package growarray
