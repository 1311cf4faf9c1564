package growarray

import (
	"fmt"

	"github.com/joshuapare/growkit/internal/buf"
)

// Element is the value type stored in an Array.
type Element = int32

// Array is a growable array of Elements. The zero value is an empty array
// with zero capacity, ready to use.
type Array struct {
	// data is the backing buffer; len(data) is the capacity.
	data []Element

	// length is the number of valid elements at the front of data.
	length int

	// grows counts reallocations of data.
	grows int
}

// New returns an empty Array with room for capacity elements. A negative
// capacity is treated as zero.
func New(capacity int) *Array {
	return &Array{data: make([]Element, max(capacity, 0))}
}

// InsertAt places v at position pos.
//
// When pos is inside the array the elements at pos and after move one slot to
// the right. When pos is at or past the end the size becomes pos+1 and any
// slots between the old end and pos hold unspecified values. A negative pos
// panics.
func (a *Array) InsertAt(pos int, v Element) {
	if pos >= a.length {
		if pos >= len(a.data) {
			a.growFor(pos)
		}
		a.data[pos] = v
		a.length = pos + 1
		return
	}

	a.ensureRoom()
	buf.ShiftRight(a.data, pos, a.length)
	a.data[pos] = v
	a.length++
}

// AddEnd appends v. Amortized O(1).
func (a *Array) AddEnd(v Element) {
	a.ensureRoom()
	a.data[a.length] = v
	a.length++
}

// AddStart prepends v. Every existing element moves, so each call is O(n).
func (a *Array) AddStart(v Element) {
	if a.length >= len(a.data) {
		// Reallocation already places the old elements one slot over.
		a.grow(0, 1)
	} else {
		buf.ShiftRight(a.data, 0, a.length)
	}
	a.length++
	a.data[0] = v
}

// RemoveStart removes and returns the first element, or 0 if a is empty.
func (a *Array) RemoveStart() Element {
	if a.length == 0 {
		return 0
	}
	v := a.data[0]
	buf.ShiftLeft(a.data, 0, a.length)
	a.length--
	return v
}

// RemoveEnd removes and returns the last element, or 0 if a is empty.
func (a *Array) RemoveEnd() Element {
	if a.length == 0 {
		return 0
	}
	a.length--
	return a.data[a.length]
}

// RemoveFromPosition removes and returns the element at pos. If pos is out of
// range it returns 0 and leaves the array unchanged.
func (a *Array) RemoveFromPosition(pos int) Element {
	if !a.inRange(pos) {
		return 0
	}
	v := a.data[pos]
	buf.ShiftLeft(a.data, pos, a.length)
	a.length--
	return v
}

// Size returns the number of elements.
func (a *Array) Size() int { return a.length }

// Capacity returns the number of allocated slots.
func (a *Array) Capacity() int { return len(a.data) }

// Grows returns how many times the backing buffer has been reallocated.
func (a *Array) Grows() int { return a.grows }

// At returns the element at index i, or 0 if i is out of range.
func (a *Array) At(i int) Element {
	if !a.inRange(i) {
		return 0
	}
	return a.data[i]
}

// Lookup returns the element at index i and whether i was in range.
func (a *Array) Lookup(i int) (Element, bool) {
	if !a.inRange(i) {
		return 0, false
	}
	return a.data[i], true
}

// Values returns a copy of the elements in order.
func (a *Array) Values() []Element {
	out := make([]Element, a.length)
	copy(out, a.data[:a.length])
	return out
}

// Check verifies the size/capacity invariant.
func (a *Array) Check() error {
	if a.length < 0 || a.length > len(a.data) {
		return fmt.Errorf("%w: size=%d capacity=%d", ErrSizeExceedsCapacity, a.length, len(a.data))
	}
	return nil
}

func (a *Array) inRange(i int) bool {
	return uint(i) < uint(a.length)
}
