package growarray

import (
	"fmt"

	"github.com/joshuapare/growkit/internal/buf"
)

// grow reallocates the backing buffer.
//
// target is an explicit capacity requirement (0 for a plain geometric step)
// and offset is the number of empty slots to leave in front of the preserved
// elements. The first a.length elements are copied to [offset, offset+length).
func (a *Array) grow(target, offset int) {
	newCap, ok := buf.NextCapacity(len(a.data), target, offset)
	if !ok {
		panic(fmt.Sprintf("growarray: capacity overflow (capacity=%d, target=%d, offset=%d)",
			len(a.data), target, offset))
	}

	data := make([]Element, newCap)
	copy(data[offset:], a.data[:a.length])
	a.data = data
	a.grows++
}

// growFor grows the buffer so that index pos is addressable, asking for twice
// the required length as headroom.
func (a *Array) growFor(pos int) {
	target, ok := buf.MulOverflowSafe(pos+1, 2)
	if !ok {
		panic(fmt.Sprintf("growarray: capacity overflow (position=%d)", pos))
	}
	a.grow(target, 0)
}

// ensureRoom grows the buffer geometrically when it is full.
func (a *Array) ensureRoom() {
	if a.length >= len(a.data) {
		a.grow(0, 0)
	}
}
