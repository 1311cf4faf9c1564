package growarray

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// Test_Grow_GeometricFromZero verifies AddEnd grows as 0 -> 1 -> 3 -> 7 -> 15.
func Test_Grow_GeometricFromZero(t *testing.T) {
	a := New(0)

	var caps []int
	prev := a.Capacity()
	for v := range Element(15) {
		a.AddEnd(v)
		if c := a.Capacity(); c != prev {
			caps = append(caps, c)
			prev = c
		}
	}

	require.Equal(t, []int{1, 3, 7, 15}, caps)
	require.Equal(t, 4, a.Grows())
}

// Test_Grow_NoGrowWhenFits verifies no reallocation while size < capacity.
func Test_Grow_NoGrowWhenFits(t *testing.T) {
	a := New(10)
	for v := range Element(10) {
		a.AddEnd(v)
	}
	require.Equal(t, 10, a.Capacity())
	require.Equal(t, 0, a.Grows())

	a.AddEnd(10)
	require.Equal(t, 21, a.Capacity())
	require.Equal(t, 1, a.Grows())
}

// Test_Grow_AddStartLeavesLeadingSlot verifies a prepend that reallocates
// uses the offset-padded step and keeps the old elements in order.
func Test_Grow_AddStartLeavesLeadingSlot(t *testing.T) {
	a := New(3)
	a.AddEnd(1)
	a.AddEnd(2)
	a.AddEnd(3)

	a.AddStart(0)
	require.Equal(t, 2*3+1+1, a.Capacity())
	require.Equal(t, 1, a.Grows())
	require.Equal(t, []Element{0, 1, 2, 3}, a.Values())

	// The next prepends fit and shift in place.
	a.AddStart(-1)
	require.Equal(t, 1, a.Grows())
	require.Equal(t, []Element{-1, 0, 1, 2, 3}, a.Values())
}

// Test_Grow_AddStartFromZero covers the offset step from an empty buffer.
func Test_Grow_AddStartFromZero(t *testing.T) {
	a := New(0)
	a.AddStart(5)
	require.Equal(t, 2, a.Capacity())
	require.Equal(t, []Element{5}, a.Values())
}

// Test_Grow_InsertAtTargetBeatsStep verifies an insert far past the end
// sizes the buffer to twice the required length.
func Test_Grow_InsertAtTargetBeatsStep(t *testing.T) {
	a := New(2)
	a.AddEnd(1)

	a.InsertAt(20, 7)
	require.Equal(t, 42, a.Capacity())
	require.Equal(t, 21, a.Size())
	require.Equal(t, Element(1), a.At(0), "existing element preserved")
	require.Equal(t, Element(7), a.At(20))
}

// Test_Grow_InsertAtPastCapacity verifies the doubled target always wins over
// the geometric step when an insert lands past the buffer: 2*(pos+1) is at
// least 2*(capacity+1).
func Test_Grow_InsertAtPastCapacity(t *testing.T) {
	tests := []struct {
		capacity, fill, pos int
		wantCap             int
	}{
		{10, 10, 10, 22},
		{20, 20, 20, 42},
		{20, 0, 25, 52},
		{0, 0, 0, 2},
	}
	for _, tt := range tests {
		a := New(tt.capacity)
		for v := range tt.fill {
			a.AddEnd(Element(v))
		}
		a.InsertAt(tt.pos, 99)
		require.Equal(t, tt.wantCap, a.Capacity(), "capacity=%d pos=%d", tt.capacity, tt.pos)
		require.Equal(t, tt.pos+1, a.Size())
		for v := range tt.fill {
			require.Equal(t, Element(v), a.At(v))
		}
	}
}

// Test_Grow_InsertAtWithinCapacity verifies a sparse insert that still fits
// the buffer does not reallocate.
func Test_Grow_InsertAtWithinCapacity(t *testing.T) {
	a := New(8)
	a.InsertAt(7, 3)
	require.Equal(t, 0, a.Grows())
	require.Equal(t, 8, a.Capacity())
	require.Equal(t, 8, a.Size())
	require.Equal(t, Element(3), a.At(7))
}

// Test_Grow_PreservesElements verifies every reallocating path keeps the
// elements present before the call at their expected index.
func Test_Grow_PreservesElements(t *testing.T) {
	a := New(0)
	var want []Element

	for i := range 200 {
		v := Element(i)
		before := a.Grows()
		switch i % 3 {
		case 0:
			a.AddEnd(v)
			want = append(want, v)
		case 1:
			a.AddStart(v)
			want = slices.Insert(want, 0, v)
		case 2:
			pos := len(want) / 2
			a.InsertAt(pos, v)
			want = slices.Insert(want, pos, v)
		}
		require.Equal(t, want, a.Values(), "step %d (grew=%v)", i, a.Grows() != before)
	}
	require.Greater(t, a.Grows(), 3)
}

func Test_Grow_CapacityNeverShrinks(t *testing.T) {
	a := New(0)
	for v := range Element(100) {
		a.AddEnd(v)
	}
	c := a.Capacity()
	for range 100 {
		a.RemoveStart()
	}
	require.Equal(t, 0, a.Size())
	require.Equal(t, c, a.Capacity())
}

func Test_Grow_OverflowPanics(t *testing.T) {
	a := New(0)
	require.Panics(t, func() { a.InsertAt(int(^uint(0)>>1), 1) })
}
