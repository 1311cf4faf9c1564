package bench

import "github.com/joshuapare/growkit/growarray"

// Transition records one reallocation observed while appending.
type Transition struct {
	// Size is the element count that forced the reallocation.
	Size int `json:"size"`
	From int `json:"from"`
	To   int `json:"to"`
}

// Growth appends n elements to an array that starts with capacity and
// returns every capacity change along the way.
func Growth(capacity, n int) []Transition {
	arr := growarray.New(capacity)

	var out []Transition
	prev := arr.Capacity()
	for i := range n {
		arr.AddEnd(growarray.Element(i))
		if c := arr.Capacity(); c != prev {
			out = append(out, Transition{Size: arr.Size(), From: prev, To: c})
			prev = c
		}
	}
	return out
}
