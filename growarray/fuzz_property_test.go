package growarray

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// Test_Fuzz_RandomOps_MatchesSliceModel drives an Array and a plain slice
// with the same random operations and compares them after each step.
func Test_Fuzz_RandomOps_MatchesSliceModel(t *testing.T) {
	rng := rand.New(rand.NewSource(42)) // Fixed seed for reproducibility

	a := New(0)
	var model []Element

	for i := range 5000 {
		v := Element(rng.Int31n(1000) - 500)
		sizeBefore := a.Size()

		switch op := rng.Intn(7); op {
		case 0:
			a.AddEnd(v)
			model = append(model, v)
		case 1:
			a.AddStart(v)
			model = slices.Insert(model, 0, v)
		case 2:
			if len(model) == 0 {
				continue
			}
			pos := rng.Intn(len(model))
			a.InsertAt(pos, v)
			model = slices.Insert(model, pos, v)
		case 3:
			got := a.RemoveEnd()
			if len(model) == 0 {
				require.Equal(t, Element(0), got, "step %d", i)
				break
			}
			require.Equal(t, model[len(model)-1], got, "step %d", i)
			model = model[:len(model)-1]
		case 4:
			got := a.RemoveStart()
			if len(model) == 0 {
				require.Equal(t, Element(0), got, "step %d", i)
				break
			}
			require.Equal(t, model[0], got, "step %d", i)
			model = model[1:]
		case 5:
			pos := rng.Intn(len(model) + 3)
			got := a.RemoveFromPosition(pos)
			if pos >= len(model) {
				require.Equal(t, Element(0), got, "step %d", i)
				require.Equal(t, sizeBefore, a.Size(), "step %d", i)
				break
			}
			require.Equal(t, model[pos], got, "step %d", i)
			model = slices.Delete(model, pos, pos+1)
		case 6:
			idx := rng.Intn(len(model) + 3)
			if idx < len(model) {
				require.Equal(t, model[idx], a.At(idx), "step %d", i)
			} else {
				require.Equal(t, Element(0), a.At(idx), "step %d", i)
			}
		}

		require.NoError(t, a.Check(), "step %d", i)
		require.Equal(t, len(model), a.Size(), "step %d", i)
	}

	require.Equal(t, nonNil(model), nonNil(a.Values()))
	t.Logf("final size=%d capacity=%d grows=%d", a.Size(), a.Capacity(), a.Grows())
}

// Test_Fuzz_SizeIsNetOfAddsAndRemoves checks that the size equals adds minus
// removes for any mix of in-range operations.
func Test_Fuzz_SizeIsNetOfAddsAndRemoves(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for round := range 20 {
		a := New(rng.Intn(4))
		adds, removes := 0, 0
		for range 300 {
			if a.Size() > 0 && rng.Intn(3) == 0 {
				if rng.Intn(2) == 0 {
					a.RemoveEnd()
				} else {
					a.RemoveStart()
				}
				removes++
				continue
			}
			switch rng.Intn(3) {
			case 0:
				a.AddEnd(1)
			case 1:
				a.AddStart(1)
			case 2:
				a.InsertAt(rng.Intn(a.Size()+1), 1)
			}
			adds++
		}
		require.Equal(t, adds-removes, a.Size(), "round %d", round)
	}
}

func nonNil(s []Element) []Element {
	if len(s) == 0 {
		return nil
	}
	return s
}
