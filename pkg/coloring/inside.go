package coloring

// InsideBands is the number of hues Inside uses for the set interior.
const InsideBands = 8

// OutsideIndex is the flat index Inside gives to every escaped point.
const OutsideIndex = 0.5

// Inside emphasises the interior of the set, painting everything that
// escapes with OutsideIndex.
//
// The interior bands come from the iteration count, which is the same for
// every inside point. Real interior detail needs the final z of the orbit.
// TODO: carry the final orbit value out of EscapeCount so interior points
// can be banded by it.
type Inside struct {
	Iterations int
}

func (s Inside) MaxIterations() int {
	return s.Iterations
}

// ColorIndex is (count mod InsideBands) / InsideBands inside the set and
// OutsideIndex elsewhere.
func (s Inside) ColorIndex(count int) float64 {
	if count >= s.Iterations {
		return float64(count%InsideBands) / InsideBands
	}
	return OutsideIndex
}

func (s Inside) Validate() error {
	return validateIterations(s.Iterations)
}

var _ Strategy = Inside{}
