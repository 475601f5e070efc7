package numeric

import "slices"

// Addition returns the sum of values using IEEE-754 addition from left to
// right. It returns 0 when called without arguments.
func Addition(values ...float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

// Sort returns a new slice holding values in ascending order. NaNs are
// ordered before every other value. The argument slice is left untouched,
// and the result is never nil.
func Sort(values ...float64) []float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	slices.Sort(sorted)
	return sorted
}

// SortAsync runs Sort behind a Future.
func SortAsync(values ...float64) *Future[[]float64] {
	snapshot := slices.Clone(values)
	return Async(func() []float64 { return Sort(snapshot...) })
}
