package numeric

import (
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func propertyParams() *gopter.TestParameters {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	return parameters
}

// TestAddition_PropertyBased checks Addition against exact integer
// arithmetic. Inputs stay well below 2^53 so every partial sum is exact.
func TestAddition_PropertyBased(t *testing.T) {
	properties := gopter.NewProperties(propertyParams())

	properties.Property("Addition equals the integer total", prop.ForAll(
		func(ints []int64) bool {
			var want int64
			values := make([]float64, len(ints))
			for i, n := range ints {
				want += n
				values[i] = float64(n)
			}
			return Addition(values...) == float64(want)
		},
		gen.SliceOf(gen.Int64Range(-1_000_000_000, 1_000_000_000)),
	))

	properties.Property("Addition is order independent for integers", prop.ForAll(
		func(ints []int64) bool {
			values := make([]float64, len(ints))
			for i, n := range ints {
				values[i] = float64(n)
			}
			reversed := slices.Clone(values)
			slices.Reverse(reversed)
			return Addition(values...) == Addition(reversed...)
		},
		gen.SliceOf(gen.Int64Range(-1_000_000_000, 1_000_000_000)),
	))

	properties.TestingRun(t)
}

// TestSort_PropertyBased checks that Sort yields an ascending permutation
// of its input and is idempotent.
func TestSort_PropertyBased(t *testing.T) {
	properties := gopter.NewProperties(propertyParams())
	values := gen.SliceOf(gen.Float64Range(-1e12, 1e12))

	properties.Property("adjacent elements are non-decreasing", prop.ForAll(
		func(in []float64) bool {
			out := Sort(in...)
			for i := 1; i < len(out); i++ {
				if out[i-1] > out[i] {
					return false
				}
			}
			return true
		},
		values,
	))

	properties.Property("output is a permutation of input", prop.ForAll(
		func(in []float64) bool {
			out := Sort(in...)
			if len(out) != len(in) {
				return false
			}
			counts := make(map[float64]int, len(in))
			for _, v := range in {
				counts[v]++
			}
			for _, v := range out {
				counts[v]--
			}
			for _, c := range counts {
				if c != 0 {
					return false
				}
			}
			return true
		},
		values,
	))

	properties.Property("sorting twice equals sorting once", prop.ForAll(
		func(in []float64) bool {
			once := Sort(in...)
			return slices.Equal(Sort(once...), once)
		},
		values,
	))

	properties.Property("input is never mutated", prop.ForAll(
		func(in []float64) bool {
			before := slices.Clone(in)
			_ = Sort(in...)
			return slices.Equal(before, in)
		},
		values,
	))

	properties.TestingRun(t)
}
