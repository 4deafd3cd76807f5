/*Package interpolate implements piecewise linear interpolation over sampled
radial profiles.

Profiles in this codebase are sampled on ascending radius grids that may
contain repeated abscissas (a cumulative distribution with a flat stretch, an
enclosed-mass curve with several points at the same radius). Evaluation
handles both: exact hits on a repeated abscissa take the last of the repeats,
and evaluation outside the sampled range clamps to the endpoint values rather
than extrapolating.*/
package interpolate

import (
	"fmt"
)

type searcher struct {
	xs     []float64
	x0, dx float64
	lim    float64
	n      int
}

func (s *searcher) init(xs []float64) {
	s.xs = xs
	s.n = len(xs)
	s.x0 = xs[0]
	s.lim = xs[s.n-1]
	if s.n > 1 {
		s.dx = (s.lim - s.x0) / float64(s.n-1)
	}
}

// search returns the index i of the segment [xs[i], xs[i+1]) containing x.
// When x lands exactly on a repeated abscissa the rightmost repeat is chosen,
// so the returned segment always has non-zero width. Callers must clamp first:
// search assumes x0 <= x < lim.
func (s *searcher) search(x float64) int {
	// Guess under the assumption of uniform spacing.
	if s.dx > 0 {
		guess := int((x - s.x0) / s.dx)
		if guess >= 0 && guess < s.n-1 &&
			s.xs[guess] <= x && x < s.xs[guess+1] {

			return guess
		}
	}

	// Binary search.
	lo, hi := 0, s.n-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if s.xs[mid] <= x {
			lo = mid
		} else {
			hi = mid
		}
	}

	return lo
}

// Linear is a linear interpolator.
type Linear struct {
	xs   searcher
	vals []float64
}

// NewLinear creates a linear interpolator for a non-decreasing sequence of
// points, xs, which take on the values given by vals.
//
// Lookups occur in O(log |xs|), usually faster for near-uniform grids.
func NewLinear(xs, vals []float64) *Linear {
	if len(xs) != len(vals) {
		panic(fmt.Sprintf(
			"Length of xs, %d, does not equal length of vals, %d.",
			len(xs), len(vals),
		))
	}
	if len(xs) == 0 {
		panic("Cannot interpolate over an empty sequence.")
	}
	lin := &Linear{}
	lin.xs.init(xs)
	lin.vals = vals
	return lin
}

// Eval returns the interpolated value at x. Values outside the supplied
// range clamp to the nearest endpoint value.
func (lin *Linear) Eval(x float64) float64 {
	if x <= lin.xs.x0 {
		return lin.vals[0]
	} else if x >= lin.xs.lim {
		return lin.vals[len(lin.vals)-1]
	}

	i1 := lin.xs.search(x)
	i2 := i1 + 1
	x1, x2 := lin.xs.xs[i1], lin.xs.xs[i2]
	v1, v2 := lin.vals[i1], lin.vals[i2]

	return ((v2-v1)/(x2-x1))*(x-x1) + v1
}

// EvalAll evaluates the interpolator at all the given x values. If an output
// array is given, the output is written to that array (the array is still
// returned as a convenience).
//
// If more than one output array is provided, only the first is used.
func (lin *Linear) EvalAll(xs []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i, x := range xs {
		out[0][i] = lin.Eval(x)
	}
	return out[0]
}
