/*Package calc provides some basic quadrature routines.
*/
package calc

import (
	"fmt"
)

// CumTrapz computes the running trapezoidal integral of a sequence of (x, y)
// points: out[i] is the integral of y dx from xs[0] to xs[i], so out[0] = 0.
// The points do not need to be uniformly spaced. If an output slice is given,
// the result is written to that slice (the slice is still returned as a
// convenience).
//
// If more than one output slice is provided, only the first is used.
func CumTrapz(xs, ys []float64, out ...[]float64) []float64 {
	n := len(xs)
	if len(ys) != n {
		panic(fmt.Sprintf(
			"Length of xs, %d, does not equal length of ys, %d.", n, len(ys),
		))
	}

	var res []float64
	if len(out) == 0 {
		res = make([]float64, n)
	} else {
		res = out[0]
		if len(res) != n {
			panic(fmt.Sprintf(
				"Length of out, %d, does not equal length of xs, %d.",
				len(res), n,
			))
		}
	}

	if n == 0 {
		return res
	}

	res[0] = 0
	for i := 1; i < n; i++ {
		res[i] = res[i-1] + 0.5*(ys[i]+ys[i-1])*(xs[i]-xs[i-1])
	}
	return res
}
