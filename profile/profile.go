/*Package profile implements the scalar-or-profile parameters used to
describe warped discs.

Disc parameters like inclination, position angle, and velocity dispersion can
be one number applied at every radius or a curve sampled on the model's
rotation radius grid. Param captures both cases in one value and resolves
either form to per-cloudlet values.*/
package profile

import (
	"fmt"

	"github.com/takafumi291/kinms/math/interpolate"
)

// Param is a disc parameter that holds either one constant applied at every
// radius or a curve sampled on a reference radius grid. The zero value is
// unset: it resolves to zero everywhere, and callers that treat "unset"
// specially can test IsSet.
type Param struct {
	vals []float64
}

// Constant returns a Param fixed at v for all radii.
func Constant(v float64) Param {
	return Param{[]float64{v}}
}

// Curve returns a Param sampled on the caller's reference radius grid. The
// grid itself is supplied at resolve time and must have the same length as
// vals.
func Curve(vals []float64) Param {
	return Param{vals}
}

// IsSet reports whether the parameter was given a value.
func (p Param) IsSet() bool {
	return p.vals != nil
}

// Len returns the number of samples: 0 when unset, 1 for a constant, and the
// curve length otherwise.
func (p Param) Len() int {
	return len(p.vals)
}

// AllZero reports whether every resolved value would be zero. Unset
// parameters are all zero.
func (p Param) AllZero() bool {
	for _, v := range p.vals {
		if v != 0 {
			return false
		}
	}
	return true
}

// ResolveAt evaluates the parameter at every radius in rs: a constant
// broadcasts, a curve interpolates linearly on grid, clamping outside the
// sampled range, and an unset parameter resolves to zeros. If an output
// slice is given, the result is written to that slice (the slice is still
// returned as a convenience).
//
// ResolveAt panics unless Len() is 0 or 1 or matches len(grid). Callers
// validate parameter shapes before resolving.
func (p Param) ResolveAt(grid, rs []float64, out ...[]float64) []float64 {
	var res []float64
	if len(out) == 0 {
		res = make([]float64, len(rs))
	} else {
		res = out[0]
		if len(res) != len(rs) {
			panic(fmt.Sprintf(
				"Length of out, %d, does not equal length of rs, %d.",
				len(res), len(rs),
			))
		}
	}

	switch {
	case len(p.vals) == 0:
		for i := range res {
			res[i] = 0
		}
	case len(p.vals) == 1:
		for i := range res {
			res[i] = p.vals[0]
		}
	case len(p.vals) == len(grid):
		interpolate.NewLinear(grid, p.vals).EvalAll(rs, res)
	default:
		panic(fmt.Sprintf(
			"Parameter with %d samples cannot resolve on a grid of %d radii.",
			len(p.vals), len(grid),
		))
	}
	return res
}

// StrictlyAscending reports whether rs increases strictly.
func StrictlyAscending(rs []float64) bool {
	for i := 1; i < len(rs); i++ {
		if rs[i] <= rs[i-1] {
			return false
		}
	}
	return true
}
