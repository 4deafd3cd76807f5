package cloud

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/takafumi291/kinms/math/calc"
	"github.com/takafumi291/kinms/math/interpolate"
	"github.com/takafumi291/kinms/profile"
)

// Sample draws n cloudlet positions whose surface density follows the
// brightness profile sbProf sampled at radii sbRad. Positions come back in
// the disc frame, in the units of sbRad, with z drawn from an exponential
// scale-height distribution of thickness (constant or profiled on sbRad).
// A thickness of zero gives an exactly flat disc.
//
// The first n draws of each stream in st are consumed; Sample panics if the
// streams are shorter than n. Callers validate profile shapes beforehand.
func Sample(sbRad, sbProf []float64, thickness profile.Param, n int, st *Streams) *Set {
	if len(st.RadiusU) < n {
		panic(fmt.Sprintf(
			"Streams hold %d draws, but %d cloudlets were requested.",
			len(st.RadiusU), n,
		))
	}

	// Cumulative light enclosed at each radius: the integral of
	// 2 pi r * sbProf, normalized to [0, 1]. Inverting it through the
	// uniform stream draws radii distributed like the profile.
	integrand := make([]float64, len(sbRad))
	for i := range integrand {
		integrand[i] = 2 * math.Pi * sbRad[i] * sbProf[i]
	}
	cdf := calc.CumTrapz(sbRad, integrand)
	floats.Scale(1/floats.Max(cdf), cdf)

	rFlat := interpolate.NewLinear(cdf, sbRad).EvalAll(st.RadiusU[:n])

	s := NewSet(n)

	if !thickness.AllZero() {
		thick := thickness.ResolveAt(sbRad, rFlat, s.Z)
		for i := range thick {
			s.Z[i] = thick[i] * st.ZMag[i] * st.ZSign[i]
		}
	}

	for i := 0; i < n; i++ {
		r3 := math.Hypot(rFlat[i], s.Z[i])
		sinTheta := 1.0
		if r3 > 0 {
			zr := s.Z[i] / r3
			sinTheta = math.Sqrt(1 - zr*zr)
		}
		sinPhi, cosPhi := math.Sincos(st.Azimuth[i])
		s.X[i] = r3 * cosPhi * sinTheta
		s.Y[i] = r3 * sinPhi * sinTheta
	}

	return s
}
