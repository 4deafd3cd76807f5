package velfield

import (
	"math"
	"sort"

	"github.com/takafumi291/kinms/math/interpolate"
)

// gravConst is G in units of solar masses, parsecs, and km/s.
const gravConst = 4.301e-3

// pcPerArcsec converts an angle in arcseconds to parsecs per Mpc of
// distance.
const pcPerArcsec = 4.84

// AugmentRotation adds the circular velocity supported by the gas's own
// mass to the rotation curve, in quadrature and in place, treating the mass
// as spherically distributed among the cloudlets. x, y, z are cloudlet
// positions in angle units, shared by velRad; mass is the total gas mass in
// solar masses and dist the distance in Mpc.
//
// Radii where the enclosed-mass term diverges (the origin, in particular)
// keep their input speed.
func AugmentRotation(velRad, velProf []float64, x, y, z []float64, mass, dist float64) {
	n := len(x)

	// Enclosed mass as a function of radius: each cloudlet carries an equal
	// share of the total.
	rad := make([]float64, n+1)
	for i := 0; i < n; i++ {
		rad[i+1] = math.Sqrt(x[i]*x[i] + y[i]*y[i] + z[i]*z[i])
	}
	sort.Float64s(rad[1:])

	cumMass := make([]float64, n+1)
	for i := range cumMass {
		cumMass[i] = float64(i) * mass / float64(n)
	}

	encl := interpolate.NewLinear(rad, cumMass)
	for i, r := range velRad {
		vSqr := gravConst * encl.Eval(r) / (pcPerArcsec * r * dist)
		if math.IsInf(vSqr, 0) || math.IsNaN(vSqr) {
			vSqr = 0
		}
		velProf[i] = math.Sqrt(velProf[i]*velProf[i] + vSqr)
	}
}
