/*Package velfield synthesizes line-of-sight cloudlet velocities from a
rotation curve, a dispersion model, and optional non-circular flows.

Every cloudlet's velocity is built in the disc plane before any geometric
projection: circular rotation evaluated at the cloudlet's radius from the
kinematic center, a Gaussian peculiar velocity scaled by the local
dispersion, and whatever the radial-motion model adds. Only the line-of-sight
component survives projection, which is where the cos(theta) sin(inc) factor
comes from.*/
package velfield

import (
	"math"

	"github.com/takafumi291/kinms/math/interpolate"
	"github.com/takafumi291/kinms/profile"
)

const degRad = math.Pi / 180

// Params collects the inputs of a velocity-field evaluation. Positions and
// radius grids are in pixel units; velocities in km/s; angles in degrees.
type Params struct {
	// X, Y are unprojected sky-plane positions and RFlat the in-plane radii
	// about the morphological center.
	X, Y, RFlat []float64

	// VelRad and VelProf sample the circular-velocity curve.
	VelRad, VelProf []float64

	// PosAng and Inc hold the per-cloudlet morphological position angle and
	// inclination, already resolved for warps.
	PosAng, Inc []float64

	// GasSigma is the velocity dispersion; VPosAng the kinematic position
	// angle, following PosAng when unset. Curves sample on VelRad.
	GasSigma, VPosAng profile.Param

	// VPhaseCenter offsets the kinematic center from the morphological one,
	// in pixels.
	VPhaseCenter [2]float64

	// Disp supplies one standard-normal draw per cloudlet.
	Disp []float64

	// RadialMotion, when non-nil, adds a non-circular flow. CellSize
	// converts the kinematic radius back to angle units for it.
	RadialMotion RadialMotion
	CellSize     float64
}

// Compute returns the line-of-sight velocity of each cloudlet.
func Compute(p *Params) []float64 {
	n := len(p.X)

	// Radii about the kinematic center, when it differs.
	rKin := p.RFlat
	offset := p.VPhaseCenter != [2]float64{}
	if offset {
		rKin = make([]float64, n)
		for i := range rKin {
			rKin[i] = math.Hypot(
				p.X[i]-p.VPhaseCenter[0], p.Y[i]-p.VPhaseCenter[1],
			)
		}
	}

	vRot := interpolate.NewLinear(p.VelRad, p.VelProf).EvalAll(rKin)

	los := make([]float64, n)
	if !p.GasSigma.AllZero() {
		sigma := p.GasSigma.ResolveAt(p.VelRad, rKin, los)
		for i := range los {
			los[i] = p.Disp[i] * sigma[i]
		}
	}

	// The kinematic position angle can trail the morphological one; only
	// the difference enters the disc azimuth.
	var vPosAng []float64
	if p.VPosAng.IsSet() {
		vPosAng = p.VPosAng.ResolveAt(p.VelRad, rKin)
	}

	for i := range los {
		theta := math.Atan2(p.Y[i]-p.VPhaseCenter[1], p.X[i]-p.VPhaseCenter[0])
		if vPosAng != nil {
			theta += (p.PosAng[i] - vPosAng[i]) * degRad
		}

		los[i] -= vRot[i] * math.Cos(theta) * math.Sin(p.Inc[i]*degRad)

		if p.RadialMotion != nil {
			los[i] += p.RadialMotion.Velocity(
				rKin[i]*p.CellSize, theta, p.Inc[i],
			)
		}
	}

	return los
}
