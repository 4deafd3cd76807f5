package velfield

import (
	"math"

	"github.com/takafumi291/kinms/math/interpolate"
)

// RadialMotion models a non-circular, in-plane flow. Velocity returns the
// line-of-sight contribution for a cloudlet at in-plane radius r (angle
// units), disc azimuth theta (radians, measured from the receding major
// axis), and inclination incDeg (degrees). Implementations must keep their
// sign convention consistent with the rotation term, which contributes
// -v cos(theta) sin(inc).
type RadialMotion interface {
	Velocity(r, theta, incDeg float64) float64
}

// RadialFlow is a pure radial flow with speed vr(r). Positive speeds move
// gas outward.
type RadialFlow struct {
	vr func(r float64) float64
}

// NewRadialFlow returns a radial flow with constant speed vr at all radii.
func NewRadialFlow(vr float64) *RadialFlow {
	return &RadialFlow{func(float64) float64 { return vr }}
}

// NewRadialFlowProfile returns a radial flow whose speed is sampled at the
// given radii (angle units) and interpolated between them.
func NewRadialFlowProfile(radii, speeds []float64) *RadialFlow {
	lin := interpolate.NewLinear(radii, speeds)
	return &RadialFlow{lin.Eval}
}

func (f *RadialFlow) Velocity(r, theta, incDeg float64) float64 {
	return f.vr(r) * math.Sin(theta) * math.Sin(incDeg*degRad)
}

// LopsidedFlow is an m=1 harmonic distortion of the velocity field: a
// tangential amplitude VT and radial amplitude VR (km/s) oriented at
// PhaseDeg degrees from the kinematic major axis.
type LopsidedFlow struct {
	VT, VR   float64
	PhaseDeg float64
}

func (f LopsidedFlow) Velocity(r, theta, incDeg float64) float64 {
	thetaB := theta - f.PhaseDeg*degRad
	return -math.Sin(incDeg*degRad) *
		(f.VT*math.Cos(thetaB)*math.Cos(theta) +
			f.VR*math.Sin(thetaB)*math.Sin(theta))
}

// BisymmetricFlow is an m=2, bar-type distortion of the velocity field: a
// tangential amplitude VT and radial amplitude VR (km/s) for a bar oriented
// at PhaseDeg degrees from the kinematic major axis.
type BisymmetricFlow struct {
	VT, VR   float64
	PhaseDeg float64
}

func (f BisymmetricFlow) Velocity(r, theta, incDeg float64) float64 {
	thetaB := 2 * (theta - f.PhaseDeg*degRad)
	return math.Sin(incDeg*degRad) *
		(f.VT*math.Cos(thetaB)*math.Cos(theta) +
			f.VR*math.Sin(thetaB)*math.Sin(theta))
}
