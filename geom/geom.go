/*Package geom applies sky-projection geometry to cloudlet coordinate
slices.

A disc model starts face-on, with x and y in the disc plane and z along the
disc normal. Projecting it onto the sky is a tilt about the x-axis by the
inclination followed by a rotation in the sky plane that places the receding
major axis at the requested position angle. Both operations take one angle
per cloudlet so warped discs, whose angles change with radius, project with
the same code as flat ones.*/
package geom

import (
	"math"
)

const degRad = math.Pi / 180

// ProjectInclination tilts cloudlets about the x-axis, in place, leaving x
// coordinates untouched. incDeg holds one inclination per cloudlet, in
// degrees: 0 leaves the disc face-on, 90 shows it edge-on.
func ProjectInclination(incDeg, y, z []float64) {
	for i := range y {
		s, c := math.Sincos(incDeg[i] * degRad)
		y[i], z[i] = c*y[i]+s*z[i], -s*y[i]+c*z[i]
	}
}

// RotatePositionAngle rotates cloudlets in the sky plane, in place, so the
// receding major axis ends up at position angle paDeg (degrees, one per
// cloudlet). A position angle of zero puts the receding side along +y; the
// line of sight, z, is unaffected.
func RotatePositionAngle(paDeg, x, y []float64) {
	for i := range x {
		s, c := math.Sincos((90 - paDeg[i]) * degRad)
		x[i], y[i] = c*x[i]+s*y[i], -s*x[i]+c*y[i]
	}
}
