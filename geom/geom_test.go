package geom

import (
	"math"
	"testing"
)

func almostEq(x, y float64) bool {
	return math.Abs(x-y) < 1e-10
}

func TestProjectInclination(t *testing.T) {
	table := []struct {
		inc    float64
		y, z   float64
		ey, ez float64
	}{
		{0, 1, 0, 1, 0},
		{0, 0, 1, 0, 1},
		{90, 1, 0, 0, -1},
		{90, 0, 1, 1, 0},
		{60, 2, 0, 1, -math.Sqrt(3)},
		{30, 0, 2, 1, math.Sqrt(3)},
	}

	for i, test := range table {
		y := []float64{test.y}
		z := []float64{test.z}
		ProjectInclination([]float64{test.inc}, y, z)
		if !almostEq(y[0], test.ey) || !almostEq(z[0], test.ez) {
			t.Errorf("%d) inc %g deg: (y, z) -> (%g, %g), expected (%g, %g).",
				i, test.inc, y[0], z[0], test.ey, test.ez)
		}
	}
}

func TestRotatePositionAngle(t *testing.T) {
	table := []struct {
		pa     float64
		x, y   float64
		ex, ey float64
	}{
		// At pa 90 the receding side already lies along +x.
		{90, 1, 0, 1, 0},
		{90, 0, 1, 0, 1},
		// At pa 0 it moves to +y.
		{0, 1, 0, 0, -1},
		{0, 0, 1, 1, 0},
		{180, 1, 0, 0, 1},
		{270, 1, 0, -1, 0},
	}

	for i, test := range table {
		x := []float64{test.x}
		y := []float64{test.y}
		RotatePositionAngle([]float64{test.pa}, x, y)
		if !almostEq(x[0], test.ex) || !almostEq(y[0], test.ey) {
			t.Errorf("%d) pa %g deg: (x, y) -> (%g, %g), expected (%g, %g).",
				i, test.pa, x[0], y[0], test.ex, test.ey)
		}
	}
}

func TestProjectionPreservesRadius(t *testing.T) {
	x := []float64{3, -1, 0.5}
	y := []float64{4, 2, -0.25}
	z := []float64{0, 1, 2}
	inc := []float64{30, 45, 80}
	pa := []float64{10, 200, 341}

	r0 := make([]float64, 3)
	for i := range x {
		r0[i] = math.Sqrt(x[i]*x[i] + y[i]*y[i] + z[i]*z[i])
	}

	ProjectInclination(inc, y, z)
	RotatePositionAngle(pa, x, y)

	for i := range x {
		r := math.Sqrt(x[i]*x[i] + y[i]*y[i] + z[i]*z[i])
		if !almostEq(r0[i], r) {
			t.Errorf("%d) projection changed radius %g -> %g.", i, r0[i], r)
		}
	}
}
