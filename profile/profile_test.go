package profile

import (
	"math"
	"testing"
)

func almostEq(x, y float64) bool {
	return math.Abs(x-y) < 1e-10
}

func TestConstantResolve(t *testing.T) {
	p := Constant(60)
	grid := []float64{0, 1, 2, 3}
	rs := []float64{0.5, 2.7, 10}

	res := p.ResolveAt(grid, rs)
	for i := range res {
		if res[i] != 60 {
			t.Errorf("%d) constant resolved to %g, expected 60.", i, res[i])
		}
	}
}

func TestCurveResolve(t *testing.T) {
	p := Curve([]float64{0, 10, 20, 30})
	grid := []float64{0, 1, 2, 3}

	table := []struct {
		r, res float64
	}{
		{0, 0},
		{0.5, 5},
		{2, 20},
		{2.5, 25},
		{-1, 0},
		{5, 30},
	}

	for i, test := range table {
		res := p.ResolveAt(grid, []float64{test.r})
		if !almostEq(res[0], test.res) {
			t.Errorf("%d) curve resolved %g -> %g, expected %g.",
				i, test.r, res[0], test.res)
		}
	}
}

func TestUnsetResolve(t *testing.T) {
	var p Param
	if p.IsSet() {
		t.Errorf("Zero Param reports IsSet.")
	}

	res := p.ResolveAt([]float64{0, 1}, []float64{0.5, 0.7, 0.9})
	for i := range res {
		if res[i] != 0 {
			t.Errorf("%d) unset resolved to %g, expected 0.", i, res[i])
		}
	}
}

func TestResolveOut(t *testing.T) {
	p := Constant(5)
	out := make([]float64, 3)
	res := p.ResolveAt([]float64{0, 1}, []float64{0, 0.5, 1}, out)
	for i := range out {
		if out[i] != 5 || res[i] != 5 {
			t.Errorf("%d) out = %v, res = %v, expected all 5s.", i, out, res)
		}
	}
}

func TestResolveMismatchPanics(t *testing.T) {
	p := Curve([]float64{1, 2, 3})
	defer func() {
		if recover() == nil {
			t.Errorf("ResolveAt did not panic on a mismatched grid.")
		}
	}()
	p.ResolveAt([]float64{0, 1}, []float64{0.5})
}

func TestAllZero(t *testing.T) {
	table := []struct {
		p   Param
		res bool
	}{
		{Param{}, true},
		{Constant(0), true},
		{Constant(2), false},
		{Curve([]float64{0, 0, 0}), true},
		{Curve([]float64{0, 1, 0}), false},
	}

	for i, test := range table {
		if test.p.AllZero() != test.res {
			t.Errorf("%d) AllZero() = %v, expected %v.",
				i, test.p.AllZero(), test.res)
		}
	}
}

func TestStrictlyAscending(t *testing.T) {
	table := []struct {
		rs  []float64
		res bool
	}{
		{[]float64{}, true},
		{[]float64{1}, true},
		{[]float64{0, 1, 2}, true},
		{[]float64{0, 1, 1}, false},
		{[]float64{0, 2, 1}, false},
	}

	for i, test := range table {
		if StrictlyAscending(test.rs) != test.res {
			t.Errorf("%d) StrictlyAscending(%v) = %v, expected %v.",
				i, test.rs, StrictlyAscending(test.rs), test.res)
		}
	}
}
