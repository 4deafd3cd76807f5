package cube

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/takafumi291/kinms/beam"
	"github.com/takafumi291/kinms/math/rand"
)

func TestIndexLayout(t *testing.T) {
	c := New(4, 3, 5)

	require.Len(t, c.Data, 60)
	assert.Equal(t, 0, c.Index(0, 0, 0))
	assert.Equal(t, 1, c.Index(0, 0, 1))
	assert.Equal(t, 5, c.Index(0, 1, 0))
	assert.Equal(t, 15, c.Index(1, 0, 0))
	assert.Equal(t, 59, c.Index(3, 2, 4))
}

func TestSpectrumSharesStorage(t *testing.T) {
	c := New(3, 3, 4)
	c.Data[c.Index(1, 2, 3)] = 7

	spec := c.Spectrum(1, 2)
	require.Len(t, spec, 4)
	assert.Equal(t, 7.0, spec[3])

	spec[0] = 2
	assert.Equal(t, 2.0, c.At(1, 2, 0))
}

func TestVoxelizeCounts(t *testing.T) {
	x := []float64{0, 1.2, 1.2}
	y := []float64{0, -0.8, -0.8}
	v := []float64{0, 14, 14}

	c, n := Voxelize(x, y, v, [3]float64{2, 2, 2}, 5, 5, 5, 10, nil)

	assert.Equal(t, 3, n)
	assert.Equal(t, 1.0, c.At(2, 2, 2))
	assert.Equal(t, 2.0, c.At(3, 1, 3))
	assert.Equal(t, 3.0, c.Sum())
}

func TestVoxelizeWeights(t *testing.T) {
	x := []float64{0, 1.2, 1.2}
	y := []float64{0, -0.8, -0.8}
	v := []float64{0, 14, 14}
	flux := []float64{0.5, 2, 3}

	c, n := Voxelize(x, y, v, [3]float64{2, 2, 2}, 5, 5, 5, 10, flux)

	assert.Equal(t, 3, n)
	assert.Equal(t, 0.5, c.At(2, 2, 2))
	assert.Equal(t, 5.0, c.At(3, 1, 3))
	assert.Equal(t, 5.5, c.Sum())
}

func TestVoxelizeRounding(t *testing.T) {
	table := []struct {
		x  float64
		ix int
	}{
		{0.49, 1},
		{0.5, 2},
		{-0.49, 1},
		{-0.51, 0},
	}

	for i, test := range table {
		c, n := Voxelize(
			[]float64{test.x}, []float64{0}, []float64{0},
			[3]float64{1, 1, 1}, 3, 3, 3, 10, nil,
		)
		if n != 1 {
			t.Errorf("%d) binned %d cloudlets, expected 1.", i, n)
		} else if c.At(test.ix, 1, 1) != 1 {
			t.Errorf("%d) x = %g missed voxel %d.", i, test.x, test.ix)
		}
	}
}

func TestVoxelizeDropsOutside(t *testing.T) {
	x := []float64{0, 3, -2.6, 0, 0}
	y := []float64{0, 0, 0, 2.7, 0}
	v := []float64{0, 0, 0, 0, 35}

	c, n := Voxelize(x, y, v, [3]float64{2, 2, 2}, 5, 5, 5, 10, nil)

	assert.Equal(t, 1, n)
	assert.Equal(t, 1.0, c.Sum())
	assert.Equal(t, 1.0, c.At(2, 2, 2))
}

func TestVoxelizePanics(t *testing.T) {
	assert.Panics(t, func() {
		Voxelize(
			[]float64{0, 1}, []float64{0}, []float64{0, 1},
			[3]float64{1, 1, 1}, 3, 3, 3, 10, nil,
		)
	})
	assert.Panics(t, func() {
		Voxelize(
			[]float64{0}, []float64{0}, []float64{0},
			[3]float64{1, 1, 1}, 3, 3, 3, 10, []float64{1, 2},
		)
	})
}

func deltaCube(nx, ny, nv, ix, iy, iv int) *Cube {
	c := New(nx, ny, nv)
	c.Data[c.Index(ix, iy, iv)] = 1
	return c
}

func TestConvolveSpatialDelta(t *testing.T) {
	k := beam.Make(32, 32, beam.Spec{Major: 3, Minor: 3}, 1)
	kx, ky := k.Dims()
	norm := 1 / k.Sum()

	c := deltaCube(31, 31, 2, 15, 15, 0)
	c.ConvolveSpatial(k, false)

	// A point source becomes a copy of the normalized kernel.
	for a := 0; a < kx; a++ {
		for b := 0; b < ky; b++ {
			got := c.At(15+a-kx/2, 15+b-ky/2, 0)
			assert.InDelta(t, k.At(a, b)*norm, got, 1e-12)
		}
	}
	assert.InDelta(t, 1, c.Sum(), 1e-12)

	// The empty channel must not be touched.
	for ix := 0; ix < 31; ix++ {
		for iy := 0; iy < 31; iy++ {
			if c.At(ix, iy, 1) != 0 {
				t.Fatalf("empty channel gained flux at (%d, %d)", ix, iy)
			}
		}
	}
}

func TestConvolveSpatialPreservesFlux(t *testing.T) {
	k := beam.Make(32, 32, beam.Spec{Major: 4, Minor: 2, PA: 30}, 1)

	c := New(41, 41, 1)
	c.Data[c.Index(20, 20, 0)] = 2
	c.Data[c.Index(18, 22, 0)] = 3.5
	c.Data[c.Index(23, 19, 0)] = 1

	c.ConvolveSpatial(k, false)
	assert.InDelta(t, 6.5, c.Sum(), 1e-9)
}

func TestConvolveSpatialSkipsNonpositive(t *testing.T) {
	k := beam.Make(16, 16, beam.Spec{Major: 2, Minor: 2}, 1)

	c := New(15, 15, 2)
	c.Data[c.Index(7, 7, 0)] = -2
	c.Data[c.Index(7, 7, 1)] = 2

	c.ConvolveSpatial(k, false)

	assert.Equal(t, -2.0, c.At(7, 7, 0))

	// Channel 1 spreads out while channel 0 keeps its single voxel.
	assert.Less(t, c.At(7, 7, 1), 2.0)
	assert.Greater(t, c.At(7, 7, 1), 0.0)
	assert.Greater(t, c.At(7, 8, 1), 0.0)
	assert.Equal(t, 0.0, c.At(7, 8, 0))
}

func TestConvolveSpatialFFTMatchesDirect(t *testing.T) {
	k := beam.Make(16, 16, beam.Spec{Major: 2, Minor: 2}, 1)

	gen := rand.New(42)
	direct := New(16, 16, 3)
	for i := 0; i < 40; i++ {
		ix := int(gen.Uniform(0, 16))
		iy := int(gen.Uniform(0, 16))
		iv := int(gen.Uniform(0, 3))
		direct.Data[direct.Index(ix, iy, iv)] += gen.Uniform(0.5, 1.5)
	}

	viaFFT := New(16, 16, 3)
	copy(viaFFT.Data, direct.Data)

	direct.ConvolveSpatial(k, false)
	viaFFT.ConvolveSpatial(k, true)

	for i := range direct.Data {
		if math.Abs(direct.Data[i]-viaFFT.Data[i]) > 1e-9 {
			t.Fatalf(
				"voxel %d: direct = %g, fft = %g",
				i, direct.Data[i], viaFFT.Data[i],
			)
		}
	}
}

func TestConvolveSpectralDelta(t *testing.T) {
	l := beam.MakeLSF(50, 30, 10)
	nl := l.Len()
	norm := 1 / l.Sum()

	c := deltaCube(3, 3, 50, 1, 1, 25)
	c.ConvolveSpectral(l)

	for a := 0; a < nl; a++ {
		got := c.At(1, 1, 25+a-nl/2)
		assert.InDelta(t, l.At(a)*norm, got, 1e-12)
	}
	assert.InDelta(t, 1, c.Sum(), 1e-12)

	// Untouched sightlines stay empty.
	assert.Equal(t, 0.0, c.At(0, 0, 25))
}

func TestConvolveSpectralPreservesFlux(t *testing.T) {
	l := beam.MakeLSF(50, 30, 10)

	c := New(2, 2, 50)
	c.Data[c.Index(0, 0, 20)] = 2
	c.Data[c.Index(0, 0, 28)] = 1.5
	c.Data[c.Index(1, 1, 24)] = -1

	c.ConvolveSpectral(l)

	spec := c.Spectrum(0, 0)
	sum := 0.0
	for _, v := range spec {
		sum += v
	}
	assert.InDelta(t, 3.5, sum, 1e-9)

	// The negative-total sightline is skipped.
	assert.Equal(t, -1.0, c.At(1, 1, 24))
}

func fourVoxelCube() *Cube {
	c := New(2, 2, 1)
	for i := range c.Data {
		c.Data[i] = 1
	}
	return c
}

func TestNormalizeIntegratedFlux(t *testing.T) {
	c := fourVoxelCube()
	c.Normalize(42, 2, 10, false, false)

	// 42 * 2 / (4 * 10) per voxel.
	assert.InDelta(t, 2.1, c.At(0, 0, 0), 1e-12)
	assert.InDelta(t, 8.4, c.Sum(), 1e-12)
}

func TestNormalizeIntegratedFluxClean(t *testing.T) {
	c := fourVoxelCube()
	c.Normalize(42, 2, 10, true, false)

	// The kernel sum plays no part for a clean cube.
	assert.InDelta(t, 1.05, c.At(0, 0, 0), 1e-12)
}

func TestNormalizeWeighted(t *testing.T) {
	c := fourVoxelCube()
	c.Data[0] = 7
	c.Normalize(0, 2, 10, false, true)

	assert.Equal(t, 7.0, c.Data[0])
	assert.Equal(t, 10.0, c.Sum())
}

func TestNormalizeUnitTotal(t *testing.T) {
	c := fourVoxelCube()
	c.Normalize(0, 2, 10, false, false)

	assert.InDelta(t, 1, c.Sum(), 1e-12)
	assert.InDelta(t, 0.25, c.At(1, 1, 0), 1e-12)
}

func TestNormalizeEmpty(t *testing.T) {
	c := New(2, 2, 2)
	c.Normalize(42, 2, 10, false, false)

	for i, v := range c.Data {
		if v != 0 {
			t.Fatalf("voxel %d became %g", i, v)
		}
	}
}

func BenchmarkVoxelize(b *testing.B) {
	n := 100000
	gen := rand.New(7)
	x := make([]float64, n)
	y := make([]float64, n)
	v := make([]float64, n)
	gen.UniformAt(-30, 30, x)
	gen.UniformAt(-30, 30, y)
	gen.UniformAt(-250, 250, v)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Voxelize(x, y, v, [3]float64{32, 32, 25}, 64, 64, 50, 10, nil)
	}
}

func BenchmarkConvolveSpatialDirect(b *testing.B) {
	k := beam.Make(64, 64, beam.Spec{Major: 4, Minor: 4}, 1)
	gen := rand.New(7)
	src := New(64, 64, 10)
	for i := 0; i < 2000; i++ {
		ix := int(gen.Uniform(0, 64))
		iy := int(gen.Uniform(0, 64))
		iv := int(gen.Uniform(0, 10))
		src.Data[src.Index(ix, iy, iv)] += 1
	}
	work := New(64, 64, 10)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(work.Data, src.Data)
		work.ConvolveSpatial(k, false)
	}
}
