/*Package cube implements the spectral data cube, a dense grid over two sky
axes and one velocity axis. Cloudlets are binned into it, the beam and line
spread functions are convolved over it, and the flux calibration ladder is
applied to it.*/
package cube

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Cube is a spectral cube with Nx by Ny spatial pixels and Nv velocity
// channels. Data stores voxels with the velocity axis fastest, so a single
// spectrum is a contiguous slice.
type Cube struct {
	Data       []float64
	Nx, Ny, Nv int
}

// New creates an empty cube with the given dimensions.
func New(nx, ny, nv int) *Cube {
	return &Cube{Data: make([]float64, nx*ny*nv), Nx: nx, Ny: ny, Nv: nv}
}

// Index returns the flat offset of the voxel (ix, iy, iv).
func (c *Cube) Index(ix, iy, iv int) int {
	return iv + c.Nv*(iy+c.Ny*ix)
}

// At returns the value of the voxel (ix, iy, iv).
func (c *Cube) At(ix, iy, iv int) float64 {
	return c.Data[c.Index(ix, iy, iv)]
}

// Spectrum returns the spectrum through the spatial pixel (ix, iy). The
// slice shares the cube's storage.
func (c *Cube) Spectrum(ix, iy int) []float64 {
	off := c.Index(ix, iy, 0)
	return c.Data[off : off+c.Nv]
}

// Sum returns the total over all voxels.
func (c *Cube) Sum() float64 {
	return floats.Sum(c.Data)
}

// Scale multiplies every voxel by f.
func (c *Cube) Scale(f float64) {
	floats.Scale(f, c.Data)
}

// Voxelize bins cloudlets into a fresh cube. Positions are in pixels
// relative to the reference voxel given by center, and velocities in km/s
// with dv km/s per channel. Each cloudlet deposits its flux weight, or 1
// when flux is nil, into the voxel it rounds to; cloudlets that land
// outside the cube are dropped. The returned count is the number of
// cloudlets binned.
func Voxelize(
	x, y, vlos []float64, center [3]float64,
	nx, ny, nv int, dv float64, flux []float64,
) (*Cube, int) {
	if len(y) != len(x) || len(vlos) != len(x) ||
		(flux != nil && len(flux) != len(x)) {
		panic("Cloudlet slices of unequal length given to Voxelize.")
	}

	c := New(nx, ny, nv)
	count := 0
	for i := range x {
		ix := int(math.Round(x[i] + center[0]))
		iy := int(math.Round(y[i] + center[1]))
		iv := int(math.Round(vlos[i]/dv + center[2]))
		if ix < 0 || ix >= nx || iy < 0 || iy >= ny || iv < 0 || iv >= nv {
			continue
		}

		w := 1.0
		if flux != nil {
			w = flux[i]
		}
		c.Data[c.Index(ix, iy, iv)] += w
		count++
	}

	return c, count
}
