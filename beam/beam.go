/*Package beam constructs the instrumental response kernels: the synthesized
beam on the sky plane and the line spread function along the velocity axis.

Both kernels are Gaussians evaluated on the model's pixel grid, clipped where
their wings fall below a fixed fraction of the peak, and trimmed to the
smallest odd-sized box containing the remaining support. Trimming keeps the
convolution cost proportional to the beam, not the field of view.*/
package beam

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// fwhmFactor converts a full width at half maximum to a Gaussian sigma.
const fwhmFactor = 2.355

// clipLevel is the fraction of the kernel peak below which wings are zeroed.
const clipLevel = 1e-5

// Spec describes an elliptical Gaussian beam: major and minor axis FWHM in
// the same angle units as the pixel scale, and the major-axis position angle
// in degrees, measured from the +y axis toward +x.
type Spec struct {
	Major, Minor, PA float64
}

// ParseSpec normalizes a one- to three-element beam description. A single
// value gives a circular beam. Two values give the major and minor axes with
// a position angle of zero. Three values give (major, minor, pa). The axes
// are swapped if given minor-first, and the position angle is folded into
// [0, 180).
func ParseSpec(size []float64) (Spec, error) {
	var s Spec
	switch len(size) {
	case 1:
		s = Spec{size[0], size[0], 0}
	case 2:
		s = Spec{size[0], size[1], 0}
	case 3:
		s = Spec{size[0], size[1], size[2]}
	default:
		return Spec{}, fmt.Errorf(
			"a beam needs 1 to 3 values (major, minor, pa), got %d",
			len(size),
		)
	}

	if s.Major <= 0 || s.Minor <= 0 {
		return Spec{}, fmt.Errorf(
			"beam axes must be positive, got major = %g, minor = %g",
			s.Major, s.Minor,
		)
	}

	if s.Minor > s.Major {
		s.Major, s.Minor = s.Minor, s.Major
	}

	s.PA = math.Mod(s.PA, 180)
	if s.PA < 0 {
		s.PA += 180
	}

	return s, nil
}

// Kernel is a 2D convolution kernel with its peak, equal to 1, at the
// central pixel of an odd-sized box.
type Kernel struct {
	data *mat.Dense
	sum  float64
}

// Make evaluates the elliptical Gaussian kernel for s on a grid of
// xpix by ypix cells of size cellSize, then clips and trims it. The kernel
// is centered on pixel (xpix/2, ypix/2) before trimming, and the trimmed box
// never exceeds the smaller grid dimension.
func Make(xpix, ypix int, s Spec, cellSize float64) *Kernel {
	sigMaj := s.Major / cellSize / fwhmFactor
	sigMin := s.Minor / cellSize / fwhmFactor

	rot := s.PA * math.Pi / 180
	sin, cos := math.Sincos(rot)
	sin2 := math.Sin(2 * rot)

	// Standard rotated-Gaussian quadratic form, with the major axis along
	// +y at pa = 0 and rotating toward +x as pa grows.
	a := cos*cos/(2*sigMin*sigMin) + sin*sin/(2*sigMaj*sigMaj)
	c := sin*sin/(2*sigMin*sigMin) + cos*cos/(2*sigMaj*sigMaj)
	b := sin2/(4*sigMaj*sigMaj) - sin2/(4*sigMin*sigMin)

	cx, cy := xpix/2, ypix/2
	full := mat.NewDense(xpix, ypix, nil)
	for i := 0; i < xpix; i++ {
		x := float64(i - cx)
		for j := 0; j < ypix; j++ {
			y := float64(j - cy)
			v := math.Exp(-(a*x*x + 2*b*x*y + c*y*y))
			if v < clipLevel {
				v = 0
			}
			full.Set(i, j, v)
		}
	}

	// Project onto the major axis to find the surviving extent.
	var flat []float64
	if 45 < s.PA && s.PA < 135 {
		flat = make([]float64, xpix)
		for i := range flat {
			flat[i] = floats.Sum(full.RawRowView(i))
		}
	} else {
		flat = make([]float64, ypix)
		for i := 0; i < xpix; i++ {
			row := full.RawRowView(i)
			for j, v := range row {
				flat[j] += v
			}
		}
	}

	size := oddSize(span(flat), min(xpix, ypix))
	h := size / 2
	data := mat.DenseCopyOf(full.Slice(cx-h, cx+h+1, cy-h, cy+h+1))

	return &Kernel{data: data, sum: mat.Sum(data)}
}

// span returns the index distance between the first and last positive
// entries of flat. Panics if flat has no positive entries.
func span(flat []float64) int {
	lo, hi := -1, -1
	for i, v := range flat {
		if v > 0 {
			if lo < 0 {
				lo = i
			}
			hi = i
		}
	}
	if lo < 0 {
		panic("Kernel has no support above the clip level.")
	}
	return hi - lo
}

// oddSize pads n up to the next odd kernel size, then clamps it to limit
// while keeping it odd.
func oddSize(n, limit int) int {
	if n%2 == 0 {
		n++
	} else {
		n += 2
	}
	if n > limit {
		if limit%2 == 0 {
			n = limit - 1
		} else {
			n = limit
		}
	}
	return n
}

// Dims returns the kernel box size: rows along x, columns along y.
func (k *Kernel) Dims() (int, int) {
	return k.data.Dims()
}

// At returns the kernel value at (i, j).
func (k *Kernel) At(i, j int) float64 {
	return k.data.At(i, j)
}

// Sum returns the total of all kernel values after clipping and trimming.
func (k *Kernel) Sum() float64 {
	return k.sum
}

// Peak returns the largest kernel value.
func (k *Kernel) Peak() float64 {
	return mat.Max(k.data)
}
