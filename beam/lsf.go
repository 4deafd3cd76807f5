package beam

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// LSF is a 1D spectral convolution kernel, normalized to unit sum before
// trimming, with its peak at the central channel of an odd-length window.
type LSF struct {
	vals []float64
	sum  float64
}

// MakeLSF evaluates the Gaussian line spread function of the given FWHM on
// vpix channels of width dv, then clips, normalizes and trims it the same
// way Make treats the spatial kernel.
func MakeLSF(vpix int, fwhm, dv float64) *LSF {
	sig := fwhm / dv / fwhmFactor
	cv := vpix / 2

	vals := make([]float64, vpix)
	for i := range vals {
		x := float64(i-cv) / sig
		v := math.Exp(-0.5 * x * x)
		if v < clipLevel {
			v = 0
		}
		vals[i] = v
	}
	floats.Scale(1/floats.Sum(vals), vals)

	size := oddSize(span(vals), vpix)
	h := size / 2
	vals = vals[cv-h : cv+h+1]

	return &LSF{vals: vals, sum: floats.Sum(vals)}
}

// Len returns the trimmed kernel length.
func (l *LSF) Len() int {
	return len(l.vals)
}

// At returns the kernel value at channel i.
func (l *LSF) At(i int) float64 {
	return l.vals[i]
}

// Sum returns the total of all kernel values after trimming. It falls
// slightly below 1 when trimming removes clipped wings.
func (l *LSF) Sum() float64 {
	return l.sum
}
