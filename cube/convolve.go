package cube

import (
	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/floats"

	"github.com/takafumi291/kinms/beam"
)

// ConvolveSpatial convolves every velocity channel with the beam kernel in
// place, normalizing by the kernel sum so an interior point source keeps
// its flux. Channels with no flux are left untouched and edges are zero
// padded. useFFT selects a frequency-domain convolution, which wins once
// the kernel spans a large fraction of the field.
func (c *Cube) ConvolveSpatial(k *beam.Kernel, useFFT bool) {
	norm := 1 / k.Sum()
	in := make([]float64, c.Nx*c.Ny)
	out := make([]float64, c.Nx*c.Ny)

	for iv := 0; iv < c.Nv; iv++ {
		sum := 0.0
		for ix := 0; ix < c.Nx; ix++ {
			for iy := 0; iy < c.Ny; iy++ {
				v := c.At(ix, iy, iv)
				in[ix*c.Ny+iy] = v
				sum += v
			}
		}
		if sum <= 0 {
			continue
		}

		if useFFT {
			convolveFFT(in, out, c.Nx, c.Ny, k)
		} else {
			convolveDirect(in, out, c.Nx, c.Ny, k)
		}

		for ix := 0; ix < c.Nx; ix++ {
			for iy := 0; iy < c.Ny; iy++ {
				c.Data[c.Index(ix, iy, iv)] = out[ix*c.Ny+iy] * norm
			}
		}
	}
}

// convolveDirect scatters each non-zero input pixel through the kernel.
// Binned channels are mostly zeros, so this beats the dense gather loop by
// a wide margin.
func convolveDirect(in, out []float64, nx, ny int, k *beam.Kernel) {
	kx, ky := k.Dims()
	hx, hy := kx/2, ky/2

	for i := range out {
		out[i] = 0
	}

	for ix := 0; ix < nx; ix++ {
		for iy := 0; iy < ny; iy++ {
			v := in[ix*ny+iy]
			if v == 0 {
				continue
			}
			for a := 0; a < kx; a++ {
				ox := ix + a - hx
				if ox < 0 || ox >= nx {
					continue
				}
				for b := 0; b < ky; b++ {
					oy := iy + b - hy
					if oy < 0 || oy >= ny {
						continue
					}
					out[ox*ny+oy] += v * k.At(a, b)
				}
			}
		}
	}
}

// convolveFFT multiplies the transforms of the zero-padded channel and
// kernel and extracts the same-size window of the full convolution.
func convolveFFT(in, out []float64, nx, ny int, k *beam.Kernel) {
	kx, ky := k.Dims()
	px, py := nx+kx-1, ny+ky-1

	a := make([][]complex128, px)
	b := make([][]complex128, px)
	for i := range a {
		a[i] = make([]complex128, py)
		b[i] = make([]complex128, py)
	}
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			a[i][j] = complex(in[i*ny+j], 0)
		}
	}
	for i := 0; i < kx; i++ {
		for j := 0; j < ky; j++ {
			b[i][j] = complex(k.At(i, j), 0)
		}
	}

	fa, fb := fft.FFT2(a), fft.FFT2(b)
	for i := range fa {
		for j := range fa[i] {
			fa[i][j] *= fb[i][j]
		}
	}
	res := fft.IFFT2(fa)

	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			out[i*ny+j] = real(res[i+kx/2][j+ky/2])
		}
	}
}

// ConvolveSpectral convolves every sightline with the line spread function
// in place, normalizing by its sum. Sightlines with no flux are left
// untouched.
func (c *Cube) ConvolveSpectral(l *beam.LSF) {
	nl := l.Len()
	h := nl / 2
	norm := 1 / l.Sum()
	out := make([]float64, c.Nv)

	for ix := 0; ix < c.Nx; ix++ {
		for iy := 0; iy < c.Ny; iy++ {
			spec := c.Spectrum(ix, iy)
			if floats.Sum(spec) <= 0 {
				continue
			}

			for i := range out {
				out[i] = 0
			}
			for i, v := range spec {
				if v == 0 {
					continue
				}
				for a := 0; a < nl; a++ {
					o := i + a - h
					if o < 0 || o >= c.Nv {
						continue
					}
					out[o] += v * l.At(a)
				}
			}
			for i := range spec {
				spec[i] = out[i] * norm
			}
		}
	}
}
