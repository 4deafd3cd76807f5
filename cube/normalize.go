package cube

// Normalize applies the flux calibration ladder in place. A positive
// targetFlux scales the cube to that integrated flux in Jy km/s; for a
// convolved cube the kernel sum converts the scale to per-beam units, while
// a clean cube takes the target directly. With no target flux a cube built
// from explicit cloudlet fluxes keeps its raw values, and anything else is
// scaled to unit total. An empty cube is left untouched.
func (c *Cube) Normalize(targetFlux, kernelSum, dv float64, clean, weighted bool) {
	sum := c.Sum()
	if sum == 0 {
		return
	}

	switch {
	case targetFlux > 0 && !clean:
		c.Scale(targetFlux * kernelSum / (sum * dv))
	case targetFlux > 0:
		c.Scale(targetFlux / (sum * dv))
	case weighted:
	default:
		c.Scale(1 / sum)
	}
}
