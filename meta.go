package kinms

import (
	"github.com/takafumi291/kinms/beam"
	"github.com/takafumi291/kinms/cube"
)

// DefaultRestFreq is the line rest frequency assumed when a model gives
// none: the 230.542 GHz CO(2-1) transition.
const DefaultRestFreq = 230.542e9

// Metadata carries everything an external serializer or plotter needs to
// interpret a cube beyond its raw voxels.
type Metadata struct {
	// CellSize is the pixel scale in angle units and DV the channel width
	// in km/s.
	CellSize, DV float64

	// VSys is the systemic velocity in km/s and RestFreq the line rest
	// frequency in Hz.
	VSys, RestFreq float64

	// RA and Dec locate the phase center on the sky, in degrees.
	RA, Dec float64

	// RefPixel is the zero-based reference voxel: the spatial center pixel
	// on both sky axes and the channel holding the systemic velocity.
	RefPixel [3]float64

	// BUnit names the unit of the voxel values.
	BUnit string

	// Beam is the beam the cube was convolved with, zero for clean output.
	Beam beam.Spec
}

// CubeWriter serializes a finished cube, typically to a FITS file with a
// header built from the metadata.
type CubeWriter interface {
	WriteCube(c *cube.Cube, meta Metadata) error
}

// CubePlotter renders a finished cube for visual inspection.
type CubePlotter interface {
	PlotCube(c *cube.Cube, meta Metadata) error
}
