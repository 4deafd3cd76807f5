/*Package kinms simulates spectral data cubes of rotating gas discs.

A simulator instance fixes the observational setup: field of view, pixel
scale, channel width, beam and line spread function, and the pre-drawn
random streams that make every model deterministic. Each ModelCube call
then realizes one disc model against that setup, Monte-Carlo sampling
cloudlets from a surface-brightness profile (or taking them from the
caller), projecting them onto the sky, synthesizing line-of-sight
velocities, binning the result into a cube, and applying the instrumental
blurring and flux calibration.

	sim, err := kinms.New(kinms.Config{
		XS: 32, YS: 32, VS: 500, CellSize: 0.5, DV: 10,
		BeamSize: []float64{1},
	})
	...
	res, err := sim.ModelCube(kinms.ModelConfig{
		Inc:    profile.Constant(60),
		PosAng: profile.Constant(90),
		SBRad:  rad, SBProf: sb,
		VelProf: vel,
	})

Angles are in degrees and sky extents in angle units at the API boundary;
velocities are km/s throughout.*/
package kinms

import (
	"math"

	log "github.com/sirupsen/logrus"

	"github.com/takafumi291/kinms/beam"
	"github.com/takafumi291/kinms/cloud"
)

// DefaultNSamps is the cloudlet count used when a Config gives none.
const DefaultNSamps = 500000

// DefaultSeed seeds the four random streams when a Config gives none.
var DefaultSeed = [4]uint64{100, 101, 102, 103}

// Config fixes the observational setup of a simulator instance.
type Config struct {
	// XS, YS are the sky-plane extents of the cube in angle units and VS
	// the velocity extent in km/s.
	XS, YS, VS float64

	// CellSize is the pixel scale in angle units per pixel; DV the channel
	// width in km/s.
	CellSize, DV float64

	// BeamSize describes the synthesized beam with 1 (circular), 2
	// (major, minor) or 3 (major, minor, position angle) values, in angle
	// units and degrees. Empty means no spatial convolution.
	BeamSize []float64

	// LSFWidth is the FWHM of the line spread function in km/s; 0 disables
	// spectral convolution.
	LSFWidth float64

	// NSamps is the number of cloudlets sampled per model; 0 means
	// DefaultNSamps.
	NSamps int

	// Seed seeds the radius, azimuth, thickness and dispersion streams.
	// The zero value means DefaultSeed.
	Seed [4]uint64

	// CleanOut skips the instrumental convolution, producing the idealized
	// sky distribution. HugeBeam switches the spatial convolution to its
	// FFT path, which wins when the beam spans a large fraction of the
	// field.
	CleanOut, HugeBeam bool

	// Verbose lowers the default logger to debug level. Logger, when
	// non-nil, replaces the default logger entirely.
	Verbose bool
	Logger  *log.Logger
}

// KinMS is a simulator instance. Instances are safe for repeated use; see
// ModelCube for the one caveat about oversized explicit cloud lists.
type KinMS struct {
	cfg        Config
	nx, ny, nv int

	beamSpec beam.Spec
	hasBeam  bool
	psf      *beam.Kernel
	lsf      *beam.LSF

	streams *cloud.Streams
	log     *log.Logger
}

// New builds a simulator: it sizes the cube axes, constructs the
// instrument kernels, and draws the random streams shared by every model
// call. Configuration problems wrap ErrInvalidConfig.
func New(cfg Config) (*KinMS, error) {
	if cfg.XS <= 0 || cfg.YS <= 0 || cfg.VS <= 0 {
		return nil, errConfigf(
			"field of view %g x %g x %g must be positive on every axis",
			cfg.XS, cfg.YS, cfg.VS,
		)
	}
	if cfg.CellSize <= 0 {
		return nil, errConfigf("cell size %g must be positive", cfg.CellSize)
	}
	if cfg.DV <= 0 {
		return nil, errConfigf("channel width %g must be positive", cfg.DV)
	}
	if cfg.NSamps < 0 {
		return nil, errConfigf("cloudlet count %d must not be negative", cfg.NSamps)
	}
	if cfg.LSFWidth < 0 {
		return nil, errConfigf("lsf width %g must not be negative", cfg.LSFWidth)
	}

	if cfg.NSamps == 0 {
		cfg.NSamps = DefaultNSamps
	}
	if cfg.Seed == [4]uint64{} {
		cfg.Seed = DefaultSeed
	}

	nx := int(math.Round(cfg.XS / cfg.CellSize))
	ny := int(math.Round(cfg.YS / cfg.CellSize))
	nv := int(math.Round(cfg.VS / cfg.DV))
	if nx < 1 || ny < 1 || nv < 1 {
		return nil, errConfigf(
			"cube dimensions %d x %d x %d leave an empty axis; "+
				"grow the field of view or shrink the cells",
			nx, ny, nv,
		)
	}

	s := &KinMS{cfg: cfg, nx: nx, ny: ny, nv: nv, log: cfg.Logger}
	if s.log == nil {
		s.log = newLogger(cfg.Verbose)
	}

	if len(cfg.BeamSize) > 0 {
		spec, err := beam.ParseSpec(cfg.BeamSize)
		if err != nil {
			return nil, errConfigf("beam size: %v", err)
		}
		s.beamSpec, s.hasBeam = spec, true
		if !cfg.CleanOut {
			s.psf = beam.Make(nx, ny, spec, cfg.CellSize)
		}
	}
	if cfg.LSFWidth > 0 {
		s.lsf = beam.MakeLSF(nv, cfg.LSFWidth, cfg.DV)
	}

	s.streams = cloud.NewStreams(cfg.Seed, cfg.NSamps)

	kx, ky := -1, -1
	if s.psf != nil {
		kx, ky = s.psf.Dims()
	}
	s.log.WithFields(log.Fields{
		"dims":     []int{nx, ny, nv},
		"kernel":   []int{kx, ky},
		"nsamps":   cfg.NSamps,
		"cleanout": cfg.CleanOut,
	}).Debug("simulator ready")

	return s, nil
}

func newLogger(verbose bool) *log.Logger {
	l := log.New()
	l.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if verbose {
		l.SetLevel(log.DebugLevel)
	}
	return l
}

// Dims returns the cube dimensions in pixels and channels.
func (s *KinMS) Dims() (nx, ny, nv int) {
	return s.nx, s.ny, s.nv
}

// PSF returns the spatial kernel, or nil when the instance convolves no
// beam.
func (s *KinMS) PSF() *beam.Kernel {
	return s.psf
}

// LSF returns the spectral kernel, or nil when the instance has no line
// spread function.
func (s *KinMS) LSF() *beam.LSF {
	return s.lsf
}

// Beam returns the normalized beam specification and whether one was
// configured.
func (s *KinMS) Beam() (beam.Spec, bool) {
	return s.beamSpec, s.hasBeam
}
