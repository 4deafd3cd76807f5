package kinms

import (
	"math"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/takafumi291/kinms/cloud"
	"github.com/takafumi291/kinms/cube"
	"github.com/takafumi291/kinms/geom"
	"github.com/takafumi291/kinms/profile"
	"github.com/takafumi291/kinms/velfield"
)

// ModelConfig is the complete parameter set of one disc realization.
// Sky-plane lengths are in angle units, velocities in km/s and angles in
// degrees. Profile-valued parameters sample on the rotation radius grid
// (VelRad, or SBRad standing in for it), except DiskThick which samples on
// SBRad.
type ModelConfig struct {
	// Inc and PosAng orient the disc: inclination from face-on and the
	// position angle of the receding major axis. Curves describe warps.
	Inc, PosAng profile.Param

	// GasSigma is the velocity dispersion and DiskThick the exponential
	// scale height of the disc.
	GasSigma, DiskThick profile.Param

	// SBRad, SBProf sample the surface-brightness profile on a strictly
	// ascending radius grid.
	SBRad, SBProf []float64

	// VelRad, VelProf sample the rotation curve. An empty VelRad reuses
	// SBRad.
	VelRad, VelProf []float64

	// InClouds supplies explicit cloudlet positions, bypassing the
	// sampler. VLOSClouds supplies their line-of-sight velocities,
	// bypassing the velocity field, in which case the positions are taken
	// as already projected. FluxClouds weights each explicit cloudlet.
	InClouds   *cloud.Set
	VLOSClouds []float64
	FluxClouds []float64

	// MassDist switches on gas self-gravity: exactly two values, the total
	// gas mass in solar masses and the distance in Mpc.
	MassDist []float64

	// RadialMotion, when non-nil, adds a non-circular flow to the velocity
	// field.
	RadialMotion velfield.RadialMotion

	// IntFlux, when positive, scales the cube to this integrated flux in
	// Jy km/s.
	IntFlux float64

	// PhaseCenter offsets the disc center from the cube center on the sky
	// and VOffset shifts the systemic channel in km/s. VPhaseCenter and
	// VPosAng give the kinematic center and position angle where they
	// differ from the morphological ones.
	PhaseCenter, VPhaseCenter [2]float64
	VOffset                   float64
	VPosAng                   profile.Param

	// VSys, RA, Dec, RestFreq and BUnit pass through to the result
	// metadata for the serializer and plotter collaborators.
	VSys, RA, Dec, RestFreq float64
	BUnit                   string

	// ReturnClouds asks for the realized cloudlets and their velocities in
	// the result.
	ReturnClouds bool
}

// Result is the output of one model realization.
type Result struct {
	Cube *cube.Cube

	// Clouds holds the realized cloudlets after projection, in angle
	// units, and VLOS their line-of-sight velocities. Both are nil unless
	// the model asked for them.
	Clouds *cloud.Set
	VLOS   []float64

	Meta Metadata
}

func (mc *ModelConfig) validate(nSamps int) error {
	explicit := mc.InClouds != nil && mc.InClouds.Len() > 0
	nClouds := nSamps
	if explicit {
		nClouds = mc.InClouds.Len()
	}

	if !explicit {
		if len(mc.SBRad) == 0 || len(mc.SBProf) == 0 {
			return errConfigf(
				"give either explicit cloudlets or a brightness profile",
			)
		}
		if len(mc.SBRad) != len(mc.SBProf) {
			return errConfigf(
				"brightness profile has %d values for %d radii",
				len(mc.SBProf), len(mc.SBRad),
			)
		}
		if !profile.StrictlyAscending(mc.SBRad) {
			return errConfigf("brightness radius grid must be strictly ascending")
		}
		if mc.DiskThick.Len() > 1 && mc.DiskThick.Len() != len(mc.SBRad) {
			return errConfigf(
				"thickness profile has %d values for %d brightness radii",
				mc.DiskThick.Len(), len(mc.SBRad),
			)
		}
	}

	if len(mc.FluxClouds) > 0 {
		if !explicit {
			return errConfigf("flux weights need explicit cloudlets")
		}
		if len(mc.FluxClouds) != nClouds {
			return errConfigf(
				"%d flux weights for %d cloudlets",
				len(mc.FluxClouds), nClouds,
			)
		}
	}

	if len(mc.MassDist) > 0 && len(mc.MassDist) != 2 {
		return errConfigf(
			"mass distribution takes exactly two values, "+
				"total mass and distance; got %d",
			len(mc.MassDist),
		)
	}

	if len(mc.VLOSClouds) > 0 {
		if len(mc.VLOSClouds) != nClouds {
			return errConfigf(
				"%d los velocities for %d cloudlets",
				len(mc.VLOSClouds), nClouds,
			)
		}
		return nil
	}

	if len(mc.VelProf) == 0 {
		return errConfigf(
			"give either explicit los velocities or a rotation profile",
		)
	}
	velRad := mc.VelRad
	if len(velRad) == 0 {
		velRad = mc.SBRad
	}
	if len(velRad) == 0 {
		return errConfigf("the rotation profile needs a radius grid")
	}
	if len(velRad) != len(mc.VelProf) {
		return errConfigf(
			"rotation profile has %d values for %d radii",
			len(mc.VelProf), len(velRad),
		)
	}
	if !profile.StrictlyAscending(velRad) {
		return errConfigf("rotation radius grid must be strictly ascending")
	}

	for _, p := range []struct {
		name  string
		param profile.Param
	}{
		{"inclination", mc.Inc},
		{"position angle", mc.PosAng},
		{"kinematic position angle", mc.VPosAng},
		{"dispersion", mc.GasSigma},
	} {
		if p.param.Len() > 1 && p.param.Len() != len(velRad) {
			return errConfigf(
				"%s profile has %d values for %d rotation radii",
				p.name, p.param.Len(), len(velRad),
			)
		}
	}

	return nil
}

// ModelCube realizes one disc model and returns the finished cube.
//
// The call reuses the instance's pre-drawn random streams without
// consuming them, so every call with equal inputs yields an identical
// cube. The one exception to read-only stream use: an explicit cloud list
// longer than the instance's cloudlet count grows the dispersion stream in
// place (deterministically), so such calls must not run concurrently with
// others on the same instance.
func (s *KinMS) ModelCube(mc ModelConfig) (*Result, error) {
	if err := mc.validate(s.cfg.NSamps); err != nil {
		return nil, err
	}
	start := time.Now()

	cell := s.cfg.CellSize
	cent := [3]float64{
		float64(s.nx)/2 + mc.PhaseCenter[0]/cell,
		float64(s.ny)/2 + mc.PhaseCenter[1]/cell,
		float64(s.nv)/2 + mc.VOffset/s.cfg.DV,
	}

	// Cloudlet positions in pixel units.
	explicit := mc.InClouds != nil && mc.InClouds.Len() > 0
	var pix *cloud.Set
	if explicit {
		pix = mc.InClouds.Scaled(1 / cell)
	} else {
		sampled := cloud.Sample(
			mc.SBRad, mc.SBProf, mc.DiskThick, s.cfg.NSamps, s.streams,
		)
		pix = sampled.Scaled(1 / cell)
	}
	n := pix.Len()

	rFlat := make([]float64, n)
	for i := range rFlat {
		rFlat[i] = math.Hypot(pix.X[i], pix.Y[i])
	}
	sampleDone := time.Now()

	var los []float64
	if len(mc.VLOSClouds) > 0 {
		// The caller projected these cloudlets already.
		los = append([]float64(nil), mc.VLOSClouds...)
	} else {
		velRad := mc.VelRad
		if len(velRad) == 0 {
			velRad = mc.SBRad
		}
		velProf := append([]float64(nil), mc.VelProf...)

		if len(mc.MassDist) == 2 {
			velfield.AugmentRotation(
				velRad, velProf,
				scaled(pix.X, cell), scaled(pix.Y, cell), scaled(pix.Z, cell),
				mc.MassDist[0], mc.MassDist[1],
			)
		}

		velRadPix := scaled(velRad, 1/cell)
		posAng := mc.PosAng.ResolveAt(velRadPix, rFlat)
		inc := mc.Inc.ResolveAt(velRadPix, rFlat)

		s.streams.EnsureDisp(n)
		los = velfield.Compute(&velfield.Params{
			X: pix.X, Y: pix.Y, RFlat: rFlat,
			VelRad: velRadPix, VelProf: velProf,
			PosAng: posAng, Inc: inc,
			GasSigma: mc.GasSigma, VPosAng: mc.VPosAng,
			VPhaseCenter: [2]float64{
				mc.VPhaseCenter[0] / cell, mc.VPhaseCenter[1] / cell,
			},
			Disp:         s.streams.Disp[:n],
			RadialMotion: mc.RadialMotion,
			CellSize:     cell,
		})

		geom.ProjectInclination(inc, pix.Y, pix.Z)
		geom.RotatePositionAngle(posAng, pix.X, pix.Y)
	}
	velDone := time.Now()

	var flux []float64
	if len(mc.FluxClouds) > 0 {
		flux = mc.FluxClouds
	}
	c, binned := cube.Voxelize(
		pix.X, pix.Y, los, cent,
		s.nx, s.ny, s.nv, s.cfg.DV, flux,
	)
	binDone := time.Now()

	if s.psf != nil {
		c.ConvolveSpatial(s.psf, s.cfg.HugeBeam)
	}
	if s.lsf != nil {
		c.ConvolveSpectral(s.lsf)
	}

	kernelSum := 1.0
	if s.psf != nil {
		kernelSum = s.psf.Sum()
	}
	clean := s.psf == nil
	c.Normalize(mc.IntFlux, kernelSum, s.cfg.DV, clean, len(mc.FluxClouds) > 0)

	s.log.WithFields(log.Fields{
		"clouds":   n,
		"binned":   binned,
		"sample":   sampleDone.Sub(start),
		"velocity": velDone.Sub(sampleDone),
		"binning":  binDone.Sub(velDone),
		"convolve": time.Since(binDone),
	}).Debug("cube assembled")

	meta := Metadata{
		CellSize: cell,
		DV:       s.cfg.DV,
		VSys:     mc.VSys,
		RestFreq: mc.RestFreq,
		RA:       mc.RA,
		Dec:      mc.Dec,
		RefPixel: [3]float64{
			float64(s.nx / 2), float64(s.ny / 2), cent[2],
		},
		BUnit: mc.BUnit,
		Beam:  s.beamSpec,
	}
	if meta.RestFreq == 0 {
		meta.RestFreq = DefaultRestFreq
	}
	if meta.BUnit == "" {
		meta.BUnit = "Jy/beam"
	}

	res := &Result{Cube: c, Meta: meta}
	if mc.ReturnClouds {
		res.Clouds = pix.Scaled(cell)
		res.VLOS = los
	}
	return res, nil
}

func scaled(xs []float64, f float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = x * f
	}
	return res
}
