package cloud

import (
	"math"

	"github.com/takafumi291/kinms/math/rand"
)

// Streams holds the random sequences a model instance draws once and then
// reuses on every call, so that two calls with equal parameters realize the
// same cloudlets. Each of the four seed components feeds one independent
// generator: cloudlet radii, azimuths, vertical structure, and velocity
// dispersion.
type Streams struct {
	seed [4]uint64

	// RadiusU are inverse-CDF abscissas, uniform in [0, 1).
	RadiusU []float64
	// Azimuth are disc-plane azimuths, uniform in [0, 2π).
	Azimuth []float64
	// ZMag and ZSign hold unit-exponential magnitudes and fair signs for
	// scale-height offsets. Both come from the third generator, magnitudes
	// before signs.
	ZMag, ZSign []float64
	// Disp holds standard normals for dispersion sampling.
	Disp []float64
}

// NewStreams draws streams of length n for each seed component.
func NewStreams(seed [4]uint64, n int) *Streams {
	s := &Streams{seed: seed}

	genR := rand.New(seed[0])
	s.RadiusU = make([]float64, n)
	genR.UniformAt(0, 1, s.RadiusU)

	genPhi := rand.New(seed[1])
	s.Azimuth = make([]float64, n)
	genPhi.UniformAt(0, 2*math.Pi, s.Azimuth)

	genZ := rand.New(seed[2])
	s.ZMag = make([]float64, n)
	s.ZSign = make([]float64, n)
	genZ.ExpAt(s.ZMag)
	genZ.SignAt(s.ZSign)

	s.Disp = make([]float64, n)
	s.redrawDisp(n)

	return s
}

// EnsureDisp grows the dispersion stream to at least n draws. Growth redraws
// the stream from its seed, so the first len draws are unchanged and earlier
// results stay reproducible. The other streams never grow: only explicit
// cloudlet lists can exceed the instance cloud count, and those skip
// sampling. Not safe to call concurrently with model evaluation.
func (s *Streams) EnsureDisp(n int) {
	if n <= len(s.Disp) {
		return
	}
	s.Disp = make([]float64, n)
	s.redrawDisp(n)
}

func (s *Streams) redrawDisp(n int) {
	gen := rand.New(s.seed[3])
	gen.NormalAt(s.Disp[:n])
}
