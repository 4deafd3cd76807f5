/*Package cloud generates and carries the Monte-Carlo cloudlet realization of
a gas disc.

A cloudlet is a massless tracer of the disc's light. Sample draws cloudlet
positions whose surface density follows a radial brightness profile, using
random streams that are pre-drawn once per model instance so repeated calls
see identical realizations.*/
package cloud

// Set holds cloudlet positions, one coordinate slice per axis. Positions
// share units with the profiles that generated them, with z along the disc
// normal until the set is projected.
type Set struct {
	X, Y, Z []float64
}

// NewSet returns a zeroed set of n cloudlets.
func NewSet(n int) *Set {
	return &Set{
		X: make([]float64, n),
		Y: make([]float64, n),
		Z: make([]float64, n),
	}
}

// FromRows converts a list of (x, y, z) rows into a Set.
func FromRows(rows [][3]float64) *Set {
	s := NewSet(len(rows))
	for i, row := range rows {
		s.X[i], s.Y[i], s.Z[i] = row[0], row[1], row[2]
	}
	return s
}

// Len returns the number of cloudlets.
func (s *Set) Len() int {
	return len(s.X)
}

// Rows converts the set back into (x, y, z) rows.
func (s *Set) Rows() [][3]float64 {
	rows := make([][3]float64, s.Len())
	for i := range rows {
		rows[i] = [3]float64{s.X[i], s.Y[i], s.Z[i]}
	}
	return rows
}

// Scaled returns a copy of the set with every coordinate multiplied by f.
func (s *Set) Scaled(f float64) *Set {
	out := NewSet(s.Len())
	for i := range s.X {
		out.X[i] = s.X[i] * f
		out.Y[i] = s.Y[i] * f
		out.Z[i] = s.Z[i] * f
	}
	return out
}
