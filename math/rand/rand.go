/*Package rand provides seeded random variate streams for Monte-Carlo
sampling.

Here are some usage examples.

	// Generate a single value
	gen := New(1337)
	x := gen.Uniform(3, 7)

	// Multiple random floats (faster)
	xs := make([]float64, 100)
	gen.UniformAt(3, 7, xs)

	// Standard normals
	gen.NormalAt(xs)

A Generator draws every variate from one underlying PCG source, so a given
seed always replays the same sequence of calls, and generators created with
distinct seeds give independent streams.*/
package rand

import (
	exprand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Generator is a seeded random variate generator.
type Generator struct {
	uniform distuv.Uniform
	normal  distuv.Normal
	expon   distuv.Exponential
}

// New returns a new random variate generator.
func New(seed uint64) *Generator {
	src := exprand.NewSource(seed)
	return &Generator{
		uniform: distuv.Uniform{Min: 0, Max: 1, Src: src},
		normal:  distuv.Normal{Mu: 0, Sigma: 1, Src: src},
		expon:   distuv.Exponential{Rate: 1, Src: src},
	}
}

// Uniform returns a float uniformly at random within the range [low, high).
func (gen *Generator) Uniform(low, high float64) float64 {
	if low == 0.0 && high == 1.0 {
		return gen.uniform.Rand()
	}
	return gen.uniform.Rand()*(high-low) + low
}

// UniformAt writes floats generated uniformly at random in the range
// [low, high) to every element in a target slice. This is generally faster
// than calling Uniform the corresponding number of times.
func (gen *Generator) UniformAt(low, high float64, target []float64) {
	for i := range target {
		target[i] = gen.uniform.Rand()
	}
	if low == 0.0 && high == 1.0 {
		return
	}
	for i := range target {
		target[i] = target[i]*(high-low) + low
	}
}

// NormalAt writes standard normal variates to every element in a target
// slice.
func (gen *Generator) NormalAt(target []float64) {
	for i := range target {
		target[i] = gen.normal.Rand()
	}
}

// ExpAt writes unit-rate exponential variates to every element in a target
// slice.
func (gen *Generator) ExpAt(target []float64) {
	for i := range target {
		target[i] = gen.expon.Rand()
	}
}

// SignAt writes fair coin flips, +1 or -1, to every element in a target
// slice.
func (gen *Generator) SignAt(target []float64) {
	for i := range target {
		if gen.uniform.Rand() < 0.5 {
			target[i] = -1
		} else {
			target[i] = 1
		}
	}
}
