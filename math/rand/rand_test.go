package rand

import (
	"math"
	"testing"
)

func TestSeedDeterminism(t *testing.T) {
	gen1, gen2 := New(42), New(42)
	xs1, xs2 := make([]float64, 100), make([]float64, 100)
	gen1.UniformAt(0, 1, xs1)
	gen2.UniformAt(0, 1, xs2)

	for i := range xs1 {
		if xs1[i] != xs2[i] {
			t.Fatalf("%d) Generators with equal seeds diverged: %g != %g.",
				i, xs1[i], xs2[i])
		}
	}

	gen3 := New(43)
	xs3 := make([]float64, 100)
	gen3.UniformAt(0, 1, xs3)

	same := 0
	for i := range xs1 {
		if xs1[i] == xs3[i] {
			same++
		}
	}
	if same == len(xs1) {
		t.Errorf("Generators with different seeds gave identical streams.")
	}
}

func TestUniformAtRange(t *testing.T) {
	gen := New(0)
	xs := make([]float64, 10000)
	gen.UniformAt(3, 7, xs)

	sum := 0.0
	for i, x := range xs {
		if x < 3 || x >= 7 {
			t.Fatalf("%d) Uniform draw %g outside [3, 7).", i, x)
		}
		sum += x
	}

	mean := sum / float64(len(xs))
	if math.Abs(mean-5) > 0.1 {
		t.Errorf("Uniform draws on [3, 7) have mean %g, expected ~5.", mean)
	}
}

func TestNormalAtMoments(t *testing.T) {
	gen := New(7)
	xs := make([]float64, 100000)
	gen.NormalAt(xs)

	sum, sqrSum := 0.0, 0.0
	for _, x := range xs {
		sum += x
		sqrSum += x * x
	}

	n := float64(len(xs))
	mean := sum / n
	variance := sqrSum/n - mean*mean

	if math.Abs(mean) > 0.02 {
		t.Errorf("Normal draws have mean %g, expected ~0.", mean)
	}
	if math.Abs(variance-1) > 0.02 {
		t.Errorf("Normal draws have variance %g, expected ~1.", variance)
	}
}

func TestExpAtMoments(t *testing.T) {
	gen := New(11)
	xs := make([]float64, 100000)
	gen.ExpAt(xs)

	sum := 0.0
	for i, x := range xs {
		if x < 0 {
			t.Fatalf("%d) Exponential draw %g is negative.", i, x)
		}
		sum += x
	}

	mean := sum / float64(len(xs))
	if math.Abs(mean-1) > 0.02 {
		t.Errorf("Exponential draws have mean %g, expected ~1.", mean)
	}
}

func TestSignAt(t *testing.T) {
	gen := New(13)
	xs := make([]float64, 10000)
	gen.SignAt(xs)

	plus := 0
	for i, x := range xs {
		if x != 1 && x != -1 {
			t.Fatalf("%d) Sign draw %g is not +1 or -1.", i, x)
		}
		if x == 1 {
			plus++
		}
	}

	frac := float64(plus) / float64(len(xs))
	if math.Abs(frac-0.5) > 0.03 {
		t.Errorf("Sign draws are +1 with frequency %g, expected ~0.5.", frac)
	}
}

func BenchmarkUniformAt(b *testing.B) {
	gen := New(0)
	xs := make([]float64, 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		gen.UniformAt(0, 1, xs)
	}
}

func BenchmarkNormalAt(b *testing.B) {
	gen := New(0)
	xs := make([]float64, 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		gen.NormalAt(xs)
	}
}
