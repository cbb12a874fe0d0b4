package utils

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestGridHelpers(t *testing.T) {
	{ // Meshgrid flatten is time major
		X := []float64{-1, 0, 1}
		T := []float64{0, 0.5}
		XF, TF := MeshgridFlat(X, T)
		assert.Equal(t, []float64{-1, 0, 1, -1, 0, 1}, XF)
		assert.Equal(t, []float64{0, 0, 0, 0.5, 0.5, 0.5}, TF)
	}
	{ // Solution flatten matches the meshgrid ordering
		// U(Nx=2, Nt=3), U[i][j] = 10*i + j
		U := mat.NewDense(2, 3, []float64{0, 1, 2, 10, 11, 12})
		UF := FlattenTimeMajor(U)
		assert.Equal(t, []float64{0, 10, 1, 11, 2, 12}, UF)
	}
	{ // Bounds
		lo, hi := Bounds([]float64{0.5, -1, 1, 0})
		assert.Equal(t, -1., lo)
		assert.Equal(t, 1., hi)
	}
}

func TestSampling(t *testing.T) {
	var (
		rnd = rand.New(rand.NewSource(1234))
	)
	{ // Distinct, in-range, right count
		idx := SampleWithoutReplacement(100, 30, rnd)
		assert.Equal(t, 30, len(idx))
		seen := make(map[int]bool)
		for _, i := range idx {
			assert.True(t, i >= 0 && i < 100)
			assert.False(t, seen[i])
			seen[i] = true
		}
	}
	{ // k > n clamps to n
		idx := SampleWithoutReplacement(5, 10, rnd)
		assert.Equal(t, 5, len(idx))
	}
	{ // Deterministic under a fixed seed
		a := SampleWithoutReplacement(50, 10, rand.New(rand.NewSource(42)))
		b := SampleWithoutReplacement(50, 10, rand.New(rand.NewSource(42)))
		assert.Equal(t, a, b)
	}
	{ // Zero amplitude noise is a no-op
		U := []float64{1, 2, 3}
		AddGaussianNoise(U, 0, rnd)
		assert.Equal(t, []float64{1, 2, 3}, U)
	}
	{ // Nonzero noise perturbs with the right scale
		U := make([]float64, 10000)
		for i := range U {
			U[i] = float64(i % 7)
		}
		V := append([]float64{}, U...)
		AddGaussianNoise(V, 0.1, rand.New(rand.NewSource(7)))
		assert.NotEqual(t, U, V)
		residual := RelativeL2(V, U)
		assert.True(t, residual > 0 && residual < 0.2)
	}
}

func TestNorms(t *testing.T) {
	{ // Identical fields have zero error
		assert.Equal(t, 0., RelativeL2([]float64{1, 2, 3}, []float64{1, 2, 3}))
	}
	{ // Known ratio
		exact := []float64{3, 4} // norm 5
		pred := []float64{3, 4.5}
		assert.InDelta(t, 0.1, RelativeL2(pred, exact), 1.e-12)
	}
	{ // Percent error
		assert.InDelta(t, 5, PercentError(1.05, 1.0), 1.e-12)
		assert.InDelta(t, 50, PercentError(0.005, 0.01), 1.e-12)
	}
}

func TestScatteredInterpolation(t *testing.T) {
	// Random cloud in the unit square carrying an affine field, which
	// piecewise linear interpolation must reproduce exactly inside the hull.
	var (
		rnd     = rand.New(rand.NewSource(99))
		n       = 400
		X, Y, V = make([]float64, n), make([]float64, n), make([]float64, n)
		f       = func(x, y float64) float64 { return 2*x - 3*y + 0.5 }
	)
	// Pin the square corners so the hull covers the test grid
	corners := [][2]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	for i := 0; i < n; i++ {
		if i < len(corners) {
			X[i], Y[i] = corners[i][0], corners[i][1]
		} else {
			X[i], Y[i] = rnd.Float64(), rnd.Float64()
		}
		V[i] = f(X[i], Y[i])
	}
	si := NewScatteredInterpolator(X, Y, V)
	{ // Exact at the data points
		for i := 0; i < 20; i++ {
			v, ok := si.At(X[i], Y[i])
			assert.True(t, ok)
			assert.InDelta(t, V[i], v, 1.e-9)
		}
	}
	{ // Exact on a grid inside the hull
		gx := []float64{0.1, 0.3, 0.5, 0.7, 0.9}
		gy := []float64{0.2, 0.4, 0.6, 0.8}
		U := si.Grid(gx, gy)
		for i, x := range gx {
			for j, y := range gy {
				assert.InDelta(t, f(x, y), U.At(i, j), 1.e-9)
			}
		}
	}
	{ // NaN outside the hull
		v, ok := si.At(5, 5)
		assert.False(t, ok)
		assert.True(t, math.IsNaN(v))
	}
}
