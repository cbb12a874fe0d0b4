package utils

import (
	"math/rand"

	"gonum.org/v1/gonum/stat"
)

// SampleWithoutReplacement draws k distinct indices from [0,n).
func SampleWithoutReplacement(n, k int, rnd *rand.Rand) (idx []int) {
	if k > n {
		k = n
	}
	idx = rnd.Perm(n)[:k]
	return
}

// AddGaussianNoise perturbs each sample by amp * stddev(U) * N(0,1),
// matching the noisy-data experiments of the reference problem. amp = 0 is a
// no-op.
func AddGaussianNoise(U []float64, amp float64, rnd *rand.Rand) {
	if amp == 0 {
		return
	}
	sigma := stat.StdDev(U, nil)
	for i := range U {
		U[i] += amp * sigma * rnd.NormFloat64()
	}
}
