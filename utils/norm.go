package utils

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// RelativeL2 returns ||pred - exact||_2 / ||exact||_2.
func RelativeL2(pred, exact []float64) float64 {
	var (
		diff = make([]float64, len(exact))
	)
	floats.SubTo(diff, pred, exact)
	return floats.Norm(diff, 2) / floats.Norm(exact, 2)
}

// PercentError returns 100 * |est - exact| / |exact|.
func PercentError(est, exact float64) float64 {
	return 100 * math.Abs(est-exact) / math.Abs(exact)
}
