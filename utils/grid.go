package utils

import (
	"gonum.org/v1/gonum/mat"
)

/*
Grid helpers for model problems trained on a space-time sample grid.

The flattened ordering is time major: with Nx positions and Nt times, flat
index k maps to position i = k % Nx and time j = k / Nx, so a contiguous run
of Nx entries is one time snapshot. This matches the layout of a solution
matrix U(Nx x Nt) transposed and flattened row by row.
*/

// MeshgridFlat expands the position and time axes into flat coordinate
// vectors of length Nx*Nt, time major.
func MeshgridFlat(X, T []float64) (XF, TF []float64) {
	var (
		Nx, Nt = len(X), len(T)
	)
	XF = make([]float64, Nx*Nt)
	TF = make([]float64, Nx*Nt)
	for j := 0; j < Nt; j++ {
		for i := 0; i < Nx; i++ {
			XF[j*Nx+i] = X[i]
			TF[j*Nx+i] = T[j]
		}
	}
	return
}

// FlattenTimeMajor flattens the Nx x Nt solution matrix into the time major
// ordering produced by MeshgridFlat.
func FlattenTimeMajor(U *mat.Dense) (UF []float64) {
	var (
		Nx, Nt = U.Dims()
	)
	UF = make([]float64, Nx*Nt)
	for j := 0; j < Nt; j++ {
		for i := 0; i < Nx; i++ {
			UF[j*Nx+i] = U.At(i, j)
		}
	}
	return
}

// Bounds returns the elementwise min and max of a coordinate vector.
func Bounds(V []float64) (lo, hi float64) {
	lo, hi = V[0], V[0]
	for _, v := range V[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return
}
