package utils

import (
	"math"
	"runtime"
	"sync"

	"github.com/pradeep-pyro/triangle"
	"gonum.org/v1/gonum/mat"
)

/*
Scattered-data interpolation onto a regular grid.

The point cloud is Delaunay triangulated, then each query point is located in
its containing triangle and evaluated by barycentric (piecewise linear)
interpolation. Queries outside the convex hull return NaN. Triangle location
uses a uniform bin index over triangle bounding boxes so full grid queries
stay close to linear in the number of grid points.
*/

type ScatteredInterpolator struct {
	pts   [][2]float64
	vals  []float64
	faces [][3]int32
	// uniform bin index over triangle bounding boxes
	nbx, nby int
	x0, y0   float64
	dx, dy   float64
	bins     [][]int32
}

// NewScatteredInterpolator triangulates the point set (X[i], Y[i]) carrying
// values V[i]. The three slices must have equal length >= 3.
func NewScatteredInterpolator(X, Y, V []float64) (si *ScatteredInterpolator) {
	var (
		n = len(X)
	)
	si = &ScatteredInterpolator{
		pts:  make([][2]float64, n),
		vals: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		si.pts[i] = [2]float64{X[i], Y[i]}
		si.vals[i] = V[i]
	}
	si.faces = triangle.Delaunay(si.pts)
	si.buildIndex()
	return
}

func (si *ScatteredInterpolator) buildIndex() {
	var (
		xlo, xhi = Bounds(column(si.pts, 0))
		ylo, yhi = Bounds(column(si.pts, 1))
	)
	// Roughly one triangle per bin
	nb := int(math.Sqrt(float64(len(si.faces)))) + 1
	si.nbx, si.nby = nb, nb
	si.x0, si.y0 = xlo, ylo
	si.dx = (xhi - xlo) / float64(nb)
	si.dy = (yhi - ylo) / float64(nb)
	if si.dx == 0 {
		si.dx = 1
	}
	if si.dy == 0 {
		si.dy = 1
	}
	si.bins = make([][]int32, nb*nb)
	for f, face := range si.faces {
		var (
			fxlo, fxhi = math.Inf(1), math.Inf(-1)
			fylo, fyhi = math.Inf(1), math.Inf(-1)
		)
		for _, vi := range face {
			p := si.pts[vi]
			fxlo, fxhi = math.Min(fxlo, p[0]), math.Max(fxhi, p[0])
			fylo, fyhi = math.Min(fylo, p[1]), math.Max(fyhi, p[1])
		}
		bx0, by0 := si.binOf(fxlo, fylo)
		bx1, by1 := si.binOf(fxhi, fyhi)
		for by := by0; by <= by1; by++ {
			for bx := bx0; bx <= bx1; bx++ {
				si.bins[by*si.nbx+bx] = append(si.bins[by*si.nbx+bx], int32(f))
			}
		}
	}
}

func (si *ScatteredInterpolator) binOf(x, y float64) (bx, by int) {
	bx = int((x - si.x0) / si.dx)
	by = int((y - si.y0) / si.dy)
	if bx < 0 {
		bx = 0
	}
	if bx >= si.nbx {
		bx = si.nbx - 1
	}
	if by < 0 {
		by = 0
	}
	if by >= si.nby {
		by = si.nby - 1
	}
	return
}

// At evaluates the interpolant. ok is false outside the convex hull.
func (si *ScatteredInterpolator) At(x, y float64) (v float64, ok bool) {
	var (
		bx, by = si.binOf(x, y)
	)
	for _, f := range si.bins[by*si.nbx+bx] {
		face := si.faces[f]
		a, b, c := si.pts[face[0]], si.pts[face[1]], si.pts[face[2]]
		w0, w1, w2, inside := barycentric(a, b, c, x, y)
		if inside {
			v = w0*si.vals[face[0]] + w1*si.vals[face[1]] + w2*si.vals[face[2]]
			return v, true
		}
	}
	return math.NaN(), false
}

// Grid evaluates the interpolant on the tensor grid (X[i], Y[j]), returning a
// len(X) x len(Y) matrix. Points outside the hull hold NaN.
func (si *ScatteredInterpolator) Grid(X, Y []float64) (U *mat.Dense) {
	var (
		wg sync.WaitGroup
		pm = NewPartitionMap(runtime.NumCPU(), len(Y))
	)
	U = mat.NewDense(len(X), len(Y), nil)
	for n := 0; n < pm.ParallelDegree; n++ {
		jMin, jMax := pm.GetBucketRange(n)
		wg.Add(1)
		go func(jMin, jMax int) {
			defer wg.Done()
			for j := jMin; j < jMax; j++ {
				for i, x := range X {
					v, ok := si.At(x, Y[j])
					if !ok {
						v = math.NaN()
					}
					U.Set(i, j, v)
				}
			}
		}(jMin, jMax)
	}
	wg.Wait()
	return
}

// barycentric solves for the weights of (x,y) in triangle (a,b,c). inside
// allows a small negative tolerance so hull edges and vertices are kept.
func barycentric(a, b, c [2]float64, x, y float64) (w0, w1, w2 float64, inside bool) {
	var (
		det = (b[1]-c[1])*(a[0]-c[0]) + (c[0]-b[0])*(a[1]-c[1])
		eps = 1.e-12
	)
	if math.Abs(det) < eps {
		return
	}
	w0 = ((b[1]-c[1])*(x-c[0]) + (c[0]-b[0])*(y-c[1])) / det
	w1 = ((c[1]-a[1])*(x-c[0]) + (a[0]-c[0])*(y-c[1])) / det
	w2 = 1 - w0 - w1
	tol := -1.e-9
	inside = w0 >= tol && w1 >= tol && w2 >= tol
	return
}

func column(pts [][2]float64, d int) (col []float64) {
	col = make([]float64, len(pts))
	for i, p := range pts {
		col[i] = p[d]
	}
	return
}
