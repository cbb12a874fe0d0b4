package BurgersPINN

import (
	. "github.com/gomlx/gomlx/pkg/core/graph"
	"github.com/gomlx/gomlx/pkg/core/tensors"
	"github.com/gomlx/gomlx/pkg/ml/context"
)

// Predict evaluates the trained field estimate and the PDE residual at
// arbitrary (x,t) points. The executor is built once and reused, with the
// context in reuse mode so the trained variables are looked up, not recreated.
func (c *BurgersPINN) Predict(X, T []float64) (U, F []float64) {
	c.execOnce.Do(func() {
		c.predictExec = context.MustNewExec(c.Backend, c.Ctx.Reuse(),
			func(ctx *context.Context, x, t *Node) (u, f *Node) {
				u = c.uNetwork(ctx, x, t)
				f = c.pdeResidual(ctx, x, t, u)
				return
			})
	})
	var (
		n   = len(X)
		res = c.predictExec.MustExec(
			tensors.FromFlatDataAndDimensions(toFloat32(X), n, 1),
			tensors.FromFlatDataAndDimensions(toFloat32(T), n, 1))
	)
	return columnValues(res[0]), columnValues(res[1])
}

// PredictSlice evaluates the field estimate along the position axis at one
// fixed time.
func (c *BurgersPINN) PredictSlice(t float64) (U []float64) {
	var (
		T = make([]float64, len(c.X))
	)
	for i := range T {
		T[i] = t
	}
	U, _ = c.Predict(c.X, T)
	return
}

// columnValues flattens a [N,1] float32 tensor into a float64 slice.
func columnValues(t *tensors.Tensor) (out []float64) {
	rows := t.Value().([][]float32)
	out = make([]float64, len(rows))
	for i, r := range rows {
		out[i] = float64(r[0])
	}
	return
}
