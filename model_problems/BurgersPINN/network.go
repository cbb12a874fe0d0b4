package BurgersPINN

import (
	"fmt"

	. "github.com/gomlx/gomlx/pkg/core/graph"
	"github.com/gomlx/gomlx/pkg/ml/context"
	"github.com/gomlx/gomlx/pkg/ml/layers"
	"github.com/gomlx/gomlx/pkg/ml/train/losses"
)

// uNetwork is the function approximator u_θ(x,t): a dense stack of
// HiddenLayers tanh layers of HiddenWidth, with a linear readout. x and t are
// column vectors [N,1]; the return is the predicted field, also [N,1].
func (c *BurgersPINN) uNetwork(ctx *context.Context, x, t *Node) *Node {
	h := Concatenate([]*Node{x, t}, -1)
	for i := 0; i < c.IP.HiddenLayers; i++ {
		h = Tanh(layers.DenseWithBias(ctx.In(fmt.Sprintf("dense_%d", i)), h, c.IP.HiddenWidth))
	}
	return layers.DenseWithBias(ctx.In("dense_out"), h, 1)
}

// coefficients returns the graph nodes for λ1 and λ2 = exp(λ2_log). Both raw
// scalars live in the "inverse" scope and are optimized jointly with the
// network weights.
func (c *BurgersPINN) coefficients(ctx *context.Context, g *Graph) (lambda1, lambda2 *Node) {
	inv := ctx.In("inverse")
	l1 := inv.VariableWithValue("lambda1", float32(c.IP.Lambda1Init))
	l2 := inv.VariableWithValue("lambda2_log", float32(c.IP.Lambda2LogInit))
	lambda1 = l1.ValueGraph(g)
	lambda2 = Exp(l2.ValueGraph(g))
	return
}

// pdeResidual evaluates f_θ = u_t + λ1 u u_x - λ2 u_xx at the collocation
// points. u must be the network output for (x,t) in the same graph. Each
// derivative comes from differentiating the sum of the output over the batch:
// since sample i depends only on (x_i,t_i), the gradient of the sum with
// respect to x recovers the per-sample ∂u/∂x. The second derivative
// differentiates the first gradient's nodes again.
func (c *BurgersPINN) pdeResidual(ctx *context.Context, x, t, u *Node) *Node {
	var (
		g = u.Graph()
	)
	lambda1, lambda2 := c.coefficients(ctx, g)
	ux := Gradient(ReduceAllSum(u), x)[0]
	uxx := Gradient(ReduceAllSum(ux), x)[0]
	ut := Gradient(ReduceAllSum(u), t)[0]
	return Sub(Add(ut, Mul(lambda1, Mul(u, ux))), Mul(lambda2, uxx))
}

// trainGraph is the model function handed to the trainer: predictions[0] is
// the field estimate at the data points, predictions[1] the PDE residual at
// the collocation points (the same points, see package comment).
func (c *BurgersPINN) trainGraph(ctx *context.Context, _ any, inputs []*Node) []*Node {
	x, t := inputs[0], inputs[1]
	u := c.uNetwork(ctx, x, t)
	f := c.pdeResidual(ctx, x, t, u)
	return []*Node{u, f}
}

// pinnLoss combines the data mismatch with the physics mismatch. The
// optimizer sees a single scalar, so its gradient flows into the network
// weights through both terms and into λ1, λ2 through the residual.
func pinnLoss(labels, predictions []*Node) *Node {
	dataLoss := losses.MeanSquaredError(labels, predictions[:1])
	residualLoss := ReduceAllMean(Square(predictions[1]))
	return Add(dataLoss, residualLoss)
}
