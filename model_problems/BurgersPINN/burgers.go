package BurgersPINN

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/gomlx/gomlx/backends"
	"github.com/gomlx/gomlx/pkg/ml/context"
	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gopinn/InputParameters"
	"github.com/notargets/gopinn/readfiles"
	"github.com/notargets/gopinn/utils"

	_ "github.com/gomlx/gomlx/backends/default"
)

/*
The 1D viscous Burgers equation is:

				∂u/∂t + λ1 u ∂u/∂x - λ2 ∂²u/∂x² = 0

The inverse (identification) problem: given sparse, possibly noisy samples of
the solution field u(x,t), recover both the field and the two coefficients
λ1 (advection) and λ2 (viscosity). A neural network u_θ(x,t) approximates the
field, and λ1, λ2 are appended to the trainable parameter set. The training
loss is:

				MSE_u + MSE_f

				MSE_u = mean( (u_θ(x_i,t_i) - u_i)² )         data mismatch
				MSE_f = mean( f_θ(x_i,t_i)² )                 physics mismatch

				f_θ = ∂u_θ/∂t + λ1 u_θ ∂u_θ/∂x - λ2 ∂²u_θ/∂x²

The derivatives of u_θ with respect to its own inputs are exact, obtained by
differentiating the computation graph: one reverse pass for ∂u/∂x and ∂u/∂t,
and a second reverse pass through the first for ∂²u/∂x². Because the gradient
nodes are ordinary graph nodes, the optimizer differentiates the whole loss -
including the residual term - jointly with respect to the network weights and
both coefficients.

λ2 must be positive for the PDE to be well posed (it is a diffusivity), so the
raw trainable scalar is its logarithm and the residual uses exp(λ2_log).

Collocation points coincide with the data points: the same (x_i,t_i) pairs
penalize both mismatches. The reference data set is the shock forming solution
on x ∈ [-1,1], t ∈ [0,1] with λ1 = 1 and λ2 = 0.01/π.
*/

// True coefficients of the reference data set, used for the error report.
const (
	TrueLambda1 = 1.0
	TrueLambda2 = 0.01 / 3.141592653589793
)

type BurgersPINN struct {
	// Input parameters
	IP      *InputParameters.InputParametersPINN
	PlotDir string
	Backend backends.Backend
	Ctx     *context.Context
	// Full space-time grid and exact solution, time major flattening
	X, T                []float64 // Axes, Nx and Nt long
	XStar, TStar, UStar []float64 // Nx*Nt long
	Nx, Nt              int
	// Training subset, doubling as the collocation points
	XTrain, TTrain, UTrain []float64
	// Live plotting
	PlotOnce    sync.Once
	chart       *chart2d.Chart2D
	colorMap    *utils2.ColorMap
	execOnce    sync.Once
	predictExec *context.Exec
}

// NewBurgersPINN reads the solution data file, assembles the space-time grid
// and draws the training sample.
func NewBurgersPINN(ip *InputParameters.InputParametersPINN, dataFile, plotDir string) (c *BurgersPINN, err error) {
	c = &BurgersPINN{
		IP:      ip,
		PlotDir: plotDir,
	}
	var U *mat.Dense
	if c.X, c.T, U, err = readfiles.ReadBurgersMat(dataFile, true); err != nil {
		return nil, err
	}
	c.Nx, c.Nt = len(c.X), len(c.T)
	c.XStar, c.TStar = utils.MeshgridFlat(c.X, c.T)
	c.UStar = utils.FlattenTimeMajor(U)
	var (
		rnd = rand.New(rand.NewSource(ip.Seed))
	)
	xlo, xhi := utils.Bounds(c.X)
	tlo, thi := utils.Bounds(c.T)
	fmt.Printf("Domain bounds: x ∈ [%8.5f,%8.5f], t ∈ [%8.5f,%8.5f]\n", xlo, xhi, tlo, thi)

	idx := utils.SampleWithoutReplacement(len(c.XStar), ip.NU, rnd)
	c.XTrain = make([]float64, len(idx))
	c.TTrain = make([]float64, len(idx))
	c.UTrain = make([]float64, len(idx))
	for i, k := range idx {
		c.XTrain[i] = c.XStar[k]
		c.TTrain[i] = c.TStar[k]
		c.UTrain[i] = c.UStar[k]
	}
	utils.AddGaussianNoise(c.UTrain, ip.Noise, rnd)

	c.Backend = backends.MustNew()
	c.Ctx = context.New()
	return
}
