package BurgersPINN

import (
	"math"
	"math/rand"
	"testing"

	"github.com/gomlx/gomlx/backends"
	"github.com/gomlx/gomlx/pkg/ml/context"
	"github.com/gomlx/gomlx/pkg/ml/train"
	"github.com/gomlx/gomlx/pkg/ml/train/optimizers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gopinn/InputParameters"
	"github.com/notargets/gopinn/utils"

	_ "github.com/gomlx/gomlx/backends/simplego"
)

// newTestProblem builds a small synthetic identification problem: a smooth
// decaying wave sampled on a coarse grid, with a reduced network so training
// steps stay cheap on the pure Go backend.
func newTestProblem(t *testing.T) (c *BurgersPINN) {
	// Force the pure Go backend: the binary registers XLA as the default,
	// which needs a PJRT plugin the test machines don't have.
	t.Setenv("GOMLX_BACKEND", "go")
	var (
		Nx, Nt = 16, 8
		ip     = InputParameters.NewInputParametersPINN()
	)
	ip.NU = 64
	ip.Epochs = 50
	ip.HiddenLayers = 2
	ip.HiddenWidth = 8
	ip.LogFrequency = 1000

	c = &BurgersPINN{
		IP:      ip,
		PlotDir: t.TempDir(),
		Backend: backends.MustNew(),
		Ctx:     context.New(),
		Nx:      Nx,
		Nt:      Nt,
	}
	c.X = make([]float64, Nx)
	for i := range c.X {
		c.X[i] = -1 + 2*float64(i)/float64(Nx-1)
	}
	c.T = make([]float64, Nt)
	for j := range c.T {
		c.T[j] = float64(j) / float64(Nt-1)
	}
	c.XStar, c.TStar = utils.MeshgridFlat(c.X, c.T)
	c.UStar = make([]float64, len(c.XStar))
	for k := range c.UStar {
		c.UStar[k] = -math.Sin(math.Pi*c.XStar[k]) * math.Exp(-c.TStar[k])
	}

	rnd := rand.New(rand.NewSource(ip.Seed))
	idx := utils.SampleWithoutReplacement(len(c.XStar), ip.NU, rnd)
	c.XTrain = make([]float64, len(idx))
	c.TTrain = make([]float64, len(idx))
	c.UTrain = make([]float64, len(idx))
	for i, k := range idx {
		c.XTrain[i] = c.XStar[k]
		c.TTrain[i] = c.TStar[k]
		c.UTrain[i] = c.UStar[k]
	}
	return
}

func newTestLoop(c *BurgersPINN) *train.Loop {
	trainer := train.NewTrainer(c.Backend, c.Ctx, c.trainGraph,
		pinnLoss,
		optimizers.Adam().LearningRate(c.IP.LearningRate).Done(),
		nil, nil)
	return train.NewLoop(trainer)
}

func TestTrainingReducesLoss(t *testing.T) {
	c := newTestProblem(t)
	ds, err := c.trainingDataset()
	require.NoError(t, err)

	loop := newTestLoop(c)

	metricsEarly, err := loop.RunSteps(ds, 20)
	require.NoError(t, err)
	lossEarly := scalarFloat(metricsEarly[0])
	assert.False(t, math.IsNaN(lossEarly))

	metricsLate, err := loop.RunSteps(ds, 300)
	require.NoError(t, err)
	lossLate := scalarFloat(metricsLate[0])
	assert.False(t, math.IsNaN(lossLate))
	assert.Less(t, lossLate, lossEarly)

	{ // Coefficients are live after training and viscosity is positive
		lambda1, lambda2 := c.Coefficients()
		assert.False(t, math.IsNaN(lambda1))
		assert.True(t, lambda2 > 0)
	}
}

func TestPredictShapes(t *testing.T) {
	c := newTestProblem(t)
	ds, err := c.trainingDataset()
	require.NoError(t, err)
	loop := newTestLoop(c)
	_, err = loop.RunSteps(ds, 5)
	require.NoError(t, err)

	{ // Grid prediction covers every grid point, residual included
		U, F := c.Predict(c.XStar, c.TStar)
		assert.Equal(t, len(c.XStar), len(U))
		assert.Equal(t, len(c.XStar), len(F))
		for _, v := range U {
			assert.False(t, math.IsNaN(v))
		}
	}
	{ // Slice prediction follows the position axis
		U := c.PredictSlice(c.T[c.Nt/2])
		assert.Equal(t, c.Nx, len(U))
	}
}

func TestFigureRendering(t *testing.T) {
	c := newTestProblem(t)
	ds, err := c.trainingDataset()
	require.NoError(t, err)
	loop := newTestLoop(c)
	_, err = loop.RunSteps(ds, 5)
	require.NoError(t, err)

	U, _ := c.Predict(c.XStar, c.TStar)
	assert.NoError(t, c.SaveFigures(U))
}
