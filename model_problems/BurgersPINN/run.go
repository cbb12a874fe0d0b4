package BurgersPINN

import (
	"fmt"
	"math"
	"time"

	"github.com/gomlx/gomlx/pkg/core/tensors"
	"github.com/gomlx/gomlx/pkg/ml/datasets"
	"github.com/gomlx/gomlx/pkg/ml/train"
	"github.com/gomlx/gomlx/pkg/ml/train/optimizers"
	"github.com/gomlx/gomlx/ui/commandline"
	"github.com/pkg/errors"

	"github.com/notargets/gopinn/utils"
)

// Run trains the network and the two coefficients, then reports errors and
// renders the comparison figures. When showGraph is set, a live chart of the
// mid-time slice is updated at every logging step.
func (c *BurgersPINN) Run(showGraph bool, graphDelay ...time.Duration) (err error) {
	var (
		ip = c.IP
	)
	fmt.Printf("Backend: %s, %s\n", c.Backend.Name(), c.Backend.Description())

	ds, err := c.trainingDataset()
	if err != nil {
		return err
	}
	trainer := train.NewTrainer(c.Backend, c.Ctx, c.trainGraph,
		pinnLoss,
		optimizers.Adam().LearningRate(ip.LearningRate).Done(),
		nil, nil) // trainMetrics, evalMetrics
	loop := train.NewLoop(trainer)
	commandline.AttachProgressBar(loop)

	train.EveryNSteps(loop, ip.LogFrequency, "training log", 0,
		func(loop *train.Loop, metrics []*tensors.Tensor) error {
			lambda1, lambda2 := c.Coefficients()
			fmt.Printf("Epoch %6d: Loss: %10.6f  lambda1 = %8.5f  lambda2 = %10.7f\n",
				loop.LoopStep, scalarFloat(metrics[0]), lambda1, lambda2)
			c.livePlot(showGraph, graphDelay)
			return nil
		})

	if _, err = loop.RunSteps(ds, ip.Epochs); err != nil {
		return errors.Wrap(err, "training loop failed")
	}

	UPred, FPred := c.Predict(c.XStar, c.TStar)
	c.Report(UPred, FPred)
	if err = c.SaveFigures(UPred); err != nil {
		return err
	}
	return nil
}

// trainingDataset wraps the sampled training points as a single full batch
// that repeats forever: one loop step is one epoch of full batch descent.
func (c *BurgersPINN) trainingDataset() (ds *datasets.InMemoryDataset, err error) {
	var (
		n  = len(c.XTrain)
		xT = tensors.FromFlatDataAndDimensions(toFloat32(c.XTrain), n, 1)
		tT = tensors.FromFlatDataAndDimensions(toFloat32(c.TTrain), n, 1)
		uT = tensors.FromFlatDataAndDimensions(toFloat32(c.UTrain), n, 1)
	)
	if ds, err = datasets.InMemoryFromData(c.Backend, "burgers train",
		[]any{xT, tT}, []any{uT}); err != nil {
		return nil, errors.Wrap(err, "unable to build training dataset")
	}
	ds.BatchSize(n, false).Infinite(true)
	return
}

// Coefficients returns the current estimates of λ1 and λ2 (after the exp
// reparameterization of the raw scalar).
func (c *BurgersPINN) Coefficients() (lambda1, lambda2 float64) {
	var (
		l1 = c.Ctx.InspectVariable("/inverse", "lambda1")
		l2 = c.Ctx.InspectVariable("/inverse", "lambda2_log")
	)
	if l1 == nil || l2 == nil {
		return math.NaN(), math.NaN()
	}
	lambda1 = scalarFloat(l1.MustValue())
	lambda2 = math.Exp(scalarFloat(l2.MustValue()))
	return
}

func scalarFloat(t *tensors.Tensor) float64 {
	switch v := t.Value().(type) {
	case float32:
		return float64(v)
	case float64:
		return v
	}
	return math.NaN()
}

func toFloat32(v []float64) (out []float32) {
	out = make([]float32, len(v))
	for i, val := range v {
		out[i] = float32(val)
	}
	return
}

// Report prints the relative L2 error of the recovered field over the whole
// grid, the residual RMS, and the coefficient errors against the reference
// data set values.
func (c *BurgersPINN) Report(UPred, FPred []float64) {
	fmt.Printf("Error u: %e\n", utils.RelativeL2(UPred, c.UStar))
	var sumSq float64
	for _, f := range FPred {
		sumSq += f * f
	}
	fmt.Printf("Residual RMS: %e\n", math.Sqrt(sumSq/float64(len(FPred))))
	lambda1, lambda2 := c.Coefficients()
	fmt.Printf("lambda1 = %8.5f, error = %8.4f%%\n", lambda1, utils.PercentError(lambda1, TrueLambda1))
	fmt.Printf("lambda2 = %10.7f, error = %8.4f%%\n", lambda2, utils.PercentError(lambda2, TrueLambda2))
}
