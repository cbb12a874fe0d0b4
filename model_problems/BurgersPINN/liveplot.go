package BurgersPINN

import (
	"time"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"

	"github.com/notargets/gopinn/utils"
)

// livePlot updates an interactive chart of the mid-time position slice,
// predicted against exact, while training progresses.
func (c *BurgersPINN) livePlot(showGraph bool, graphDelay []time.Duration) {
	if !showGraph {
		return
	}
	c.PlotOnce.Do(func() {
		xlo, xhi := utils.Bounds(c.X)
		c.chart = chart2d.NewChart2D(1280, 1024, float32(xlo), float32(xhi), -1.2, 1.2)
		c.colorMap = utils2.NewColorMap(-1, 1, 1)
		go c.chart.Plot()
	})

	var (
		jMid  = c.Nt / 2
		pred  = c.PredictSlice(c.T[jMid])
		exact = c.UStar[jMid*c.Nx : (jMid+1)*c.Nx]
	)
	if err := c.chart.AddSeries("U", c.X, pred,
		chart2d.NoGlyph, chart2d.Solid, c.colorMap.GetRGB(0)); err != nil {
		panic("unable to add graph series")
	}
	if err := c.chart.AddSeries("Exact", c.X, exact,
		chart2d.NoGlyph, chart2d.Solid, c.colorMap.GetRGB(0.7)); err != nil {
		panic("unable to add graph series")
	}
	if len(graphDelay) != 0 {
		time.Sleep(graphDelay[0])
	}
}
