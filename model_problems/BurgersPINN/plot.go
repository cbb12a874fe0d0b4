package BurgersPINN

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/notargets/gopinn/utils"
)

// SaveFigures interpolates the predictions onto the regular (x,t) grid and
// writes the comparison figures: a heatmap of the recovered field with the
// training sample locations overlaid, and position slices at t = 0.25, 0.50,
// 0.75 of exact versus predicted.
func (c *BurgersPINN) SaveFigures(UPred []float64) (err error) {
	if err = os.MkdirAll(c.PlotDir, 0755); err != nil {
		return errors.Wrapf(err, "unable to create plot directory %q", c.PlotDir)
	}
	si := utils.NewScatteredInterpolator(c.XStar, c.TStar, UPred)
	UGrid := si.Grid(c.X, c.T)

	if err = c.saveHeatmap(UGrid); err != nil {
		return
	}
	for _, frac := range []float64{0.25, 0.50, 0.75} {
		if err = c.saveSlice(UGrid, frac); err != nil {
			return
		}
	}
	return nil
}

func (c *BurgersPINN) saveHeatmap(UGrid *mat.Dense) (err error) {
	p := plot.New()
	p.Title.Text = "u(t,x)"
	p.X.Label.Text = "t"
	p.Y.Label.Text = "x"

	pal := palette.Rainbow(100, palette.Blue, palette.Red, 1, 1, 1)
	p.Add(plotter.NewHeatMap(fieldGrid{xs: c.X, ts: c.T, u: UGrid}, pal))

	// Training sample locations, as in the reference figure
	pts := make(plotter.XYs, len(c.XTrain))
	for i := range pts {
		pts[i].X, pts[i].Y = c.TTrain[i], c.XTrain[i]
	}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return errors.Wrap(err, "unable to build training point overlay")
	}
	scatter.GlyphStyle = draw.GlyphStyle{
		Shape:  draw.CrossGlyph{},
		Radius: vg.Points(1.5),
		Color:  color.Black,
	}
	p.Add(scatter)
	p.Legend.Add(fmt.Sprintf("Data (%d points)", len(c.XTrain)), scatter)

	fname := filepath.Join(c.PlotDir, "burgers_field.png")
	if err = p.Save(7*vg.Inch, 4*vg.Inch, fname); err != nil {
		return errors.Wrapf(err, "unable to save figure %q", fname)
	}
	fmt.Printf("Wrote %s\n", fname)
	return nil
}

func (c *BurgersPINN) saveSlice(UGrid *mat.Dense, frac float64) (err error) {
	var (
		j = int(frac * float64(c.Nt))
	)
	if j >= c.Nt {
		j = c.Nt - 1
	}
	p := plot.New()
	p.Title.Text = fmt.Sprintf("t = %.2f", c.T[j])
	p.X.Label.Text = "x"
	p.Y.Label.Text = "u(t,x)"

	exact := make(plotter.XYs, c.Nx)
	pred := make(plotter.XYs, c.Nx)
	for i := 0; i < c.Nx; i++ {
		exact[i].X, exact[i].Y = c.X[i], c.UStar[j*c.Nx+i]
		pred[i].X, pred[i].Y = c.X[i], UGrid.At(i, j)
	}
	le, err := plotter.NewLine(exact)
	if err != nil {
		return errors.Wrap(err, "unable to build exact slice line")
	}
	le.LineStyle.Width = vg.Points(2)
	le.LineStyle.Color = color.RGBA{B: 255, A: 255}
	lp, err := plotter.NewLine(pred)
	if err != nil {
		return errors.Wrap(err, "unable to build predicted slice line")
	}
	lp.LineStyle.Width = vg.Points(2)
	lp.LineStyle.Color = color.RGBA{R: 255, A: 255}
	lp.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(le, lp)
	p.Legend.Add("Exact", le)
	p.Legend.Add("Prediction", lp)
	p.X.Min, p.X.Max = -1.1, 1.1
	p.Y.Min, p.Y.Max = -1.1, 1.1

	fname := filepath.Join(c.PlotDir, fmt.Sprintf("burgers_slice_t%.2f.png", frac))
	if err = p.Save(4*vg.Inch, 4*vg.Inch, fname); err != nil {
		return errors.Wrapf(err, "unable to save figure %q", fname)
	}
	fmt.Printf("Wrote %s\n", fname)
	return nil
}

// fieldGrid adapts the interpolated solution to the heatmap's grid interface,
// time on the horizontal axis and position on the vertical, matching the
// reference figure layout.
type fieldGrid struct {
	xs, ts []float64
	u      *mat.Dense // Nx x Nt
}

func (f fieldGrid) Dims() (cols, rows int) { return len(f.ts), len(f.xs) }
func (f fieldGrid) Z(col, row int) float64 { return f.u.At(row, col) }
func (f fieldGrid) X(col int) float64      { return f.ts[col] }
func (f fieldGrid) Y(row int) float64      { return f.xs[row] }
