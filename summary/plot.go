package summary

import (
	"errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"image/color"
	"math"
)

// SavePlot draws the isoform pairs of each matched species as a bar chart.
// The image format follows the extension of filename (png, svg, pdf, ...).
func (s Summary) SavePlot(filename string) error {
	if len(s.PairsPerSpecies) == 0 {
		return errors.New("no species found in both files, nothing to plot")
	}

	bars, err := plotter.NewBarChart(plotter.Values(s.PairsPerSpecies), vg.Points(15))
	if err != nil {
		return err
	}
	bars.Color = color.RGBA{R: 70, G: 110, B: 190, A: 255}
	bars.LineStyle.Width = vg.Length(0)

	p := plot.New()
	p.Add(bars)
	p.NominalX(s.MatchedSpecies...)
	p.Title.Text = "Isoform pairs per matched species"
	p.Y.Label.Text = "Isoform pairs"
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = -1
	p.X.Tick.Label.Font.Size = 8

	width := vg.Length(len(s.MatchedSpecies))*vg.Points(20) + 4*vg.Centimeter
	return p.Save(width, 12*vg.Centimeter, filename)
}
