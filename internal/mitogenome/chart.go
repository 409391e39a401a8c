package mitogenome

import (
	"fmt"
	"image/color"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

var (
	completeColor   = color.RGBA{R: 0x4C, G: 0xAF, B: 0x50, A: 0xFF}
	incompleteColor = color.RGBA{R: 0xF4, G: 0x43, B: 0x36, A: 0xFF}
)

// WriteChart draws a bar chart of the complete and incomplete counts to path.
// The image format follows the file extension (pdf, png, svg, eps, jpg, tif).
func WriteChart(path string, s Summary) error {
	p, err := completenessPlot(s)
	if err != nil {
		return err
	}

	if err := p.Save(8*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save chart: %w", err)
	}
	return nil
}

// completenessPlot builds the two bar plot with each value written above its bar
func completenessPlot(s Summary) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Mitogenome completeness summary"
	p.Y.Label.Text = "Number of files"

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	grid.Horizontal.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(grid)

	values := []int{s.Complete, s.Incomplete}
	colors := []color.Color{completeColor, incompleteColor}
	for i, v := range values {
		bars, err := plotter.NewBarChart(plotter.Values{float64(v)}, vg.Points(80))
		if err != nil {
			return nil, fmt.Errorf("failed to build chart bars: %w", err)
		}
		bars.XMin = float64(i)
		bars.Color = colors[i]
		bars.LineStyle.Width = 0
		p.Add(bars)
	}

	labels, err := plotter.NewLabels(barLabels(s))
	if err != nil {
		return nil, fmt.Errorf("failed to build chart labels: %w", err)
	}
	labels.Offset = vg.Point{Y: vg.Points(4)}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = text.XCenter
		labels.TextStyle[i].Font.Size = vg.Points(12)
	}
	p.Add(labels)

	p.NominalX("Complete", "Incomplete")
	p.Y.Min = 0
	p.Y.Max = float64(max(s.Complete, s.Incomplete)) + 1

	return p, nil
}

// barLabels positions each count at the top of its bar
func barLabels(s Summary) plotter.XYLabels {
	values := []int{s.Complete, s.Incomplete}
	xyl := plotter.XYLabels{
		XYs:    make(plotter.XYs, len(values)),
		Labels: make([]string, len(values)),
	}
	for i, v := range values {
		xyl.XYs[i] = plotter.XY{X: float64(i), Y: float64(v)}
		xyl.Labels[i] = strconv.Itoa(v)
	}
	return xyl
}
