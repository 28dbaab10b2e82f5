package sweep

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ErrNoSuccesses is returned when there is nothing to plot.
var ErrNoSuccesses = errors.New("sweep: no successful runs to plot")

// PlotAttempts writes a histogram of attempts-to-success over the successful
// runs of s. The image format follows the extension of path.
func PlotAttempts(s Summary, title, path string) error {
	var values plotter.Values
	for _, rec := range s.Records {
		if rec.Outcome.Success {
			values = append(values, float64(rec.Outcome.Attempts))
		}
	}
	if len(values) == 0 {
		return ErrNoSuccesses
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Attempts to success"
	p.Y.Label.Text = "Runs"

	bins := min(s.MaxAttempts, 20)
	hist, err := plotter.NewHist(values, max(bins, 1))
	if err != nil {
		return fmt.Errorf("build histogram: %w", err)
	}
	hist.FillColor = color.RGBA{R: 72, G: 160, B: 84, A: 255}
	hist.LineStyle.Width = vg.Points(0.5)
	p.Add(hist)

	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("save attempts plot: %w", err)
	}
	return nil
}
