package report

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/SHIVAAAAY28/project-default-credit-card/pkg/core"
)

// BoxPlot renders one box per column of m to filename. The image format
// follows the file extension (png, svg, pdf, ...).
func BoxPlot(m *core.Matrix, names []string, title, filename string) error {
	if len(names) != m.C {
		return fmt.Errorf("%d names for %d columns", len(names), m.C)
	}
	if m.R == 0 {
		return errors.New("nothing to plot: matrix has no rows")
	}

	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "value"

	w := vg.Points(12)
	for j := 0; j < m.C; j++ {
		b, err := plotter.NewBoxPlot(w, float64(j), plotter.Values(m.ColSlice(j)))
		if err != nil {
			return fmt.Errorf("column %s: %w", names[j], err)
		}
		p.Add(b)
	}
	p.NominalX(names...)
	p.X.Tick.Label.Rotation = math.Pi / 2
	p.X.Tick.Label.XAlign = -1

	width := vg.Length(m.C)*vg.Points(18) + 2*vg.Inch
	if err := p.Save(width, 5*vg.Inch, filename); err != nil {
		return err
	}
	return nil
}
