package export

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/robolab/ddrive/internal/kinematics"
)

// WritePNG renders the trajectory as a world-space chart: the path as a
// line, turn points as crosses, the initial position as a ring.
func WritePNG(file string, path *kinematics.Path) error {
	p := plot.New()
	p.Title.Text = "differential drive trajectory"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	xys := make(plotter.XYs, 0, path.Len()+1)
	xys = append(xys, plotter.XY{X: path.Initial.X, Y: path.Initial.Y})
	for _, s := range path.Samples {
		xys = append(xys, plotter.XY{X: s.X, Y: s.Y})
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	p.Add(line)
	p.Legend.Add("path", line)

	if len(path.Turns) > 0 {
		txys := make(plotter.XYs, len(path.Turns))
		for i, t := range path.Turns {
			txys[i] = plotter.XY{X: t.X, Y: t.Y}
		}
		turns, err := plotter.NewScatter(txys)
		if err != nil {
			return err
		}
		turns.GlyphStyle.Shape = draw.CrossGlyph{}
		p.Add(turns)
		p.Legend.Add("turns", turns)
	}

	start, err := plotter.NewScatter(plotter.XYs{{X: path.Initial.X, Y: path.Initial.Y}})
	if err != nil {
		return err
	}
	start.GlyphStyle.Shape = draw.RingGlyph{}
	p.Add(start)
	p.Legend.Add("start", start)

	return p.Save(8*vg.Inch, 8*vg.Inch, file)
}
