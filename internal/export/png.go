package export

import (
	"bufio"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"github.com/san-kum/trajsim/internal/ballistic"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

var (
	trailColor = color.RGBA{R: 0xff, G: 0x8c, B: 0x00, A: 0xff}
	apexColor  = color.RGBA{R: 0xff, G: 0x3b, B: 0x1f, A: 0xff}
)

// PNGOptions sizes the rendered image in inches at the given DPI.
type PNGOptions struct {
	WidthIn  float64
	HeightIn float64
	DPI      int
	Title    string
}

func DefaultPNGOptions() PNGOptions {
	return PNGOptions{WidthIn: 8, HeightIn: 6, DPI: 150}
}

// NewTrajectoryPlot builds a y-vs-x line plot with the apex marked.
func NewTrajectoryPlot(traj *ballistic.Trajectory, title string) (*plot.Plot, error) {
	p := plot.New()
	if title == "" {
		title = "Projectile trajectory (" + traj.Input().String() + ")"
	}
	p.Title.Text = title
	p.X.Label.Text = "x (m)"
	p.Y.Label.Text = "y (m)"
	stylePlot(p)

	pts := make(plotter.XYs, traj.Len())
	for i := range pts {
		s := traj.At(i)
		pts[i].X = s.X
		pts[i].Y = s.Y
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(2.5)
	line.LineStyle.Color = trailColor
	p.Add(line)

	apex := traj.Apex()
	marks, err := plotter.NewScatter(plotter.XYs{{X: apex.X, Y: apex.Y}})
	if err != nil {
		return nil, err
	}
	marks.GlyphStyle.Color = apexColor
	marks.GlyphStyle.Radius = vg.Points(4)
	marks.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(marks)
	p.Legend.Add(fmt.Sprintf("apex %.1fm", apex.Y), marks)
	p.Legend.Top = true

	p.X.Min = 0
	p.Y.Min = 0
	return p, nil
}

// SavePNG renders the trajectory plot to filename, creating parent directories.
func SavePNG(filename string, traj *ballistic.Trajectory, opts PNGOptions) error {
	if opts.WidthIn <= 0 || opts.HeightIn <= 0 || opts.DPI <= 0 {
		return fmt.Errorf("invalid png size %.1fx%.1fin at %d dpi", opts.WidthIn, opts.HeightIn, opts.DPI)
	}
	p, err := NewTrajectoryPlot(traj, opts.Title)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return fmt.Errorf("cannot create directory: %w", err)
	}

	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(opts.WidthIn)*vg.Inch, vg.Length(opts.HeightIn)*vg.Inch),
		vgimg.UseDPI(opts.DPI),
	)
	p.Draw(draw.New(c))

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("cannot create png: %w", err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(bw); err != nil {
		return fmt.Errorf("cannot write png: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	return f.Close()
}

func stylePlot(p *plot.Plot) {
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.Title.Padding = vg.Points(10)

	p.X.Label.TextStyle.Font.Size = vg.Points(13)
	p.Y.Label.TextStyle.Font.Size = vg.Points(13)

	p.X.Tick.Marker = limitedTicker(8, "%.0f")
	p.Y.Tick.Marker = limitedTicker(8, "%.0f")
	p.Add(plotter.NewGrid())
}

func limitedTicker(maxLabels int, labelFmt string) plot.Ticker {
	if maxLabels < 2 {
		maxLabels = 2
	}
	return plot.TickerFunc(func(min, max float64) []plot.Tick {
		if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
			return nil
		}
		if min == max {
			return []plot.Tick{{Value: min, Label: fmt.Sprintf(labelFmt, min)}}
		}
		step := (max - min) / float64(maxLabels-1)
		ticks := make([]plot.Tick, 0, maxLabels)
		for i := 0; i < maxLabels; i++ {
			v := min + float64(i)*step
			ticks = append(ticks, plot.Tick{Value: v, Label: fmt.Sprintf(labelFmt, v)})
		}
		return ticks
	})
}
