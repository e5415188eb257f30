package viz

import (
	"math"

	"github.com/san-kum/trajsim/internal/ballistic"
)

// Viewport maps world coordinates in metres onto canvas dots. Both axes share
// one scale so the arc keeps its true shape. The ground (y = 0) sits on the
// bottom dot row.
type Viewport struct {
	scale  float64
	left   int
	bottom int
	width  int // in dots
	height int
}

const viewportMargin = 2

// FitViewport sizes a viewport so the whole trajectory fits the canvas.
func FitViewport(c *Canvas, traj *ballistic.Trajectory) Viewport {
	pw, ph := c.PixelSize()
	maxX, maxY := traj.Bounds()

	availX := float64(pw - 1 - 2*viewportMargin)
	availY := float64(ph - 1 - viewportMargin)

	scale := math.Inf(1)
	if maxX > 0 {
		scale = availX / maxX
	}
	if maxY > 0 {
		scale = math.Min(scale, availY/maxY)
	}
	if math.IsInf(scale, 1) || scale <= 0 {
		scale = 1
	}

	return Viewport{scale: scale, left: viewportMargin, bottom: ph - 1, width: pw, height: ph}
}

// Project converts a world point to dot coordinates. Points off the canvas
// are pinned one dot outside its edge, and a non-finite coordinate maps to
// (-1, -1), so line drawing never walks further than the canvas size.
func (v Viewport) Project(x, y float64) (int, int) {
	fx := float64(v.left) + math.Round(x*v.scale)
	fy := float64(v.bottom) - math.Round(y*v.scale)
	if math.IsNaN(fx) || math.IsNaN(fy) {
		return -1, -1
	}
	return clampDot(fx, v.width), clampDot(fy, v.height)
}

func clampDot(f float64, size int) int {
	if f < -1 {
		return -1
	}
	if f > float64(size) {
		return size
	}
	return int(f)
}

func (v Viewport) Scale() float64 { return v.scale }
