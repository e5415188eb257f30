package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/trajsim/internal/ballistic"
)

const (
	DefaultStroke = "#ff8c00"
	markerColor   = "#ff3b1f"
	groundColor   = "#5c4033"
)

// TrajectoryToSVG draws the flight path as a polyline on a dark background
// with a ground line and a marker on the last sample. Both axes share one
// scale.
func TrajectoryToSVG(samples []ballistic.Sample, width, height int, strokeColor string) string {
	if len(samples) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	if strokeColor == "" {
		strokeColor = DefaultStroke
	}

	maxX, maxY := 0.0, 0.0
	for _, p := range samples {
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	pad := 0.05 * float64(min(width, height))
	availW := float64(width) - 2*pad
	availH := float64(height) - 2*pad

	scale := 1.0
	switch {
	case maxX > 0 && maxY > 0:
		scale = min(availW/maxX, availH/maxY)
	case maxX > 0:
		scale = availW / maxX
	case maxY > 0:
		scale = availH / maxY
	}

	project := func(p ballistic.Sample) (float64, float64) {
		return pad + p.X*scale, float64(height) - pad - p.Y*scale
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	groundY := float64(height) - pad
	sb.WriteString(fmt.Sprintf(`<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="%s" stroke-width="1"/>
`, groundY, width, groundY, groundColor))

	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, strokeColor))
	for i, p := range samples {
		x, y := project(p)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}
	sb.WriteString("\"/>\n")

	mx, my := project(samples[len(samples)-1])
	sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="4" fill="%s"/>
`, mx, my, markerColor))

	sb.WriteString("</svg>")
	return sb.String()
}
