package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/trajlab/internal/phys"
)

var strokeColors = []string{"#00ff88", "#00ccff", "#ffcc00", "#ff4444", "#ff00ff", "#ffffff"}

// TrajectoriesToSVG renders every flight of a convergence study into one
// SVG, sharing bounds so the curves are directly comparable. One polyline
// per step size, labeled in a legend.
func TrajectoriesToSVG(results []*phys.Result, width, height int) string {
	if len(results) == 0 {
		return ""
	}

	minX, maxX := 0.0, 0.0
	minY, maxY := 0.0, 0.0
	for _, res := range results {
		for _, p := range res.Path {
			if p.X < minX {
				minX = p.X
			}
			if p.X > maxX {
				maxX = p.X
			}
			if p.Y < minY {
				minY = p.Y
			}
			if p.Y > maxY {
				maxY = p.Y
			}
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.05
	maxX += rangeX * 0.05
	minY -= rangeY * 0.05
	maxY += rangeY * 0.05
	rangeX = maxX - minX
	rangeY = maxY - minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	// Ground line at y=0.
	groundY := float64(height) - (0-minY)/rangeY*float64(height)
	sb.WriteString(fmt.Sprintf(`<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="#444466" stroke-dasharray="4 4"/>
`, groundY, width, groundY))

	for i, res := range results {
		if len(res.Path) < 2 {
			continue
		}
		color := strokeColors[i%len(strokeColors)]

		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, color))
		for j, p := range res.Path {
			x := (p.X - minX) / rangeX * float64(width)
			y := float64(height) - (p.Y-minY)/rangeY*float64(height)
			if j == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")

		sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" fill="%s" font-family="monospace" font-size="12">dt=%g</text>
`, width-90, 20+i*16, color, res.Dt))
	}

	sb.WriteString("</svg>")
	return sb.String()
}
