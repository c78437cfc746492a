package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/steiner/internal/anim"
	"github.com/san-kum/steiner/internal/curve"
)

// CurveSVG renders a traced path as an SVG polyline, auto-scaled to the
// viewport with a small padding.
func CurveSVG(points []curve.Point, width, height int, strokeColor string) string {
	if len(points) < 2 {
		return ""
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
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

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, p := range points {
		x := (p.X - minX) / rangeX * float64(width)
		y := float64(height) - (p.Y-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

// FrameSVG renders one animation frame as a complete scene: the trace,
// both circles, the spoke and the current point. The viewport covers
// MaxExtent with the same 1.2 margin the live view uses.
func FrameSVG(f anim.Frame) string {
	const size = 600
	extent := f.MaxExtent() * 1.2

	// World (x, y) to SVG coordinates, y axis flipped.
	sx := func(x float64) float64 { return (x/extent + 1) / 2 * size }
	sy := func(y float64) float64 { return (1 - y/extent) / 2 * size }

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, size, size, size, size))

	scale := float64(size) / 2 / extent
	sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="#ff4444" stroke-dasharray="6 4"/>
`, sx(0), sy(0), f.FixedRadius*scale))
	sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="#00ff88" stroke-dasharray="2 3"/>
`, sx(f.Rolling.Center.X), sy(f.Rolling.Center.Y), f.Rolling.Radius*scale))

	sb.WriteString(`<path fill="none" stroke="#00ccff" stroke-width="1.5" d="M`)
	for i, p := range f.Path {
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", sx(p.X), sy(p.Y)))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", sx(p.X), sy(p.Y)))
		}
	}
	sb.WriteString("\"/>\n")

	sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#00ff88"/>
`, sx(f.Rolling.Center.X), sy(f.Rolling.Center.Y), sx(f.Point.X), sy(f.Point.Y)))
	sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="4" fill="#ff4444"/>
`, sx(f.Point.X), sy(f.Point.Y)))

	sb.WriteString("</svg>")
	return sb.String()
}
