package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/plasmalab/internal/sweep"
)

// Curve is one named series to draw.
type Curve struct {
	Name   string
	Values []float64
	Color  string
}

// SweepToSVG renders a sweep result as a log-log plot with one
// polyline per frequency curve. Non-positive values (an unmagnetized
// gyrofrequency, say) break the line rather than distorting the log
// scale.
func SweepToSVG(res *sweep.Result, width, height int) string {
	curves := []Curve{
		{Name: "collision", Values: res.CollisionFreq, Color: "#ff4444"},
		{Name: "plasma", Values: res.PlasmaFreq, Color: "#00ccff"},
		{Name: "gyro", Values: res.GyroFreq, Color: "#00ff88"},
	}
	return CurvesToSVG(res.Points, curves, width, height)
}

func CurvesToSVG(points []float64, curves []Curve, width, height int) string {
	if len(points) < 2 {
		return ""
	}

	xMin, xMax := logBounds(points)
	yMin, yMax := math.Inf(1), math.Inf(-1)
	for _, c := range curves {
		lo, hi := logBounds(c.Values)
		yMin, yMax = math.Min(yMin, lo), math.Max(yMax, hi)
	}
	if math.IsInf(yMin, 1) {
		return ""
	}
	if yMax == yMin {
		yMax = yMin + 1
	}
	if xMax == xMin {
		xMax = xMin + 1
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for ci, c := range curves {
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="`, c.Color))
		pen := false
		for i, v := range c.Values {
			if v <= 0 || points[i] <= 0 {
				pen = false
				continue
			}
			x := (math.Log10(points[i]) - xMin) / (xMax - xMin) * float64(width)
			y := float64(height) - (math.Log10(v)-yMin)/(yMax-yMin)*float64(height)
			if pen {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf("M%.1f,%.1f", x, y))
				pen = true
			}
		}
		sb.WriteString("\"/>\n")

		// legend swatch
		ly := 16 + ci*16
		sb.WriteString(fmt.Sprintf(`<rect x="8" y="%d" width="10" height="10" fill="%s"/>
<text x="22" y="%d" fill="#cccccc" font-size="11" font-family="monospace">%s</text>
`, ly, c.Color, ly+9, c.Name))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// logBounds returns min/max of log10 over the positive values.
func logBounds(vals []float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range vals {
		if v <= 0 {
			continue
		}
		l := math.Log10(v)
		lo, hi = math.Min(lo, l), math.Max(hi, l)
	}
	return lo, hi
}
