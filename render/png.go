// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package render

import (
	"io"
	"strings"

	"github.com/danielhkuo/solvegraph/models"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var namedColors = map[string]string{
	"steelblue":  "4682b4",
	"tomato":     "ff6347",
	"seagreen":   "2e8b57",
	"darkorange": "ff8c00",
	"purple":     "800080",
	"crimson":    "dc143c",
	"goldenrod":  "daa520",
	"teal":       "008080",
	"orchid":     "da70d6",
	"gray":       "808080",
	"grey":       "808080",
	"black":      "000000",
	"red":        "ff0000",
	"green":      "008000",
	"blue":       "0000ff",
}

// parseColor accepts "#rrggbb", "rrggbb" or one of a few CSS names. Anything
// else becomes steelblue.
func parseColor(s string) drawing.Color {
	s = strings.ToLower(strings.TrimSpace(s))
	if hex, ok := namedColors[s]; ok {
		return drawing.ColorFromHex(hex)
	}
	s = strings.TrimPrefix(s, "#")
	if len(s) == 6 || len(s) == 3 {
		return drawing.ColorFromHex(s)
	}
	return drawing.ColorFromHex(namedColors[models.DefaultColor])
}

// pointStyle renders points only (no connecting line).
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 0,
		DotWidth:    4,
		DotColor:    col,
	}
}

func lineStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeColor: col,
		StrokeWidth: strokeWidth,
	}
}

// WritePNG renders a static raster version of the chart with go-chart. Line
// series are split into one go-chart series per gap-free segment.
func (c *Chart) WritePNG(w io.Writer) error {
	var series []chart.Series
	for _, s := range c.series {
		col := parseColor(s.Options.Color)
		switch s.Options.Type {
		case models.SeriesLine:
			for _, seg := range segments(s.Points) {
				xs, ys := seg.values()
				st := lineStyle(col)
				if len(xs) == 1 {
					// go-chart needs two values to draw anything
					xs, ys = append(xs, xs[0]), append(ys, ys[0])
					st = pointStyle(col)
				}
				series = append(series, chart.ContinuousSeries{Name: s.Name, XValues: xs, YValues: ys, Style: st})
			}
		case models.SeriesDots:
			var defined segment
			for _, p := range s.Points {
				if p.Defined() {
					defined = append(defined, p)
				}
			}
			if len(defined) == 0 {
				continue
			}
			xs, ys := defined.values()
			if len(xs) == 1 {
				xs, ys = append(xs, xs[0]), append(ys, ys[0])
			}
			series = append(series, chart.ContinuousSeries{Name: s.Name, XValues: xs, YValues: ys, Style: pointStyle(col)})
		}
	}
	if len(series) == 0 {
		// a near-transparent baseline satisfies go-chart's visible series check
		series = append(series, chart.ContinuousSeries{
			XValues: []float64{c.x.d0, c.x.d1},
			YValues: []float64{c.y.d0, c.y.d0},
			Style:   chart.Style{StrokeColor: drawing.Color{R: 255, G: 255, B: 255, A: 1}, StrokeWidth: 1},
		})
	}

	x0, x1 := c.x.d0, c.x.d1
	if x1 <= x0 {
		x0, x1 = x0-1, x1+1
	}

	ch := chart.Chart{
		Width:      int(c.layout.Width),
		Height:     int(c.layout.Height),
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 28}},
		XAxis:      chart.XAxis{Ticks: goChartTicks(c.xTicks()), Range: &chart.ContinuousRange{Min: x0, Max: x1}},
		YAxis:      chart.YAxis{Ticks: goChartTicks(c.yTicks()), Range: &chart.ContinuousRange{Min: c.y.d0, Max: c.y.d1}},
		Series:     series,
	}
	return ch.Render(chart.PNG, w)
}

func goChartTicks(ticks []tick) []chart.Tick {
	out := make([]chart.Tick, len(ticks))
	for i, t := range ticks {
		out[i] = chart.Tick{Value: t.value, Label: t.label}
	}
	return out
}

type segment []models.Point

func (s segment) values() ([]float64, []float64) {
	xs := make([]float64, len(s))
	ys := make([]float64, len(s))
	for i, p := range s {
		xs[i], ys[i] = p.X, p.Y
	}
	return xs, ys
}

// segments splits points at undefined values.
func segments(points []models.Point) []segment {
	var out []segment
	var cur segment
	for _, p := range points {
		if !p.Defined() {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, p)
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}
