// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package render

import (
	"fmt"
	"math"

	"github.com/danielhkuo/solvegraph/models"
)

// ConfigError reports an option value outside its closed set. It is not
// recoverable: the chart definition itself is wrong.
type ConfigError struct {
	Series string // empty for chart-level options
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Series == "" {
		return fmt.Sprintf("chart configuration: %v", e.Err)
	}
	return fmt.Sprintf("chart configuration (series %q): %v", e.Series, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

type Margin struct {
	Top, Right, Bottom, Left float64
}

// Layout sets the pixel geometry and label formats of a chart.
type Layout struct {
	Width      float64
	Height     float64
	Margin     Margin
	Ticks      int    // approximate tick count per axis
	DateFormat string // strftime layout for readout dates
}

func DefaultLayout() Layout {
	return Layout{
		Width:      600,
		Height:     300,
		Margin:     Margin{Top: 20, Right: 30, Bottom: 30, Left: 40},
		Ticks:      10,
		DateFormat: "%Y-%m-%d",
	}
}

func (l Layout) withDefaults() Layout {
	d := DefaultLayout()
	if l.Width <= 0 {
		l.Width = d.Width
	}
	if l.Height <= 0 {
		l.Height = d.Height
	}
	if l.Margin == (Margin{}) {
		l.Margin = d.Margin
	}
	if l.Ticks <= 0 {
		l.Ticks = d.Ticks
	}
	if l.DateFormat == "" {
		l.DateFormat = d.DateFormat
	}
	return l
}

// Chart is a set of series laid out on shared x and y scales.
type Chart struct {
	layout Layout
	graph  models.GraphOptions
	series []models.Series
	x, y   linearScale
}

// NewChart validates the options and computes both scales over the union of
// all series' points. Empty or degenerate input falls back to a fixed domain.
func NewChart(series []models.Series, graph models.GraphOptions, layout Layout) (*Chart, error) {
	if !graph.XType.Valid() {
		return nil, &ConfigError{Err: fmt.Errorf("%w: %v", models.ErrUnknownXType, graph.XType)}
	}
	for _, s := range series {
		if !s.Options.Type.Valid() {
			return nil, &ConfigError{Series: s.Name, Err: fmt.Errorf("%w: %v", models.ErrUnknownSeriesType, s.Options.Type)}
		}
	}

	layout = layout.withDefaults()
	c := &Chart{layout: layout, graph: graph, series: series}

	x0, x1 := xExtent(series, graph.XType)
	c.x = linearScale{d0: x0, d1: x1, r0: layout.Margin.Left, r1: layout.Width - layout.Margin.Right}

	y1 := yMax(series)
	y0, y1 := niceDomain(0, y1, layout.Ticks)
	c.y = linearScale{d0: y0, d1: y1, r0: layout.Height - layout.Margin.Bottom, r1: layout.Margin.Top}

	return c, nil
}

func xExtent(series []models.Series, xType models.XType) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range series {
		for _, p := range s.Points {
			if math.IsNaN(p.X) {
				continue
			}
			lo = math.Min(lo, p.X)
			hi = math.Max(hi, p.X)
		}
	}
	if lo > hi {
		if xType == models.XDate {
			return 0, models.MillisPerDay
		}
		return 0, 1
	}
	return lo, hi
}

// yMax ignores undefined values and falls back to 1 when nothing positive
// remains.
func yMax(series []models.Series) float64 {
	hi := 0.0
	for _, s := range series {
		for _, p := range s.Points {
			if p.Defined() && p.Y > hi {
				hi = p.Y
			}
		}
	}
	if hi <= 0 {
		return 1
	}
	return hi
}

// XDomain returns the x scale domain.
func (c *Chart) XDomain() (float64, float64) { return c.x.d0, c.x.d1 }

// YDomain returns the niced y scale domain.
func (c *Chart) YDomain() (float64, float64) { return c.y.d0, c.y.d1 }

// XPixel maps an x value to its horizontal pixel position.
func (c *Chart) XPixel(x float64) float64 { return c.x.apply(x) }

// YPixel maps a y value to its vertical pixel position.
func (c *Chart) YPixel(y float64) float64 { return c.y.apply(y) }

func (c *Chart) xTicks() []tick {
	if c.graph.XType == models.XDate {
		return timeTicks(c.x.d0, c.x.d1, c.layout.Ticks)
	}
	return labelled(numberTicks(c.x.d0, c.x.d1, c.layout.Ticks))
}

func (c *Chart) yTicks() []tick {
	return labelled(numberTicks(c.y.d0, c.y.d1, c.layout.Ticks))
}

func labelled(values []float64) []tick {
	out := make([]tick, len(values))
	for i, v := range values {
		out[i] = tick{value: v, label: formatNumber(v)}
	}
	return out
}
