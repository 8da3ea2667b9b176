// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package chartopts

import (
	"maps"

	"github.com/danielhkuo/solvegraph/models"
)

// LineInput holds the optional line settings of a series.
type LineInput struct {
	ShowGaps    *bool    `json:"showGaps,omitempty"`
	GapDistance *float64 `json:"gapDistance,omitempty"`
}

// SeriesInput is a partially specified SeriesOptions. Nil fields fall back to
// the defaults. Attrs carries presentation attributes that are passed through
// to the rendered element untouched.
type SeriesInput struct {
	Type  *models.SeriesType `json:"seriesType,omitempty"`
	Line  *LineInput         `json:"lineOptions,omitempty"`
	Color *string            `json:"color,omitempty"`
	Attrs map[string]string  `json:"attrs,omitempty"`
}

// GraphInput is a partially specified GraphOptions.
type GraphInput struct {
	XType *models.XType `json:"xType,omitempty"`
}

// DefaultSeries returns the documented defaults:
// line, gaps shown at distance 2, steelblue.
func DefaultSeries() models.SeriesOptions {
	return models.SeriesOptions{
		Type: models.SeriesLine,
		Line: models.LineOptions{
			ShowGaps:    true,
			GapDistance: models.DefaultGapDistance,
		},
		Color: models.DefaultColor,
	}
}

// ResolveSeries fills every unset field of in from DefaultSeries.
func ResolveSeries(in SeriesInput) models.SeriesOptions {
	out := DefaultSeries()
	if in.Type != nil {
		out.Type = *in.Type
	}
	if in.Line != nil {
		if in.Line.ShowGaps != nil {
			out.Line.ShowGaps = *in.Line.ShowGaps
		}
		if in.Line.GapDistance != nil {
			out.Line.GapDistance = *in.Line.GapDistance
		}
	}
	if in.Color != nil && *in.Color != "" {
		out.Color = *in.Color
	}
	if len(in.Attrs) > 0 {
		out.Attrs = maps.Clone(in.Attrs)
	}
	return out
}

// Input turns resolved options back into a fully specified SeriesInput, so
// that ResolveSeries(Input(o)) == o.
func Input(o models.SeriesOptions) SeriesInput {
	t := o.Type
	showGaps := o.Line.ShowGaps
	gap := o.Line.GapDistance
	color := o.Color
	return SeriesInput{
		Type:  &t,
		Line:  &LineInput{ShowGaps: &showGaps, GapDistance: &gap},
		Color: &color,
		Attrs: maps.Clone(o.Attrs),
	}
}

// ResolveGraph copies the x type through. There is no default: an unset x
// type stays zero and is rejected when the chart is rendered.
func ResolveGraph(in GraphInput) models.GraphOptions {
	var out models.GraphOptions
	if in.XType != nil {
		out.XType = *in.XType
	}
	return out
}

// Line is shorthand for a line series input.
func Line(color string, showGaps bool, gapDistance float64) SeriesInput {
	t := models.SeriesLine
	return SeriesInput{
		Type:  &t,
		Line:  &LineInput{ShowGaps: &showGaps, GapDistance: &gapDistance},
		Color: &color,
	}
}

// Dots is shorthand for a dot series input.
func Dots(color string) SeriesInput {
	t := models.SeriesDots
	return SeriesInput{Type: &t, Color: &color}
}

// Graph is shorthand for a graph input with the given x type.
func Graph(x models.XType) GraphInput {
	return GraphInput{XType: &x}
}
