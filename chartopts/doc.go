// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package chartopts resolves partially specified chart options onto defaults.

# Series Options

SeriesInput uses pointer fields; nil means "use the default":

	seriesType  line
	lineOptions showGaps=true, gapDistance=2
	color       steelblue

Resolution is a plain field-by-field fallback:

	opts := chartopts.ResolveSeries(chartopts.SeriesInput{Color: &red})

Resolving is idempotent: ResolveSeries(Input(opts)) returns opts again.

# Pass-through Attributes

Keys that are not recognised when decoding JSON are kept in Attrs and written
onto the rendered SVG element unchanged.

# Graph Options

GraphInput carries the x type. It has no default; leaving it unset is a caller
error reported by the renderer.
*/
package chartopts
