// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package render draws series into SVG (and PNG) charts.

# Scales

NewChart computes one x scale and one y scale for all series of a chart:

  - x: linear for XNumber, time (Unix milliseconds) for XDate; domain is the
    min/max x of every point, range is the width minus margins
  - y: linear, domain [0, max y] ignoring undefined values, niced to round
    tick boundaries, range inverted so larger values draw higher

Empty input falls back to [0, 1] (or one day for dates) and a y max of 1.

# Drawing

Line series become one <path>; undefined points break the path. Dot series
become one <circle> per defined point. Both use the series color plus any
pass-through attributes.

	var buf bytes.Buffer
	err := render.Render(&buf, series, models.GraphOptions{XType: models.XNumber})

Render always resets the mount first and writes nothing on error.

# Hover

	chart.Hover(px, target) // "Solve 41: 12.34 on 2020-03-01"

Hover inverts the pointer's x pixel to the nearest point with a solve
reference. A nil target is ignored.

# Errors

An XType or SeriesType outside its closed set yields a *ConfigError wrapping
models.ErrUnknownXType or models.ErrUnknownSeriesType.
*/
package render
