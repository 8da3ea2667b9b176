// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the data model shared by every other package.

# Domain Types

  - SolveRecord: one timed attempt (index, time, scramble, date, DNF flag)
  - Point: x/y sample; Y is NaN when undefined (a gap), Solve optionally
    points back at the originating record
  - Series: named point sequence with its SeriesOptions
  - SeriesOptions / LineOptions: resolved display options
  - GraphOptions: chart-level options (x type)
  - NamedChart: one dashboard chart, several series on shared axes

# Enumerations

SeriesType and XType are closed sets. Their zero value means "unset":

	SeriesLine, SeriesDots
	XNumber, XDate

Both implement encoding.TextMarshaler, so JSON uses "line"/"dots" and
"number"/"date". Anything else fails with ErrUnknownSeriesType or
ErrUnknownXType.

# Date Axis

Date charts store x as Unix milliseconds:

	p := models.Point{X: models.DateX(record.Date), Y: record.Time}
	p.Time() // back to time.Time

Gap distances on date charts are expressed in days; XType.GapUnit and
XType.FromGapUnit convert between the two.

# Request / Response Types

  - RenderRequest: ad hoc render of posted series
  - ChartListResponse, ChartInfo: chart catalogue
  - ReadoutResponse: hover lookup result
  - ReloadResponse: new snapshot metadata
  - Summary: headline statistics
  - ErrorResponse: error, message
*/
package models
