// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers of the solve dashboard.

# Handler Types

Each handler is a struct holding its dependencies:

  - ChartHandler: chart list, SVG/PNG rendering, series JSON, hover readouts
  - RenderHandler: rendering of caller-supplied series
  - DataHandler: summary, XLSX export, reload, load history
  - PageHandler: the HTML dashboard

	chartHandler := handlers.NewChartHandler(svc, cfg)

# Snapshots

Every read handler works on dashboard.Service.Current(). Until the first
load succeeds they answer 503. Chart, series and summary responses carry the
snapshot ID as ETag; a matching If-None-Match gets 304.

# Charts

	GET /charts                      → List
	GET /charts/{name}/svg           → SVG
	GET /charts/{name}/png           → PNG
	GET /charts/{name}/series        → Series (NamedChart JSON)
	GET /charts/{name}/readout?px=   → Readout

Readout inverts the pixel x through the chart's x scale and returns the
nearest solve:

	{"found": true, "index": 41, "text": "Solve 41: 12.34 on 2020-03-01"}

# Ad-hoc Rendering

	POST /render?format=svg|png

	{
	  "graph": {"xType": "number"},
	  "series": [
	    {"name": "a", "points": [{"x": 0, "y": 1}, {"x": 1, "y": null}],
	     "options": {"seriesType": "line", "color": "tomato", "stroke-dasharray": "4 2"}}
	  ]
	}

Missing options fall back to the defaults; unknown scalar option keys pass
through as SVG attributes. A null y is a gap.

# Errors

  - 400: invalid JSON, bad px, bad format
  - 404: unknown chart name
  - 500: chart configuration errors (unknown series or x type)
  - 503: nothing loaded yet, or a reload failed (previous data is kept)
*/
package handlers
