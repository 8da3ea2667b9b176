// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the solve dashboard.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(svc, store, cfg)

# Endpoints

Health:

	GET /health

Charts (current snapshot, ETag = snapshot ID):

	GET /charts                    - List charts
	GET /charts/{name}/svg         - SVG with hover layer
	GET /charts/{name}/png         - Static PNG
	GET /charts/{name}/series      - Series as JSON
	GET /charts/{name}/readout?px= - Nearest solve for a pixel x

Rendering:

	POST /render?format=svg|png    - Render caller-supplied series

Data:

	GET  /summary                  - Headline numbers
	GET  /export.xlsx              - Workbook download
	POST /reload                   - Load the source again
	GET  /loads                    - Load history

Page:

	GET /                          - HTML dashboard
	GET /static/                   - Script and stylesheet

# Handler Initialization

	chartHandler := handlers.NewChartHandler(svc, cfg)
	renderHandler := handlers.NewRenderHandler(cfg)
	dataHandler := handlers.NewDataHandler(svc, history)
	pageHandler := handlers.NewPageHandler(svc, web.Templates())

JSON and page handlers are wrapped with middleware.WithLogging.
*/
package router
