// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/solvegraph/cliparse"
	"github.com/danielhkuo/solvegraph/dashboard"
	"github.com/danielhkuo/solvegraph/handlers"
	"github.com/danielhkuo/solvegraph/middleware"
	"github.com/danielhkuo/solvegraph/web"
)

// NewRouter registers every endpoint. history may be nil when loads are not
// recorded.
func NewRouter(svc *dashboard.Service, history handlers.LoadHistory, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	chartHandler := handlers.NewChartHandler(svc, cfg)
	renderHandler := handlers.NewRenderHandler(cfg)
	dataHandler := handlers.NewDataHandler(svc, history)
	pageHandler := handlers.NewPageHandler(svc, web.Templates())

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Charts of the current snapshot
	mux.HandleFunc("GET /charts", middleware.WithLogging(chartHandler.List))
	mux.HandleFunc("GET /charts/{name}/svg", middleware.WithLogging(chartHandler.SVG))
	mux.HandleFunc("GET /charts/{name}/png", middleware.WithLogging(chartHandler.PNG))
	mux.HandleFunc("GET /charts/{name}/series", middleware.WithLogging(chartHandler.Series))
	mux.HandleFunc("GET /charts/{name}/readout", middleware.WithLogging(chartHandler.Readout))

	// Caller-supplied series
	mux.HandleFunc("POST /render", middleware.WithLogging(renderHandler.Render))

	// Data
	mux.HandleFunc("GET /summary", middleware.WithLogging(dataHandler.Summary))
	mux.HandleFunc("GET /export.xlsx", middleware.WithLogging(dataHandler.Export))
	mux.HandleFunc("POST /reload", middleware.WithLogging(dataHandler.Reload))
	mux.HandleFunc("GET /loads", middleware.WithLogging(dataHandler.Loads))

	// Dashboard page
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(web.StaticFS())))
	mux.HandleFunc("GET /", middleware.WithLogging(pageHandler.Index))

	return mux
}
