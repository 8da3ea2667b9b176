// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/danielhkuo/solvegraph/cliparse"
	"github.com/danielhkuo/solvegraph/dashboard"
	"github.com/danielhkuo/solvegraph/middleware"
	"github.com/danielhkuo/solvegraph/models"
	"github.com/danielhkuo/solvegraph/render"
)

const (
	contentTypeSVG = "image/svg+xml"
	contentTypePNG = "image/png"
)

type ChartHandler struct {
	svc *dashboard.Service
	cfg cliparse.Config
}

func NewChartHandler(svc *dashboard.Service, cfg cliparse.Config) *ChartHandler {
	return &ChartHandler{svc: svc, cfg: cfg}
}

// Layout returns the chart geometry for cfg.
func Layout(cfg cliparse.Config) render.Layout {
	l := render.DefaultLayout()
	if cfg.Width > 0 {
		l.Width = float64(cfg.Width)
	}
	if cfg.Height > 0 {
		l.Height = float64(cfg.Height)
	}
	if cfg.DateLayout != "" {
		l.DateFormat = cfg.DateLayout
	}
	return l
}

// currentSnapshot writes 503 when nothing is loaded yet.
func currentSnapshot(w http.ResponseWriter, svc *dashboard.Service) (*dashboard.Snapshot, bool) {
	snap := svc.Current()
	if snap == nil {
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, dashboard.ErrNoSnapshot.Error())
		return nil, false
	}
	return snap, true
}

// lookup resolves {name} against the current snapshot and handles the ETag.
// It returns false when a response has already been written.
func (h *ChartHandler) lookup(w http.ResponseWriter, r *http.Request) (*dashboard.Snapshot, models.NamedChart, bool) {
	snap, ok := currentSnapshot(w, h.svc)
	if !ok {
		return nil, models.NamedChart{}, false
	}
	name := r.PathValue("name")
	chart, ok := snap.Chart(name)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "unknown chart: "+name)
		return nil, models.NamedChart{}, false
	}
	return snap, chart, true
}

// renderFailed maps chart construction errors. Configuration errors mean a
// chart definition is broken and are reported as server errors.
func renderFailed(w http.ResponseWriter, chart string, err error) {
	var cfgErr *render.ConfigError
	if errors.As(err, &cfgErr) {
		slog.Error("invalid chart configuration", "chart", chart, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	slog.Error("failed to render chart", "chart", chart, "error", err)
	middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to render chart")
}

// List handles GET /charts
func (h *ChartHandler) List(w http.ResponseWriter, r *http.Request) {
	snap, ok := currentSnapshot(w, h.svc)
	if !ok {
		return
	}

	resp := models.ChartListResponse{SnapshotID: snap.ID, Charts: make([]models.ChartInfo, len(snap.Charts))}
	for i, c := range snap.Charts {
		resp.Charts[i] = models.ChartInfo{
			Name:        c.Name,
			Title:       c.Title,
			XType:       c.Graph.XType,
			SeriesCount: len(c.Series),
		}
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}

// SVG handles GET /charts/{name}/svg
func (h *ChartHandler) SVG(w http.ResponseWriter, r *http.Request) {
	snap, chart, ok := h.lookup(w, r)
	if !ok || middleware.CheckETag(w, r, snap.ID) {
		return
	}

	var buf bytes.Buffer
	if err := render.RenderLayout(&buf, chart.Series, chart.Graph, Layout(h.cfg)); err != nil {
		renderFailed(w, chart.Name, err)
		return
	}
	w.Header().Set("Content-Type", contentTypeSVG)
	w.Write(buf.Bytes())
}

// PNG handles GET /charts/{name}/png
func (h *ChartHandler) PNG(w http.ResponseWriter, r *http.Request) {
	snap, chart, ok := h.lookup(w, r)
	if !ok || middleware.CheckETag(w, r, snap.ID) {
		return
	}

	c, err := render.NewChart(chart.Series, chart.Graph, Layout(h.cfg))
	if err != nil {
		renderFailed(w, chart.Name, err)
		return
	}
	var buf bytes.Buffer
	if err := c.WritePNG(&buf); err != nil {
		renderFailed(w, chart.Name, err)
		return
	}
	w.Header().Set("Content-Type", contentTypePNG)
	w.Write(buf.Bytes())
}

// Series handles GET /charts/{name}/series
func (h *ChartHandler) Series(w http.ResponseWriter, r *http.Request) {
	snap, chart, ok := h.lookup(w, r)
	if !ok || middleware.CheckETag(w, r, snap.ID) {
		return
	}
	middleware.JSONResponse(w, http.StatusOK, chart)
}

// readoutText is the ReadoutTarget of a single request.
type readoutText struct {
	text string
	set  bool
}

func (t *readoutText) SetText(s string) {
	t.text, t.set = s, true
}

// Readout handles GET /charts/{name}/readout?px=
func (h *ChartHandler) Readout(w http.ResponseWriter, r *http.Request) {
	_, chart, ok := h.lookup(w, r)
	if !ok {
		return
	}

	px, err := strconv.ParseFloat(r.URL.Query().Get("px"), 64)
	if err != nil || math.IsNaN(px) || math.IsInf(px, 0) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "px must be a number")
		return
	}

	c, err := render.NewChart(chart.Series, chart.Graph, Layout(h.cfg))
	if err != nil {
		renderFailed(w, chart.Name, err)
		return
	}

	var target readoutText
	c.Hover(px, &target)
	if !target.set {
		middleware.JSONResponse(w, http.StatusOK, models.ReadoutResponse{Found: false})
		return
	}
	p, _ := c.Nearest(px)
	middleware.JSONResponse(w, http.StatusOK, models.ReadoutResponse{
		Found: true,
		Index: p.Solve.Index,
		Text:  target.text,
	})
}
