// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/danielhkuo/solvegraph/chartopts"
	"github.com/danielhkuo/solvegraph/cliparse"
	"github.com/danielhkuo/solvegraph/middleware"
	"github.com/danielhkuo/solvegraph/models"
	"github.com/danielhkuo/solvegraph/render"
	"github.com/danielhkuo/solvegraph/series"
)

// MaxRenderSeries bounds the number of series in one render request.
const MaxRenderSeries = 32

type RenderHandler struct {
	cfg cliparse.Config
}

func NewRenderHandler(cfg cliparse.Config) *RenderHandler {
	return &RenderHandler{cfg: cfg}
}

// DecodeRenderRequest resolves the partial options of req into renderable
// series. Gap markers are inserted for line series that show gaps.
func DecodeRenderRequest(req models.RenderRequest) ([]models.Series, models.GraphOptions, error) {
	var graphIn chartopts.GraphInput
	if len(req.Graph) > 0 {
		if err := json.Unmarshal(req.Graph, &graphIn); err != nil {
			return nil, models.GraphOptions{}, fmt.Errorf("invalid graph options: %w", err)
		}
	}
	graph := chartopts.ResolveGraph(graphIn)

	out := make([]models.Series, 0, len(req.Series))
	for i, s := range req.Series {
		var in chartopts.SeriesInput
		if len(s.Options) > 0 {
			if err := json.Unmarshal(s.Options, &in); err != nil {
				return nil, models.GraphOptions{}, fmt.Errorf("invalid options for series %d: %w", i, err)
			}
		}
		resolved := models.Series{Name: s.Name, Points: s.Points, Options: chartopts.ResolveSeries(in)}
		if graph.XType.Valid() {
			resolved = series.WithGaps(resolved, graph.XType)
		}
		out = append(out, resolved)
	}
	return out, graph, nil
}

// Render handles POST /render?format=svg|png
func (h *RenderHandler) Render(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "svg"
	}
	if format != "svg" && format != "png" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "format must be svg or png")
		return
	}

	var req models.RenderRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if len(req.Series) > MaxRenderSeries {
		middleware.ErrorResponse(w, http.StatusBadRequest, fmt.Sprintf("at most %d series per request", MaxRenderSeries))
		return
	}

	ss, graph, err := DecodeRenderRequest(req)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var buf bytes.Buffer
	if format == "svg" {
		err = render.RenderLayout(&buf, ss, graph, Layout(h.cfg))
	} else {
		var c *render.Chart
		if c, err = render.NewChart(ss, graph, Layout(h.cfg)); err == nil {
			err = c.WritePNG(&buf)
		}
	}
	if err != nil {
		renderFailed(w, "request", err)
		return
	}

	if format == "svg" {
		w.Header().Set("Content-Type", contentTypeSVG)
	} else {
		w.Header().Set("Content-Type", contentTypePNG)
	}
	w.Write(buf.Bytes())
}
