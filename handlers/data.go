// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/solvegraph/dashboard"
	"github.com/danielhkuo/solvegraph/db"
	"github.com/danielhkuo/solvegraph/export"
	"github.com/danielhkuo/solvegraph/middleware"
	"github.com/danielhkuo/solvegraph/models"
)

// LoadHistory lists past loads. *db.Store implements it.
type LoadHistory interface {
	RecentLoads(ctx context.Context, limit int) ([]db.LoadEntry, error)
}

type DataHandler struct {
	svc     *dashboard.Service
	history LoadHistory
}

// NewDataHandler creates the summary, export and reload endpoints. history
// may be nil.
func NewDataHandler(svc *dashboard.Service, history LoadHistory) *DataHandler {
	return &DataHandler{svc: svc, history: history}
}

// Summary handles GET /summary
func (h *DataHandler) Summary(w http.ResponseWriter, r *http.Request) {
	snap, ok := currentSnapshot(w, h.svc)
	if !ok || middleware.CheckETag(w, r, snap.ID) {
		return
	}
	middleware.JSONResponse(w, http.StatusOK, snap.Summary)
}

// Export handles GET /export.xlsx
func (h *DataHandler) Export(w http.ResponseWriter, r *http.Request) {
	snap, ok := currentSnapshot(w, h.svc)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, snap); err != nil {
		slog.Error("failed to export workbook", "snapshot_id", snap.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to export workbook")
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="solves.xlsx"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Write(buf.Bytes())
}

// Reload handles POST /reload
func (h *DataHandler) Reload(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.Reload(r.Context())
	if err != nil {
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.ReloadResponse{
		SnapshotID: snap.ID,
		Records:    len(snap.Records),
		LoadedAt:   snap.LoadedAt,
	})
}

// Loads handles GET /loads?limit=
func (h *DataHandler) Loads(w http.ResponseWriter, r *http.Request) {
	if h.history == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "load history is not recorded")
		return
	}

	limit := 20
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 || n > 1000 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "limit must be between 1 and 1000")
			return
		}
		limit = n
	}

	loads, err := h.history.RecentLoads(r.Context(), limit)
	if err != nil {
		slog.Error("failed to read load history", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to read load history")
		return
	}

	resp := make([]models.LoadInfo, len(loads))
	for i, l := range loads {
		resp[i] = models.LoadInfo{SnapshotID: l.ID, Source: l.Source, Records: l.Records, LoadedAt: l.LoadedAt}
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}

type PageHandler struct {
	svc  *dashboard.Service
	tmpl *template.Template
}

func NewPageHandler(svc *dashboard.Service, tmpl *template.Template) *PageHandler {
	return &PageHandler{svc: svc, tmpl: tmpl}
}

// Index handles GET /
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		middleware.ErrorResponse(w, http.StatusNotFound, fmt.Sprintf("no route for %s", r.URL.Path))
		return
	}

	data := map[string]any{}
	if snap := h.svc.Current(); snap != nil {
		data["Summary"] = snap.Summary
		data["Charts"] = snap.Charts
	}

	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, "index.tmpl", data); err != nil {
		slog.Error("failed to render page", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to render page")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}
