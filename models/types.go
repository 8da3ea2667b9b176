// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"math"
	"time"
)

// Default series display values
const (
	DefaultColor       = "steelblue"
	DefaultGapDistance = 2.0
)

// MillisPerDay converts date-axis x deltas (Unix milliseconds) into days.
const MillisPerDay = 24 * 60 * 60 * 1000

// Domain types

// SolveRecord is one timed attempt. Index is its 0-based position in the
// ordered record sequence (the solve number).
type SolveRecord struct {
	Index    int       `json:"index"`
	Time     float64   `json:"time"`
	Scramble string    `json:"scramble"`
	Date     time.Time `json:"date"`
	DNF      bool      `json:"dnf"`
}

// Value returns the time used for ranking: DNFs sort after every real time.
func (s SolveRecord) Value() float64 {
	if s.DNF {
		return math.Inf(1)
	}
	return s.Time
}

// Point is a single x/y sample. Y is NaN when the value is undefined, which the
// renderer draws as a break in the line. For date charts X holds Unix milliseconds.
type Point struct {
	X     float64
	Y     float64
	Solve *SolveRecord
}

// Defined reports whether the point has a drawable y value.
func (p Point) Defined() bool {
	return !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Time interprets X as Unix milliseconds.
func (p Point) Time() time.Time {
	return time.UnixMilli(int64(p.X))
}

// DateX converts a date into the x value used by date charts.
func DateX(t time.Time) float64 {
	return float64(t.UnixMilli())
}

// Undefined returns the missing y value.
func Undefined() float64 {
	return math.NaN()
}

type LineOptions struct {
	ShowGaps    bool    `json:"showGaps"`
	GapDistance float64 `json:"gapDistance"`
}

type SeriesOptions struct {
	Type  SeriesType        `json:"seriesType"`
	Line  LineOptions       `json:"lineOptions"`
	Color string            `json:"color"`
	Attrs map[string]string `json:"attrs,omitempty"`
}

type Series struct {
	Name    string        `json:"name"`
	Points  []Point       `json:"points"`
	Options SeriesOptions `json:"options"`
}

type GraphOptions struct {
	XType XType `json:"xType"`
}

// NamedChart is one chart of the dashboard: several series sharing axes.
type NamedChart struct {
	Name   string       `json:"name"`
	Title  string       `json:"title"`
	Graph  GraphOptions `json:"graph"`
	Series []Series     `json:"series"`
}

// Request types

type RenderSeriesRequest struct {
	Name    string          `json:"name"`
	Points  []Point         `json:"points"`
	Options json.RawMessage `json:"options,omitempty"`
}

type RenderRequest struct {
	Graph  json.RawMessage       `json:"graph"`
	Series []RenderSeriesRequest `json:"series"`
}

// Response types

type ChartInfo struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	XType       XType  `json:"xType"`
	SeriesCount int    `json:"series_count"`
}

type ChartListResponse struct {
	SnapshotID string      `json:"snapshot_id"`
	Charts     []ChartInfo `json:"charts"`
}

type ReadoutResponse struct {
	Found bool   `json:"found"`
	Index int    `json:"index"`
	Text  string `json:"text,omitempty"`
}

type ReloadResponse struct {
	SnapshotID string    `json:"snapshot_id"`
	Records    int       `json:"records"`
	LoadedAt   time.Time `json:"loaded_at"`
}

type LoadInfo struct {
	SnapshotID string    `json:"snapshot_id"`
	Source     string    `json:"source"`
	Records    int       `json:"records"`
	LoadedAt   time.Time `json:"loaded_at"`
}

type Summary struct {
	SnapshotID   string     `json:"snapshot_id"`
	Count        int        `json:"count"`
	CountText    string     `json:"count_text"`
	DNFCount     int        `json:"dnf_count"`
	BestSingle   *float64   `json:"best_single,omitempty"`
	BestAo5      *float64   `json:"best_ao5,omitempty"`
	BestAo12     *float64   `json:"best_ao12,omitempty"`
	FirstDate    *time.Time `json:"first_date,omitempty"`
	LastDate     *time.Time `json:"last_date,omitempty"`
	LastSolveAgo string     `json:"last_solve_ago,omitempty"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
