// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/danielhkuo/solvegraph/dashboard"
	"github.com/danielhkuo/solvegraph/models"
	"github.com/danielhkuo/solvegraph/render"
)

const (
	SheetSolves  = "Solves"
	SheetSummary = "Summary"

	// ContentType is the MIME type of the workbook.
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Workbook builds a workbook with the raw solves, the summary and one sheet
// per chart. The caller closes the returned file.
func Workbook(snap *dashboard.Snapshot) (*excelize.File, error) {
	f := excelize.NewFile()
	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#DDEBF7"}},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	w := &sheetWriter{f: f, header: header}
	w.solves(snap.Records)
	w.summary(snap.Summary, snap.LoadedAt)
	for _, c := range snap.Charts {
		w.chart(c)
	}
	if w.err != nil {
		f.Close()
		return nil, w.err
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to remove default sheet: %w", err)
	}
	if idx, err := f.GetSheetIndex(SheetSolves); err == nil {
		f.SetActiveSheet(idx)
	}
	return f, nil
}

// Write streams the workbook for snap to w.
func Write(w io.Writer, snap *dashboard.Snapshot) error {
	f, err := Workbook(snap)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// sheetWriter keeps the first error and turns later calls into no-ops.
type sheetWriter struct {
	f      *excelize.File
	header int
	err    error
}

func (w *sheetWriter) newSheet(name string, headers ...string) {
	if w.err != nil {
		return
	}
	if _, err := w.f.NewSheet(name); err != nil {
		w.err = fmt.Errorf("failed to create sheet %s: %w", name, err)
		return
	}
	for i, h := range headers {
		w.set(name, i+1, 1, h)
	}
	if len(headers) > 0 {
		last, _ := excelize.CoordinatesToCellName(len(headers), 1)
		if err := w.f.SetCellStyle(name, "A1", last, w.header); err != nil {
			w.err = fmt.Errorf("failed to style header of %s: %w", name, err)
		}
	}
}

func (w *sheetWriter) set(sheet string, col, row int, v any) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err == nil {
		err = w.f.SetCellValue(sheet, cell, v)
	}
	if err != nil {
		w.err = fmt.Errorf("failed to write %s!%d:%d: %w", sheet, col, row, err)
	}
}

func (w *sheetWriter) solves(records []models.SolveRecord) {
	w.newSheet(SheetSolves, "Solve", "Seconds", "Time", "DNF", "Date", "Scramble")
	for i, r := range records {
		row := i + 2
		w.set(SheetSolves, 1, row, r.Index)
		if !r.DNF {
			w.set(SheetSolves, 2, row, r.Time)
		}
		w.set(SheetSolves, 3, row, render.FormatTime(r.Time, r.DNF))
		w.set(SheetSolves, 4, row, r.DNF)
		w.set(SheetSolves, 5, row, r.Date)
		w.set(SheetSolves, 6, row, r.Scramble)
	}
	if w.err == nil {
		w.err = w.f.SetColWidth(SheetSolves, "E", "F", 22)
	}
}

func (w *sheetWriter) summary(s models.Summary, loadedAt time.Time) {
	w.newSheet(SheetSummary, "Metric", "Value")
	rows := [][2]any{
		{"Snapshot", s.SnapshotID},
		{"Loaded at", loadedAt},
		{"Solves", s.Count},
		{"DNFs", s.DNFCount},
	}
	opt := func(label string, v *float64) {
		if v != nil {
			rows = append(rows, [2]any{label, render.FormatTime(*v, false)})
		}
	}
	opt("Best single", s.BestSingle)
	opt("Best Ao5", s.BestAo5)
	opt("Best Ao12", s.BestAo12)
	if s.FirstDate != nil {
		rows = append(rows, [2]any{"First solve", *s.FirstDate})
	}
	if s.LastDate != nil {
		rows = append(rows, [2]any{"Last solve", *s.LastDate})
	}
	for i, r := range rows {
		w.set(SheetSummary, 1, i+2, r[0])
		w.set(SheetSummary, 2, i+2, r[1])
	}
}

// chart writes every series in long form: one row per defined point. Gap
// markers are left out.
func (w *sheetWriter) chart(c models.NamedChart) {
	name := sheetName(c.Name)
	w.newSheet(name, "Series", "X", "Y", "Solve")
	row := 2
	for _, s := range c.Series {
		for _, p := range s.Points {
			if !p.Defined() {
				continue
			}
			w.set(name, 1, row, s.Name)
			if c.Graph.XType == models.XDate {
				w.set(name, 2, row, p.Time().UTC())
			} else {
				w.set(name, 2, row, p.X)
			}
			w.set(name, 3, row, p.Y)
			if p.Solve != nil {
				w.set(name, 4, row, p.Solve.Index)
			}
			row++
		}
	}
}

// sheetName fits Excel's 31 character limit.
func sheetName(s string) string {
	if len(s) > 31 {
		return s[:31]
	}
	return s
}
