// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package series

import (
	"fmt"
	"math"
	"sort"

	"github.com/danielhkuo/solvegraph/models"
)

// MovingAverage computes the trimmed-mean average of the windowSize most recent
// records at every index where a full window is available. Partial windows are
// not emitted, so the first point sits at index windowSize-1.
//
// DNFs count as +Inf and are removed by trimming when trimEachSide >= 1. A DNF
// that survives trimming, or a window trimmed down to nothing, yields an
// undefined y.
//
// windowSize must be positive; trimEachSide must not be negative.
func MovingAverage(records []models.SolveRecord, windowSize, trimEachSide int, indexBy models.XType) []models.Point {
	if windowSize <= 0 {
		panic(fmt.Sprintf("series: MovingAverage window size must be positive, got %d", windowSize))
	}
	if trimEachSide < 0 {
		panic(fmt.Sprintf("series: MovingAverage trim must not be negative, got %d", trimEachSide))
	}
	if len(records) < windowSize {
		return []models.Point{}
	}

	out := make([]models.Point, 0, len(records)-windowSize+1)
	window := make([]float64, windowSize)
	for i := windowSize - 1; i < len(records); i++ {
		for j := range window {
			window[j] = records[i-windowSize+1+j].Value()
		}
		rec := &records[i]
		out = append(out, models.Point{
			X:     xFor(rec, indexBy),
			Y:     trimmedMean(window, trimEachSide),
			Solve: rec,
		})
	}
	return out
}

// trimmedMean sorts values in place.
func trimmedMean(values []float64, trim int) float64 {
	sort.Float64s(values)
	if 2*trim >= len(values) {
		return models.Undefined()
	}
	kept := values[trim : len(values)-trim]
	var sum float64
	for _, v := range kept {
		sum += v
	}
	mean := sum / float64(len(kept))
	if math.IsInf(mean, 0) {
		return models.Undefined()
	}
	return mean
}

func xFor(rec *models.SolveRecord, indexBy models.XType) float64 {
	switch indexBy {
	case models.XNumber:
		return float64(rec.Index)
	case models.XDate:
		return models.DateX(rec.Date)
	default:
		panic(fmt.Sprintf("series: %v", fmt.Errorf("%w: %d", models.ErrUnknownXType, int(indexBy))))
	}
}

// Times maps every record to a point; DNFs become undefined.
func Times(records []models.SolveRecord, indexBy models.XType) []models.Point {
	out := make([]models.Point, len(records))
	for i := range records {
		rec := &records[i]
		y := rec.Time
		if rec.DNF {
			y = models.Undefined()
		}
		out[i] = models.Point{X: xFor(rec, indexBy), Y: y, Solve: rec}
	}
	return out
}

// Recent returns the last n records (all of them when n <= 0 or n exceeds the
// length).
func Recent(records []models.SolveRecord, n int) []models.SolveRecord {
	if n <= 0 || n >= len(records) {
		return records
	}
	return records[len(records)-n:]
}
