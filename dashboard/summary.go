// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dashboard

import (
	"math"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/solvegraph/models"
	"github.com/danielhkuo/solvegraph/series"
)

// BuildSummary computes headline numbers for records as of now.
func BuildSummary(records []models.SolveRecord, now time.Time) models.Summary {
	sum := models.Summary{
		Count:     len(records),
		CountText: humanize.Comma(int64(len(records))) + " solves",
	}

	best := math.Inf(1)
	for i, r := range records {
		if r.DNF {
			sum.DNFCount++
		} else if r.Time < best {
			best = r.Time
		}
		if i == 0 || r.Date.Before(*sum.FirstDate) {
			d := r.Date
			sum.FirstDate = &d
		}
		if i == 0 || r.Date.After(*sum.LastDate) {
			d := r.Date
			sum.LastDate = &d
		}
	}
	if !math.IsInf(best, 1) {
		sum.BestSingle = &best
	}
	sum.BestAo5 = bestAverage(records, Windows[0])
	sum.BestAo12 = bestAverage(records, Windows[1])

	if sum.LastDate != nil {
		sum.LastSolveAgo = humanize.RelTime(*sum.LastDate, now, "ago", "from now")
	}
	return sum
}

func bestAverage(records []models.SolveRecord, w Window) *float64 {
	pts := series.RunningBest(series.MovingAverage(records, w.Size, w.Trim, models.XNumber))
	if len(pts) == 0 {
		return nil
	}
	v := pts[len(pts)-1].Y
	return &v
}
