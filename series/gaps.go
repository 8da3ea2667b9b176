// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package series

import "github.com/danielhkuo/solvegraph/models"

// InsertGaps places an undefined point before every point whose distance from
// its predecessor exceeds gapDistance (x units for numbers, days for dates).
// The marker sits half a gap distance before the later point.
func InsertGaps(points []models.Point, xType models.XType, gapDistance float64) []models.Point {
	out := make([]models.Point, 0, len(points))
	for i, curr := range points {
		if i > 0 {
			delta := xType.GapUnit(curr.X - points[i-1].X)
			if delta > gapDistance {
				out = append(out, models.Point{
					X: curr.X - xType.FromGapUnit(0.5*gapDistance),
					Y: models.Undefined(),
				})
			}
		}
		out = append(out, curr)
	}
	return out
}

// WithGaps returns s with gap markers inserted when it is a line series that
// shows gaps. Other series are returned unchanged.
func WithGaps(s models.Series, xType models.XType) models.Series {
	if s.Options.Type != models.SeriesLine || !s.Options.Line.ShowGaps {
		return s
	}
	s.Points = InsertGaps(s.Points, xType, s.Options.Line.GapDistance)
	return s
}
