// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package series

import (
	"time"

	"github.com/danielhkuo/solvegraph/models"
)

const dayKeyLayout = "2006-01-02"

// DailyCounts counts date points per calendar day. Buckets come out in the
// order their key is first seen, not sorted by date.
func DailyCounts(points []models.Point) []models.Point {
	return countBy(points, startOfDay)
}

// WeeklyCounts counts date points per week. Weeks start on Sunday.
func WeeklyCounts(points []models.Point) []models.Point {
	return countBy(points, startOfWeek)
}

func countBy(points []models.Point, bucket func(time.Time) time.Time) []models.Point {
	index := make(map[string]int)
	out := []models.Point{}
	for _, p := range points {
		start := bucket(pointDate(p))
		key := start.Format(dayKeyLayout)
		if i, ok := index[key]; ok {
			out[i].Y++
			continue
		}
		index[key] = len(out)
		out = append(out, models.Point{X: models.DateX(start), Y: 1})
	}
	return out
}

// pointDate prefers the attached record so the record's location decides the
// calendar day.
func pointDate(p models.Point) time.Time {
	if p.Solve != nil {
		return p.Solve.Date
	}
	return p.Time()
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func startOfWeek(t time.Time) time.Time {
	day := startOfDay(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}
