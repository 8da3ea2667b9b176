// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dashboard

import (
	"github.com/danielhkuo/solvegraph/chartopts"
	"github.com/danielhkuo/solvegraph/models"
	"github.com/danielhkuo/solvegraph/series"
)

// Chart names served by the dashboard.
const (
	ChartTimes          = "times"
	ChartAveragesByDate = "averages-by-date"
	ChartPersonalBests  = "personal-bests"
	ChartDaily          = "daily"
	ChartWeekly         = "weekly"
)

// Window is one trimmed moving average.
type Window struct {
	Name  string
	Size  int
	Trim  int
	Color string
}

var Windows = []Window{
	{Name: "Ao5", Size: 5, Trim: 1, Color: "#e45756"},
	{Name: "Ao12", Size: 12, Trim: 1, Color: "#f58518"},
	{Name: "Ao50", Size: 50, Trim: 3, Color: "#54a24b"},
	{Name: "Ao100", Size: 100, Trim: 5, Color: "#b279a2"},
}

const (
	singleColor = "steelblue"
	countColor  = "#4c78a8"

	dailyGapDays  = 2
	weeklyGapDays = 8
)

// Settings tunes chart construction.
type Settings struct {
	RecentSolves int // records considered by the daily and weekly charts
}

func DefaultSettings() Settings {
	return Settings{RecentSolves: 1000}
}

// Build derives every dashboard chart from records. Records are not
// modified.
func Build(records []models.SolveRecord, settings Settings) []models.NamedChart {
	if settings.RecentSolves <= 0 {
		settings.RecentSolves = DefaultSettings().RecentSolves
	}
	recent := series.Recent(records, settings.RecentSolves)

	return []models.NamedChart{
		timesChart(records),
		averagesByDateChart(records),
		personalBestsChart(records),
		dailyChart(recent),
		weeklyChart(recent),
	}
}

func newSeries(name string, points []models.Point, in chartopts.SeriesInput, xType models.XType) models.Series {
	s := models.Series{Name: name, Points: points, Options: chartopts.ResolveSeries(in)}
	return series.WithGaps(s, xType)
}

func timesChart(records []models.SolveRecord) models.NamedChart {
	out := []models.Series{
		newSeries("Single", series.Times(records, models.XNumber), chartopts.Dots(singleColor), models.XNumber),
	}
	for _, w := range Windows {
		pts := series.MovingAverage(records, w.Size, w.Trim, models.XNumber)
		out = append(out, newSeries(w.Name, pts, chartopts.Line(w.Color, true, models.DefaultGapDistance), models.XNumber))
	}
	return named(ChartTimes, "Solve times", models.XNumber, out)
}

func averagesByDateChart(records []models.SolveRecord) models.NamedChart {
	var out []models.Series
	for _, w := range Windows {
		pts := series.MovingAverage(records, w.Size, w.Trim, models.XDate)
		out = append(out, newSeries(w.Name, pts, chartopts.Line(w.Color, true, dailyGapDays), models.XDate))
	}
	return named(ChartAveragesByDate, "Averages by date", models.XDate, out)
}

func personalBestsChart(records []models.SolveRecord) models.NamedChart {
	out := []models.Series{
		newSeries("Single", series.RunningBest(series.Times(records, models.XNumber)),
			chartopts.Line(singleColor, false, models.DefaultGapDistance), models.XNumber),
	}
	for _, w := range Windows {
		pts := series.RunningBest(series.MovingAverage(records, w.Size, w.Trim, models.XNumber))
		out = append(out, newSeries(w.Name, pts, chartopts.Line(w.Color, false, models.DefaultGapDistance), models.XNumber))
	}
	return named(ChartPersonalBests, "Personal bests", models.XNumber, out)
}

func dailyChart(recent []models.SolveRecord) models.NamedChart {
	counts := series.DailyCounts(series.Times(recent, models.XDate))
	return named(ChartDaily, "Solves per day", models.XDate, []models.Series{
		newSeries("Solves", counts, chartopts.Dots(countColor), models.XDate),
		newSeries("Solves (line)", counts, chartopts.Line(countColor, true, dailyGapDays), models.XDate),
	})
}

func weeklyChart(recent []models.SolveRecord) models.NamedChart {
	counts := series.WeeklyCounts(series.Times(recent, models.XDate))
	return named(ChartWeekly, "Solves per week", models.XDate, []models.Series{
		newSeries("Solves", counts, chartopts.Line(countColor, true, weeklyGapDays), models.XDate),
	})
}

func named(name, title string, x models.XType, s []models.Series) models.NamedChart {
	return models.NamedChart{
		Name:   name,
		Title:  title,
		Graph:  chartopts.ResolveGraph(chartopts.Graph(x)),
		Series: s,
	}
}
