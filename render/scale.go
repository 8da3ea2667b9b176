// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package render

import (
	"math"
	"time"

	"github.com/danielhkuo/solvegraph/models"
	"github.com/ncruces/go-strftime"
)

// linearScale maps a domain [d0, d1] onto a pixel range [r0, r1]. Time scales
// use the same mapping over Unix milliseconds.
type linearScale struct {
	d0, d1 float64
	r0, r1 float64
}

func (s linearScale) apply(v float64) float64 {
	if s.d1 == s.d0 {
		return (s.r0 + s.r1) / 2
	}
	return s.r0 + (v-s.d0)/(s.d1-s.d0)*(s.r1-s.r0)
}

func (s linearScale) invert(px float64) float64 {
	if s.d1 == s.d0 || s.r1 == s.r0 {
		return s.d0
	}
	return s.d0 + (px-s.r0)/(s.r1-s.r0)*(s.d1-s.d0)
}

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// tickIncrement returns a 1/2/5 x 10^k step for roughly count ticks over
// [start, stop]. Negative results encode 1/step for sub-unit increments.
func tickIncrement(start, stop float64, count int) float64 {
	step := (stop - start) / math.Max(0, float64(count))
	power := math.Floor(math.Log10(step))
	err := step / math.Pow(10, power)
	factor := 1.0
	switch {
	case err >= e10:
		factor = 10
	case err >= e5:
		factor = 5
	case err >= e2:
		factor = 2
	}
	if power >= 0 {
		return factor * math.Pow(10, power)
	}
	return -math.Pow(10, -power) / factor
}

// niceDomain widens [start, stop] until both ends sit on tick boundaries.
func niceDomain(start, stop float64, count int) (float64, float64) {
	if stop < start {
		start, stop = stop, start
	}
	var prestep float64
	for iter := 0; iter < 10; iter++ {
		step := tickIncrement(start, stop, count)
		if step == prestep {
			break
		}
		switch {
		case step > 0:
			start = math.Floor(start/step) * step
			stop = math.Ceil(stop/step) * step
		case step < 0:
			start = math.Ceil(start*step) / step
			stop = math.Floor(stop*step) / step
		default:
			return start, stop
		}
		prestep = step
	}
	return start, stop
}

// numberTicks lists tick values inside [start, stop].
func numberTicks(start, stop float64, count int) []float64 {
	if count <= 0 || math.IsNaN(start) || math.IsNaN(stop) {
		return nil
	}
	if start == stop {
		return []float64{start}
	}
	if stop < start {
		start, stop = stop, start
	}
	inc := tickIncrement(start, stop, count)
	if inc == 0 || math.IsInf(inc, 0) || math.IsNaN(inc) {
		return nil
	}
	var out []float64
	if inc > 0 {
		for i := math.Ceil(start / inc); i <= math.Floor(stop/inc); i++ {
			out = append(out, i*inc)
		}
	} else {
		step := -inc
		for i := math.Ceil(start * step); i <= math.Floor(stop*step); i++ {
			out = append(out, i/step)
		}
	}
	return out
}

type timeStep struct {
	every  time.Duration
	months int
	format string
}

var timeSteps = []timeStep{
	{every: time.Hour, format: "%H:%M"},
	{every: 3 * time.Hour, format: "%H:%M"},
	{every: 6 * time.Hour, format: "%b %d %H:%M"},
	{every: 12 * time.Hour, format: "%b %d %H:%M"},
	{every: 24 * time.Hour, format: "%b %d"},
	{every: 2 * 24 * time.Hour, format: "%b %d"},
	{every: 7 * 24 * time.Hour, format: "%b %d"},
	{every: 14 * 24 * time.Hour, format: "%b %d"},
	{months: 1, format: "%b %Y"},
	{months: 3, format: "%b %Y"},
	{months: 6, format: "%b %Y"},
	{months: 12, format: "%Y"},
}

// pickTimeStep returns the smallest step giving at most count ticks.
func pickTimeStep(span time.Duration, count int) timeStep {
	for _, s := range timeSteps {
		size := s.every
		if s.months > 0 {
			size = time.Duration(s.months) * 30 * 24 * time.Hour
		}
		if span/size <= time.Duration(count) {
			return s
		}
	}
	last := timeSteps[len(timeSteps)-1]
	years := int(span/(365*24*time.Hour))/count + 1
	return timeStep{months: 12 * years, format: last.format}
}

type tick struct {
	value float64
	label string
}

// timeTicks returns rounded UTC ticks inside [d0, d1] (Unix milliseconds).
func timeTicks(d0, d1 float64, count int) []tick {
	if d1 < d0 {
		d0, d1 = d1, d0
	}
	minT := time.UnixMilli(int64(d0)).UTC()
	maxT := time.UnixMilli(int64(d1)).UTC()
	step := pickTimeStep(maxT.Sub(minT), count)

	var t time.Time
	if step.months > 0 {
		m := (int(minT.Month()) - 1) / step.months * step.months
		t = time.Date(minT.Year(), time.Month(m+1), 1, 0, 0, 0, 0, time.UTC)
	} else {
		t = minT.Truncate(step.every)
	}

	var out []tick
	for !t.After(maxT) {
		if !t.Before(minT) {
			out = append(out, tick{value: models.DateX(t), label: strftime.Format(step.format, t)})
		}
		if step.months > 0 {
			t = t.AddDate(0, step.months, 0)
		} else {
			t = t.Add(step.every)
		}
		if len(out) > 2*count {
			break
		}
	}
	return out
}
