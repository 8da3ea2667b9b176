// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package render

import (
	"fmt"
	"math"

	"github.com/danielhkuo/solvegraph/models"
	"github.com/ncruces/go-strftime"
)

// ReadoutTarget receives the hover readout text.
type ReadoutTarget interface {
	SetText(text string)
}

// Nearest inverts the pointer's x pixel through the x scale and returns the
// closest point that references a solve. Ties go to the earlier series and
// point.
func (c *Chart) Nearest(px float64) (models.Point, bool) {
	x := c.x.invert(px)
	var best models.Point
	bestDist := math.Inf(1)
	found := false
	for _, s := range c.series {
		for _, p := range s.Points {
			if p.Solve == nil || !p.Defined() {
				continue
			}
			if d := math.Abs(p.X - x); d < bestDist {
				best, bestDist, found = p, d, true
			}
		}
	}
	return best, found
}

// Hover writes the readout for the pointer position to target. A nil target
// or a chart without solve references is a no-op.
func (c *Chart) Hover(px float64, target ReadoutTarget) {
	if target == nil {
		return
	}
	p, ok := c.Nearest(px)
	if !ok {
		return
	}
	target.SetText(Readout(*p.Solve, c.layout.DateFormat))
}

// Readout formats a solve as "Solve {index}: {time} on {date}".
func Readout(s models.SolveRecord, dateFormat string) string {
	if dateFormat == "" {
		dateFormat = DefaultLayout().DateFormat
	}
	return fmt.Sprintf("Solve %d: %s on %s", s.Index, FormatTime(s.Time, s.DNF), strftime.Format(dateFormat, s.Date))
}

// FormatTime renders seconds the way timers display them: 12.34, 1:02.34 or
// DNF.
func FormatTime(seconds float64, dnf bool) string {
	if dnf {
		return "DNF"
	}
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return "-"
	}
	if seconds < 60 {
		return fmt.Sprintf("%.2f", seconds)
	}
	minutes := math.Floor(seconds / 60)
	rest := seconds - 60*minutes
	return fmt.Sprintf("%d:%05.2f", int(minutes), rest)
}
