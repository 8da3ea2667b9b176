// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package series

import "github.com/danielhkuo/solvegraph/models"

// RunningBest keeps the points that strictly improve on every earlier kept
// point (lower is better). Ties are not improvements and undefined values are
// never kept.
func RunningBest(points []models.Point) []models.Point {
	out := []models.Point{}
	for _, p := range points {
		if !p.Defined() {
			continue
		}
		if len(out) == 0 || p.Y < out[len(out)-1].Y {
			out = append(out, p)
		}
	}
	return out
}
