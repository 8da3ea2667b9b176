// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package series derives point sequences from solve records.

Every function is pure: inputs are never modified and a fresh slice is
returned.

	ao12 := series.MovingAverage(records, 12, 1, models.XNumber)
	pbs := series.RunningBest(ao12)
	daily := series.DailyCounts(series.Times(records, models.XDate))
	gapped := series.InsertGaps(daily, models.XDate, 2)

Undefined values are NaN (see models.Undefined) and render as line breaks.
*/
package series
