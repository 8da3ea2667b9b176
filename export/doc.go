// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package export writes a dashboard snapshot as an XLSX workbook: the raw
// solves, the summary and one long-form sheet per chart.
package export
