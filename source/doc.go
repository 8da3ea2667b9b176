// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package source reads solve records from a file or URL.

# Format

One record per line, fields separated by ';' and usually double-quoted:

	"12.34";"R U R' U' F2";"2020-03-01 10:15:00";""
	"1:02.34";"D2 L' B";"2020-03-01 10:17:42";"1"

Fields are the timer display time (seconds, or minutes:seconds), the
scramble, the date and an optional DNF marker (any non-empty value). Dates
may be "2006-01-02 15:04:05", "2006-01-02T15:04:05", RFC3339 or a bare
"2006-01-02".

# Malformed records

PolicyStrict (default) fails the load with a *ParseError naming the line and
field. PolicySkip logs a warning and drops the line; the remaining records
are renumbered so Index stays contiguous.

# Loading

	loader := source.NewLoader("solves.csv", source.Options{Policy: source.PolicySkip})
	records, err := loader.Load(ctx)

http:// and https:// sources are fetched with a context-bound GET. A load
is a single attempt.
*/
package source
