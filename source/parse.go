// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/danielhkuo/solvegraph/models"
)

var (
	ErrFieldCount    = errors.New("expected at least 3 fields")
	ErrInvalidTime   = errors.New("invalid solve time")
	ErrInvalidDate   = errors.New("invalid solve date")
	ErrUnknownPolicy = errors.New("unknown malformed-record policy")
)

// Policy decides what happens to a record that cannot be parsed.
type Policy string

const (
	// PolicyStrict fails the whole load on the first bad record.
	PolicyStrict Policy = "strict"
	// PolicySkip drops bad records and logs a warning for each.
	PolicySkip Policy = "skip"
)

func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(s))); p {
	case PolicyStrict, PolicySkip:
		return p, nil
	case "":
		return PolicyStrict, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// ParseError locates a malformed record.
type ParseError struct {
	Line  int
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d, field %s: %v", e.Line, e.Field, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Options controls parsing.
type Options struct {
	Policy   Policy
	Location *time.Location // zone for dates without an offset; UTC when nil
}

// dateLayouts are tried in order.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02",
}

// Parse reads solve records, one per line, fields separated by ';':
//
//	"12.34";"R U R' U'";"2020-03-01 10:00:00";""
//
// The fourth field marks a DNF when non-empty. Records get consecutive
// indexes starting at 0 in the order they are accepted.
func Parse(r io.Reader, opts Options) ([]models.SolveRecord, error) {
	if opts.Policy == "" {
		opts.Policy = PolicyStrict
	}
	if opts.Policy != PolicyStrict && opts.Policy != PolicySkip {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, opts.Policy)
	}
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}

	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	records := []models.SolveRecord{}
	skipped := 0
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		var perr *ParseError
		var rec models.SolveRecord
		if err != nil {
			var cerr *csv.ParseError
			if !errors.As(err, &cerr) {
				return nil, fmt.Errorf("failed to read records: %w", err)
			}
			perr = &ParseError{Line: cerr.Line, Err: cerr.Err}
		} else {
			line, _ := cr.FieldPos(0)
			rec, perr = parseRecord(fields, line, loc)
		}

		if perr != nil {
			if opts.Policy == PolicyStrict {
				return nil, perr
			}
			skipped++
			slog.Warn("skipping malformed record", "line", perr.Line, "field", perr.Field, "error", perr.Err)
			continue
		}

		rec.Index = len(records)
		records = append(records, rec)
	}

	if skipped > 0 {
		slog.Info("parsed solve records", "records", len(records), "skipped", skipped)
	}
	return records, nil
}

func parseRecord(fields []string, line int, loc *time.Location) (models.SolveRecord, *ParseError) {
	if len(fields) < 3 {
		return models.SolveRecord{}, &ParseError{Line: line, Err: fmt.Errorf("%w, got %d", ErrFieldCount, len(fields))}
	}

	seconds, err := ParseTime(fields[0])
	if err != nil {
		return models.SolveRecord{}, &ParseError{Line: line, Field: "time", Err: err}
	}
	date, err := ParseDate(fields[2], loc)
	if err != nil {
		return models.SolveRecord{}, &ParseError{Line: line, Field: "date", Err: err}
	}

	return models.SolveRecord{
		Time:     seconds,
		Scramble: fields[1],
		Date:     date,
		DNF:      len(fields) > 3 && strings.TrimSpace(fields[3]) != "",
	}, nil
}

// ParseTime converts a timer display string ("12.34" or "1:02.34") to
// seconds.
func ParseTime(s string) (float64, error) {
	s = strings.TrimSpace(s)
	minutes, rest := "0", s
	if before, after, ok := strings.Cut(s, ":"); ok {
		minutes, rest = before, after
	}

	m, err := strconv.ParseFloat(minutes, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	sec, err := strconv.ParseFloat(rest, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	total := 60*m + sec
	if m < 0 || sec < 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	return total, nil
}

// ParseDate accepts the layouts in dateLayouts. Dates without an offset are
// read in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}
