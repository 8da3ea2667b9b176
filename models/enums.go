// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownSeriesType = errors.New("unknown series type")
	ErrUnknownXType      = errors.New("unknown x type")
)

// SeriesType selects how a series is drawn. The zero value is unset.
type SeriesType int

const (
	SeriesLine SeriesType = iota + 1
	SeriesDots
)

func (t SeriesType) String() string {
	switch t {
	case SeriesLine:
		return "line"
	case SeriesDots:
		return "dots"
	default:
		return fmt.Sprintf("SeriesType(%d)", int(t))
	}
}

// Valid reports whether t is one of the closed set of series types.
func (t SeriesType) Valid() bool {
	return t == SeriesLine || t == SeriesDots
}

// ParseSeriesType parses "line" or "dots".
func ParseSeriesType(s string) (SeriesType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "line":
		return SeriesLine, nil
	case "dots":
		return SeriesDots, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSeriesType, s)
	}
}

func (t SeriesType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSeriesType, int(t))
	}
	return []byte(t.String()), nil
}

func (t *SeriesType) UnmarshalText(b []byte) error {
	v, err := ParseSeriesType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// XType selects the x scale family and gap unit for a whole chart. The zero
// value is unset and is rejected at render time.
type XType int

const (
	XNumber XType = iota + 1
	XDate
)

func (t XType) String() string {
	switch t {
	case XNumber:
		return "number"
	case XDate:
		return "date"
	default:
		return fmt.Sprintf("XType(%d)", int(t))
	}
}

func (t XType) Valid() bool {
	return t == XNumber || t == XDate
}

// ParseXType parses "number" or "date".
func ParseXType(s string) (XType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "number":
		return XNumber, nil
	case "date":
		return XDate, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownXType, s)
	}
}

func (t XType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownXType, int(t))
	}
	return []byte(t.String()), nil
}

func (t *XType) UnmarshalText(b []byte) error {
	v, err := ParseXType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// GapUnit converts a raw x delta into gap-distance units (numbers stay as
// they are, dates become days).
func (t XType) GapUnit(delta float64) float64 {
	if t == XDate {
		return delta / MillisPerDay
	}
	return delta
}

// FromGapUnit is the inverse of GapUnit.
func (t XType) FromGapUnit(units float64) float64 {
	if t == XDate {
		return units * MillisPerDay
	}
	return units
}
