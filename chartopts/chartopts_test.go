// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package chartopts

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/danielhkuo/solvegraph/models"
)

func ptr[T any](v T) *T { return &v }

func TestResolveSeries_Defaults(t *testing.T) {
	got := ResolveSeries(SeriesInput{})
	want := models.SeriesOptions{
		Type:  models.SeriesLine,
		Line:  models.LineOptions{ShowGaps: true, GapDistance: 2},
		Color: "steelblue",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}

func TestResolveSeries_FieldFallback(t *testing.T) {
	tests := []struct {
		name  string
		input SeriesInput
		check func(t *testing.T, o models.SeriesOptions)
	}{
		{
			name:  "dots keep default line options",
			input: SeriesInput{Type: ptr(models.SeriesDots)},
			check: func(t *testing.T, o models.SeriesOptions) {
				if o.Type != models.SeriesDots {
					t.Errorf("Expected dots, got %v", o.Type)
				}
				if !o.Line.ShowGaps || o.Line.GapDistance != 2 {
					t.Errorf("Expected default line options, got %+v", o.Line)
				}
			},
		},
		{
			name:  "partial line options",
			input: SeriesInput{Line: &LineInput{GapDistance: ptr(7.5)}},
			check: func(t *testing.T, o models.SeriesOptions) {
				if o.Line.GapDistance != 7.5 {
					t.Errorf("Expected gap 7.5, got %v", o.Line.GapDistance)
				}
				if !o.Line.ShowGaps {
					t.Errorf("Expected showGaps to keep its default")
				}
			},
		},
		{
			name:  "explicit false is kept",
			input: SeriesInput{Line: &LineInput{ShowGaps: ptr(false)}},
			check: func(t *testing.T, o models.SeriesOptions) {
				if o.Line.ShowGaps {
					t.Errorf("Expected showGaps false")
				}
			},
		},
		{
			name:  "color and attrs",
			input: SeriesInput{Color: ptr("tomato"), Attrs: map[string]string{"opacity": "0.5"}},
			check: func(t *testing.T, o models.SeriesOptions) {
				if o.Color != "tomato" {
					t.Errorf("Expected tomato, got %s", o.Color)
				}
				if o.Attrs["opacity"] != "0.5" {
					t.Errorf("Expected attrs to pass through, got %v", o.Attrs)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, ResolveSeries(tt.input))
		})
	}
}

func TestResolveSeries_Idempotent(t *testing.T) {
	inputs := []SeriesInput{
		{},
		{Type: ptr(models.SeriesDots), Color: ptr("red")},
		{Line: &LineInput{ShowGaps: ptr(false), GapDistance: ptr(14.0)}, Attrs: map[string]string{"stroke-width": "3"}},
	}
	for i, in := range inputs {
		once := ResolveSeries(in)
		twice := ResolveSeries(Input(once))
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("Input %d: expected %+v, got %+v", i, once, twice)
		}
	}
}

func TestResolveGraph(t *testing.T) {
	if got := ResolveGraph(GraphInput{}); got.XType != 0 {
		t.Errorf("Expected unset x type, got %v", got.XType)
	}
	if got := ResolveGraph(Graph(models.XDate)); got.XType != models.XDate {
		t.Errorf("Expected date, got %v", got.XType)
	}
}

func TestSeriesInput_UnmarshalJSON(t *testing.T) {
	body := `{"seriesType":"dots","lineOptions":{"gapDistance":3},"color":"red","stroke-dasharray":"4 2","opacity":0.5}`

	var in SeriesInput
	if err := json.Unmarshal([]byte(body), &in); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	o := ResolveSeries(in)

	if o.Type != models.SeriesDots {
		t.Errorf("Expected dots, got %v", o.Type)
	}
	if o.Line.GapDistance != 3 || !o.Line.ShowGaps {
		t.Errorf("Expected gap 3 with default showGaps, got %+v", o.Line)
	}
	if o.Attrs["stroke-dasharray"] != "4 2" || o.Attrs["opacity"] != "0.5" {
		t.Errorf("Expected unknown keys in attrs, got %v", o.Attrs)
	}
}

func TestSeriesInput_UnmarshalJSON_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown series type", `{"seriesType":"bars"}`},
		{"nested unknown key", `{"extra":{"a":1}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in SeriesInput
			if err := json.Unmarshal([]byte(tt.body), &in); err == nil {
				t.Errorf("Expected error for %s", tt.body)
			}
		})
	}
}
