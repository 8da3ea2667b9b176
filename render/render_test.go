// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package render

import (
	"bytes"
	"errors"
	"image/png"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/solvegraph/models"
)

func line(name string, pts ...models.Point) models.Series {
	return models.Series{
		Name:   name,
		Points: pts,
		Options: models.SeriesOptions{
			Type:  models.SeriesLine,
			Line:  models.LineOptions{ShowGaps: true, GapDistance: 2},
			Color: "steelblue",
		},
	}
}

func pt(x, y float64) models.Point { return models.Point{X: x, Y: y} }

var numberGraph = models.GraphOptions{XType: models.XNumber}

func TestNewChart_Domains(t *testing.T) {
	c, err := NewChart([]models.Series{
		line("a", pt(2, 13), pt(5, 41.5)),
		line("b", pt(-1, 7), pt(3, math.NaN())),
	}, numberGraph, DefaultLayout())
	if err != nil {
		t.Fatalf("NewChart failed: %v", err)
	}

	if x0, x1 := c.XDomain(); x0 != -1 || x1 != 5 {
		t.Errorf("Expected x domain [-1 5], got [%v %v]", x0, x1)
	}
	if y0, y1 := c.YDomain(); y0 != 0 || y1 != 45 {
		t.Errorf("Expected niced y domain [0 45], got [%v %v]", y0, y1)
	}

	l := DefaultLayout()
	if got := c.XPixel(-1); got != l.Margin.Left {
		t.Errorf("Expected x min at left margin, got %v", got)
	}
	if got := c.YPixel(0); got != l.Height-l.Margin.Bottom {
		t.Errorf("Expected y=0 at bottom, got %v", got)
	}
	if c.YPixel(40) >= c.YPixel(10) {
		t.Errorf("Expected larger values to draw higher")
	}
}

func TestNewChart_Degenerate(t *testing.T) {
	tests := []struct {
		name   string
		series []models.Series
		graph  models.GraphOptions
		x0, x1 float64
	}{
		{"no series", nil, numberGraph, 0, 1},
		{"empty series", []models.Series{line("a")}, numberGraph, 0, 1},
		{"empty date series", []models.Series{line("a")}, models.GraphOptions{XType: models.XDate}, 0, models.MillisPerDay},
		{"all gaps", []models.Series{line("a", pt(1, math.NaN()), pt(4, math.NaN()))}, numberGraph, 1, 4},
		{"single point", []models.Series{line("a", pt(3, 9))}, numberGraph, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewChart(tt.series, tt.graph, DefaultLayout())
			if err != nil {
				t.Fatalf("NewChart failed: %v", err)
			}
			if x0, x1 := c.XDomain(); x0 != tt.x0 || x1 != tt.x1 {
				t.Errorf("Expected x domain [%v %v], got [%v %v]", tt.x0, tt.x1, x0, x1)
			}
			y0, y1 := c.YDomain()
			if math.IsNaN(y0) || math.IsNaN(y1) || y1 <= y0 {
				t.Errorf("Expected usable y domain, got [%v %v]", y0, y1)
			}
			var buf bytes.Buffer
			if err := c.WriteSVG(&buf); err != nil {
				t.Fatalf("WriteSVG failed: %v", err)
			}
			if strings.Contains(buf.String(), "NaN") {
				t.Errorf("SVG contains NaN: %s", buf.String())
			}
		})
	}
}

func TestNewChart_UnknownVariants(t *testing.T) {
	tests := []struct {
		name   string
		series []models.Series
		graph  models.GraphOptions
		want   error
	}{
		{"unset x type", []models.Series{line("a", pt(1, 1))}, models.GraphOptions{}, models.ErrUnknownXType},
		{"bad x type", nil, models.GraphOptions{XType: 7}, models.ErrUnknownXType},
		{"bad series type", []models.Series{{Name: "a", Options: models.SeriesOptions{Type: 9}}}, numberGraph, models.ErrUnknownSeriesType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewChart(tt.series, tt.graph, DefaultLayout())
			if !errors.Is(err, tt.want) {
				t.Fatalf("Expected %v, got %v", tt.want, err)
			}
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Errorf("Expected *ConfigError, got %T", err)
			}
		})
	}
}

func TestLinePath_BreaksAtUndefined(t *testing.T) {
	c, err := NewChart([]models.Series{line("a")}, numberGraph, DefaultLayout())
	if err != nil {
		t.Fatal(err)
	}
	c.x = linearScale{d0: 0, d1: 10, r0: 0, r1: 100}
	c.y = linearScale{d0: 0, d1: 10, r0: 100, r1: 0}

	got := c.linePath([]models.Point{pt(0, 0), pt(1, 1), pt(2, math.NaN()), pt(3, 3), pt(4, math.NaN()), pt(5, 5), pt(6, 6)})
	want := "M0,100L10,90M30,70ZM50,50L60,40"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestWriteSVG_SeriesElements(t *testing.T) {
	dots := models.Series{
		Name:    "singles",
		Points:  []models.Point{pt(0, 10), pt(1, math.NaN()), pt(2, 12)},
		Options: models.SeriesOptions{Type: models.SeriesDots, Color: "tomato"},
	}
	avg := line("ao5", pt(0, 11), pt(2, 11.5))
	avg.Options.Attrs = map[string]string{"stroke-dasharray": "4 2", "onclick": "alert(1)"}

	c, err := NewChart([]models.Series{dots, avg}, numberGraph, DefaultLayout())
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := c.WriteSVG(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	if n := strings.Count(out, "<circle"); n != 2 {
		t.Errorf("Expected 2 circles, got %d", n)
	}
	if !strings.Contains(out, `fill="tomato"`) {
		t.Errorf("Expected dot color in output")
	}
	if !strings.Contains(out, `stroke-dasharray="4 2"`) {
		t.Errorf("Expected pass-through attribute in output")
	}
	if strings.Contains(out, "onclick") {
		t.Errorf("Event handler attributes must not be passed through")
	}
	if !strings.Contains(out, `class="hover-layer"`) {
		t.Errorf("Expected hover layer")
	}
}

func TestWriteSVG_DateAxis(t *testing.T) {
	d := func(day int) float64 { return models.DateX(time.Date(2020, 3, day, 0, 0, 0, 0, time.UTC)) }
	c, err := NewChart([]models.Series{line("daily", pt(d(1), 3), pt(d(8), 5))}, models.GraphOptions{XType: models.XDate}, DefaultLayout())
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := c.WriteSVG(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Mar 01") {
		t.Errorf("Expected date tick label, got %s", buf.String())
	}
}

type bufMount struct {
	bytes.Buffer
	resets int
}

func (m *bufMount) Reset() {
	m.resets++
	m.Buffer.Reset()
}

func TestRender_ReplacesContent(t *testing.T) {
	m := &bufMount{}
	m.WriteString("stale content")

	if err := Render(m, []models.Series{line("a", pt(0, 1), pt(1, 2))}, numberGraph); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if m.resets != 1 {
		t.Errorf("Expected 1 reset, got %d", m.resets)
	}
	if strings.Contains(m.String(), "stale") || !strings.HasPrefix(m.String(), "<svg") {
		t.Errorf("Expected fresh SVG, got %q", m.String())
	}
}

func TestRender_FailsClosed(t *testing.T) {
	m := &bufMount{}
	m.WriteString("previous chart")

	err := Render(m, []models.Series{line("a", pt(0, 1))}, models.GraphOptions{})
	if !errors.Is(err, models.ErrUnknownXType) {
		t.Fatalf("Expected ErrUnknownXType, got %v", err)
	}
	if m.Len() != 0 {
		t.Errorf("Expected empty mount after failure, got %q", m.String())
	}
}

type textTarget struct{ text string }

func (t *textTarget) SetText(s string) { t.text = s }

func TestHover(t *testing.T) {
	recs := []models.SolveRecord{
		{Index: 0, Time: 12.5, Date: time.Date(2020, 3, 1, 10, 0, 0, 0, time.UTC)},
		{Index: 1, Time: 75.25, Date: time.Date(2020, 3, 2, 10, 0, 0, 0, time.UTC)},
		{Index: 2, Time: 11, DNF: true, Date: time.Date(2020, 3, 3, 10, 0, 0, 0, time.UTC)},
	}
	s := line("times")
	for i := range recs {
		s.Points = append(s.Points, models.Point{X: float64(i), Y: recs[i].Value(), Solve: &recs[i]})
	}
	s.Points[2].Y = math.NaN()

	c, err := NewChart([]models.Series{s}, numberGraph, DefaultLayout())
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		px   float64
		want string
	}{
		{"left edge", c.XPixel(0), "Solve 0: 12.50 on 2020-03-01"},
		{"nearest wins", c.XPixel(0.8), "Solve 1: 1:15.25 on 2020-03-02"},
		{"undefined skipped", c.XPixel(2), "Solve 1: 1:15.25 on 2020-03-02"},
		{"far right clamps", c.XPixel(2) + 500, "Solve 1: 1:15.25 on 2020-03-02"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := &textTarget{}
			c.Hover(tt.px, target)
			if target.text != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, target.text)
			}
		})
	}

	// nil target is tolerated
	c.Hover(c.XPixel(1), nil)
}

func TestHover_NoSolves(t *testing.T) {
	c, err := NewChart([]models.Series{line("counts", pt(0, 3))}, numberGraph, DefaultLayout())
	if err != nil {
		t.Fatal(err)
	}
	target := &textTarget{text: "unchanged"}
	c.Hover(100, target)
	if target.text != "unchanged" {
		t.Errorf("Expected no readout, got %q", target.text)
	}
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		seconds float64
		dnf     bool
		want    string
	}{
		{9.876, false, "9.88"},
		{59.99, false, "59.99"},
		{62.5, false, "1:02.50"},
		{600, false, "10:00.00"},
		{12, true, "DNF"},
	}
	for _, tt := range tests {
		if got := FormatTime(tt.seconds, tt.dnf); got != tt.want {
			t.Errorf("FormatTime(%v, %v): expected %q, got %q", tt.seconds, tt.dnf, tt.want, got)
		}
	}
}

func TestNiceDomain(t *testing.T) {
	tests := []struct {
		stop float64
		want float64
	}{
		{41.5, 45},
		{9.3, 10},
		{0.87, 0.9},
		{123, 130},
		{1, 1},
	}
	for _, tt := range tests {
		_, got := niceDomain(0, tt.stop, 10)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("niceDomain(0, %v): expected %v, got %v", tt.stop, tt.want, got)
		}
	}
}

func TestNumberTicks(t *testing.T) {
	got := numberTicks(0, 45, 10)
	if len(got) != 10 || got[0] != 0 || got[9] != 45 {
		t.Errorf("Expected 0..45 by 5, got %v", got)
	}
	if got := numberTicks(0, 1, 10); len(got) != 11 || math.Abs(got[3]-0.3) > 1e-12 {
		t.Errorf("Expected 0..1 by 0.1, got %v", got)
	}
}

func TestWritePNG(t *testing.T) {
	s := line("a", pt(0, 10), pt(1, 11), pt(2, math.NaN()), pt(3, 9))
	dots := models.Series{Name: "d", Points: []models.Point{pt(0, 12)}, Options: models.SeriesOptions{Type: models.SeriesDots, Color: "#ff0000"}}

	for _, series := range [][]models.Series{{s, dots}, nil} {
		c, err := NewChart(series, numberGraph, DefaultLayout())
		if err != nil {
			t.Fatal(err)
		}
		var buf bytes.Buffer
		if err := c.WritePNG(&buf); err != nil {
			t.Fatalf("WritePNG failed: %v", err)
		}
		img, err := png.Decode(&buf)
		if err != nil {
			t.Fatalf("Output is not a PNG: %v", err)
		}
		if img.Bounds().Dx() != 600 || img.Bounds().Dy() != 300 {
			t.Errorf("Expected 600x300, got %v", img.Bounds())
		}
	}
}
