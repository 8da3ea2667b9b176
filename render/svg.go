// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package render

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/danielhkuo/solvegraph/models"
)

const (
	axisColor   = "currentColor"
	tickSize    = 6
	fontSize    = 10
	strokeWidth = 1.5
	dotRadius   = 2
)

// WriteSVG writes the chart as a standalone SVG document.
func (c *Chart) WriteSVG(w io.Writer) error {
	bw := bufio.NewWriter(w)
	l := c.layout

	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s" fill="none" stroke-linejoin="round" stroke-linecap="round" data-x-type="%s">`,
		formatNumber(l.Width), formatNumber(l.Height), formatNumber(l.Width), formatNumber(l.Height), c.graph.XType)
	bw.WriteString("\n")

	c.writeXAxis(bw)
	c.writeYAxis(bw)

	for _, s := range c.series {
		switch s.Options.Type {
		case models.SeriesLine:
			c.writeLine(bw, s)
		case models.SeriesDots:
			c.writeDots(bw, s)
		}
	}

	fmt.Fprintf(bw, `<rect class="hover-layer" x="%s" y="%s" width="%s" height="%s" fill="transparent" pointer-events="all" data-x0="%s" data-x1="%s" data-r0="%s" data-r1="%s"/>`,
		formatNumber(l.Margin.Left), formatNumber(l.Margin.Top),
		formatNumber(l.Width-l.Margin.Left-l.Margin.Right), formatNumber(l.Height-l.Margin.Top-l.Margin.Bottom),
		formatNumber(c.x.d0), formatNumber(c.x.d1), formatNumber(c.x.r0), formatNumber(c.x.r1))
	bw.WriteString("\n</svg>\n")

	return bw.Flush()
}

func (c *Chart) writeXAxis(w *bufio.Writer) {
	l := c.layout
	y := l.Height - l.Margin.Bottom
	fmt.Fprintf(w, `<g class="x-axis" transform="translate(0,%s)" fill="none" font-size="%d" font-family="sans-serif" text-anchor="middle">`, formatNumber(y), fontSize)
	fmt.Fprintf(w, `<path class="domain" stroke="%s" d="M%s,%dV0H%sV%d"/>`,
		axisColor, formatNumber(c.x.r0), tickSize, formatNumber(c.x.r1), tickSize)
	for _, t := range c.xTicks() {
		px := c.x.apply(t.value)
		fmt.Fprintf(w, `<g class="tick" transform="translate(%s,0)"><line stroke="%s" y2="%d"/><text fill="%s" y="%d" dy="0.71em">%s</text></g>`,
			formatNumber(px), axisColor, tickSize, axisColor, tickSize+3, html.EscapeString(t.label))
	}
	w.WriteString("</g>\n")
}

func (c *Chart) writeYAxis(w *bufio.Writer) {
	l := c.layout
	fmt.Fprintf(w, `<g class="y-axis" transform="translate(%s,0)" fill="none" font-size="%d" font-family="sans-serif" text-anchor="end">`, formatNumber(l.Margin.Left), fontSize)
	fmt.Fprintf(w, `<path class="domain" stroke="%s" d="M-%d,%sH0V%sH-%d"/>`,
		axisColor, tickSize, formatNumber(c.y.r0), formatNumber(c.y.r1), tickSize)
	for _, t := range c.yTicks() {
		py := c.y.apply(t.value)
		fmt.Fprintf(w, `<g class="tick" transform="translate(0,%s)"><line stroke="%s" x2="-%d"/><text fill="%s" x="-%d" dy="0.32em">%s</text></g>`,
			formatNumber(py), axisColor, tickSize, axisColor, tickSize+3, html.EscapeString(t.label))
	}
	w.WriteString("</g>\n")
}

func (c *Chart) writeLine(w *bufio.Writer, s models.Series) {
	fmt.Fprintf(w, `<path class="series line" data-name="%s" stroke="%s" stroke-width="%s"%s d="%s"/>`,
		html.EscapeString(s.Name), html.EscapeString(s.Options.Color), formatNumber(strokeWidth),
		attrString(s.Options.Attrs), c.linePath(s.Points))
	w.WriteString("\n")
}

func (c *Chart) writeDots(w *bufio.Writer, s models.Series) {
	fmt.Fprintf(w, `<g class="series dots" data-name="%s" fill="%s" stroke="none"%s>`,
		html.EscapeString(s.Name), html.EscapeString(s.Options.Color), attrString(s.Options.Attrs))
	for _, p := range s.Points {
		if !p.Defined() {
			continue
		}
		fmt.Fprintf(w, `<circle cx="%s" cy="%s" r="%d"/>`, formatNumber(c.x.apply(p.X)), formatNumber(c.y.apply(p.Y)), dotRadius)
	}
	w.WriteString("</g>\n")
}

// linePath builds the d attribute of a line. Undefined points end the current
// segment; the next defined point starts a new one with M. A segment of a
// single point is closed with Z so it still shows up.
func (c *Chart) linePath(points []models.Point) string {
	var sb strings.Builder
	segment := 0
	for _, p := range points {
		if !p.Defined() {
			if segment == 1 {
				sb.WriteString("Z")
			}
			segment = 0
			continue
		}
		if segment == 0 {
			sb.WriteString("M")
		} else {
			sb.WriteString("L")
		}
		sb.WriteString(formatNumber(c.x.apply(p.X)))
		sb.WriteString(",")
		sb.WriteString(formatNumber(c.y.apply(p.Y)))
		segment++
	}
	if segment == 1 {
		sb.WriteString("Z")
	}
	return sb.String()
}

// attrString renders pass-through attributes in a stable order.
func attrString(attrs map[string]string) string {
	if len(attrs) == 0 {
		return ""
	}
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		if validAttrName(k) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, ` %s="%s"`, k, html.EscapeString(attrs[k]))
	}
	return sb.String()
}

// validAttrName keeps attribute names to letters, digits, '-' and ':' and
// rejects event handlers.
func validAttrName(name string) bool {
	if name == "" || strings.HasPrefix(strings.ToLower(name), "on") {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == ':':
		default:
			return false
		}
	}
	return true
}

// formatNumber rounds to two decimals and drops trailing zeros.
func formatNumber(v float64) string {
	r := math.Round(v*100) / 100
	if r == 0 {
		return "0"
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
