// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package render

import (
	"bytes"

	"github.com/danielhkuo/solvegraph/models"
)

// Mount is the surface a chart is rendered into. *bytes.Buffer satisfies it.
type Mount interface {
	Write(p []byte) (int, error)
	Reset()
}

// Render clears mount and writes the SVG for series. The output is built in
// full before anything is written, so on error mount is left empty.
func Render(mount Mount, series []models.Series, graph models.GraphOptions) error {
	return RenderLayout(mount, series, graph, DefaultLayout())
}

// RenderLayout is Render with an explicit layout.
func RenderLayout(mount Mount, series []models.Series, graph models.GraphOptions, layout Layout) error {
	mount.Reset()
	c, err := NewChart(series, graph, layout)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := c.WriteSVG(&buf); err != nil {
		return err
	}
	_, err = mount.Write(buf.Bytes())
	return err
}
