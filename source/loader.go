// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/danielhkuo/solvegraph/models"
)

var ErrEmptySource = errors.New("no data source configured")

// Loader fetches and parses the record source. Each Load is a single attempt;
// failures are returned to the caller and never retried.
type Loader struct {
	Source  string // file path or http(s) URL
	Options Options
	Client  *http.Client
}

func NewLoader(src string, opts Options) *Loader {
	return &Loader{
		Source:  src,
		Options: opts,
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// IsURL reports whether src is fetched over HTTP.
func IsURL(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

// Load reads the whole source and parses it.
func (l *Loader) Load(ctx context.Context) ([]models.SolveRecord, error) {
	if l.Source == "" {
		return nil, ErrEmptySource
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	rc, err := l.open(ctx)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	records, err := Parse(rc, l.Options)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", l.Source, err)
	}

	slog.Info("loaded solve records", "source", l.Source, "records", len(records), "duration", time.Since(start))
	return records, nil
}

func (l *Loader) open(ctx context.Context) (io.ReadCloser, error) {
	if !IsURL(l.Source) {
		f, err := os.Open(l.Source)
		if err != nil {
			return nil, fmt.Errorf("failed to open data source: %w", err)
		}
		return f, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.Source, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch data source: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("failed to fetch data source: unexpected status %s", resp.Status)
	}
	return resp.Body, nil
}
