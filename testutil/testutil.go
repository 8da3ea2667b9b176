// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/solvegraph/cliparse"
	"github.com/danielhkuo/solvegraph/dashboard"
	"github.com/danielhkuo/solvegraph/db"
	"github.com/danielhkuo/solvegraph/models"
	"github.com/danielhkuo/solvegraph/source"
)

// Start is the date of the first synthetic solve.
var Start = time.Date(2020, 3, 1, 9, 0, 0, 0, time.UTC)

// SolveTime is the deterministic time of synthetic solve i.
func SolveTime(i int) float64 {
	return 10 + float64((i*37)%23)/2
}

// Records returns n synthetic records, two hours apart. Every 17th solve is a
// DNF.
func Records(n int) []models.SolveRecord {
	out := make([]models.SolveRecord, n)
	for i := range out {
		out[i] = models.SolveRecord{
			Index:    i,
			Time:     SolveTime(i),
			Scramble: "R U R' U'",
			Date:     Start.Add(time.Duration(i) * 2 * time.Hour),
			DNF:      i%17 == 16,
		}
	}
	return out
}

// CSV renders records in the record source format.
func CSV(records []models.SolveRecord) string {
	var sb strings.Builder
	for _, r := range records {
		dnf := ""
		if r.DNF {
			dnf = "1"
		}
		fmt.Fprintf(&sb, "%q;%q;%q;%q\n",
			fmt.Sprintf("%.2f", r.Time), r.Scramble, r.Date.Format("2006-01-02 15:04:05"), dnf)
	}
	return sb.String()
}

// WriteCSV writes content to a temp file and returns its path.
func WriteCSV(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "solves.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write test CSV: %v", err)
	}
	return path
}

// GetTestConfig returns a config reading from dataSource with an in-memory
// sqlite mirror private to the test.
func GetTestConfig(dataSource string) cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DataSource:   dataSource,
		DatabaseType: db.TypeSQLite,
		DatabaseURL:  "file:" + uuid.NewString() + "?mode=memory&cache=shared",
		RecentSolves: 1000,
		Malformed:    source.PolicyStrict,
		DateLayout:   "%Y-%m-%d",
		Width:        600,
		Height:       300,
	}
}

// SetupTestStore opens the store for cfg and closes it when the test ends.
func SetupTestStore(t *testing.T, cfg cliparse.Config) *db.Store {
	t.Helper()

	store, err := db.Open(context.Background(), cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// StaticLoader serves a fixed record set, or Err when set.
type StaticLoader struct {
	Records []models.SolveRecord
	Err     error
}

func (l *StaticLoader) Load(ctx context.Context) ([]models.SolveRecord, error) {
	if l.Err != nil {
		return nil, l.Err
	}
	return l.Records, nil
}

// SetupTestService returns a service loaded from loader. The mirror is left
// out; pass a store to NewService directly when a test needs it.
func SetupTestService(t *testing.T, loader dashboard.Loader) *dashboard.Service {
	t.Helper()

	svc := dashboard.NewService(loader, nil, dashboard.DefaultSettings(), "test")
	if _, err := svc.Reload(context.Background()); err != nil {
		t.Fatalf("Failed to load test service: %v", err)
	}
	return svc
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body any, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
