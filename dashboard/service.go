// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/solvegraph/db"
	"github.com/danielhkuo/solvegraph/models"
)

var ErrNoSnapshot = errors.New("no records loaded")

// Loader produces the full ordered record set.
type Loader interface {
	Load(ctx context.Context) ([]models.SolveRecord, error)
}

// Mirror receives every successfully loaded record set.
type Mirror interface {
	ReplaceAll(ctx context.Context, records []models.SolveRecord) error
	RecordLoad(ctx context.Context, e db.LoadEntry) error
}

// Snapshot is one immutable load: the records and everything derived from
// them. Handlers must not modify it.
type Snapshot struct {
	ID       string
	LoadedAt time.Time
	Records  []models.SolveRecord
	Charts   []models.NamedChart
	Summary  models.Summary
}

// Chart looks up a chart by name.
func (s *Snapshot) Chart(name string) (models.NamedChart, bool) {
	for _, c := range s.Charts {
		if c.Name == name {
			return c, true
		}
	}
	return models.NamedChart{}, false
}

// NewSnapshot builds the charts and summary for records.
func NewSnapshot(records []models.SolveRecord, settings Settings, now time.Time) *Snapshot {
	snap := &Snapshot{
		ID:       uuid.NewString(),
		LoadedAt: now,
		Records:  records,
		Charts:   Build(records, settings),
		Summary:  BuildSummary(records, now),
	}
	snap.Summary.SnapshotID = snap.ID
	return snap
}

// Service owns the current snapshot.
type Service struct {
	loader   Loader
	mirror   Mirror
	settings Settings
	source   string

	reloadMu sync.Mutex
	current  atomic.Pointer[Snapshot]
	now      func() time.Time
}

// NewService creates a service with no snapshot. mirror may be nil; source
// names the record source in the load history.
func NewService(loader Loader, mirror Mirror, settings Settings, source string) *Service {
	return &Service{
		loader:   loader,
		mirror:   mirror,
		settings: settings,
		source:   source,
		now:      time.Now,
	}
}

// Current returns the latest snapshot, or nil before the first successful
// load.
func (s *Service) Current() *Snapshot {
	return s.current.Load()
}

func (s *Service) Settings() Settings {
	return s.settings
}

// Reload loads the records once and publishes a new snapshot. On failure
// the previous snapshot stays current.
func (s *Service) Reload(ctx context.Context) (*Snapshot, error) {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	records, err := s.loader.Load(ctx)
	if err != nil {
		slog.Error("reload failed, keeping previous snapshot", "error", err)
		return nil, fmt.Errorf("failed to load records: %w", err)
	}

	snap := NewSnapshot(records, s.settings, s.now())

	if s.mirror != nil {
		// mirror failures are logged only
		if err := s.mirror.ReplaceAll(ctx, records); err != nil {
			slog.Warn("failed to mirror records", "error", err)
		} else if err := s.mirror.RecordLoad(ctx, db.LoadEntry{
			ID:       snap.ID,
			Source:   s.source,
			Records:  len(records),
			LoadedAt: snap.LoadedAt,
		}); err != nil {
			slog.Warn("failed to record load", "error", err)
		}
	}

	s.current.Store(snap)
	slog.Info("snapshot published", "snapshot_id", snap.ID, "records", len(records), "charts", len(snap.Charts))
	return snap, nil
}
