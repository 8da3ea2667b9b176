// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/solvegraph/models"
)

const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"

	// DefaultSQLiteURL is a process-local in-memory database.
	DefaultSQLiteURL = "file:solvegraph?mode=memory&cache=shared"
)

var ErrUnknownDatabaseType = errors.New("unknown database type")

// Store mirrors the loaded solve records into a SQL database.
type Store struct {
	db     *sql.DB
	dbType string
}

// Open connects to dbType ("sqlite" or "postgres") at url, verifies the
// connection and creates the schema.
func Open(ctx context.Context, dbType, url string) (*Store, error) {
	dbType = strings.ToLower(dbType)
	if dbType == "" {
		dbType = TypeSQLite
	}
	if dbType != TypeSQLite && dbType != TypePostgres {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDatabaseType, dbType)
	}
	if url == "" && dbType == TypeSQLite {
		url = DefaultSQLiteURL
	}

	conn, err := sql.Open(dbType, url)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	if dbType == TypeSQLite {
		// one writer; also keeps a shared in-memory database alive
		conn.SetMaxOpenConns(1)
	}
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}
	if err := CreateSchema(conn); err != nil {
		conn.Close()
		return nil, err
	}

	return &Store{db: conn, dbType: dbType}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// DB exposes the underlying connection pool.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Type returns the driver name.
func (s *Store) Type() string {
	return s.dbType
}

// arg returns the n-th (1-based) bind placeholder for the driver.
func (s *Store) arg(n int) string {
	if s.dbType == TypePostgres {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}

func (s *Store) args(from, count int) string {
	parts := make([]string, count)
	for i := range parts {
		parts[i] = s.arg(from + i)
	}
	return strings.Join(parts, ", ")
}

// ReplaceAll swaps the mirrored records for records in one transaction.
func (s *Store) ReplaceAll(ctx context.Context, records []models.SolveRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM solve`); err != nil {
		return fmt.Errorf("failed to clear solves: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO solve (idx, time_seconds, scramble, solved_at_ms, utc_offset, dnf) VALUES (`+s.args(1, 6)+`)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		_, offset := r.Date.Zone()
		if _, err := stmt.ExecContext(ctx, r.Index, r.Time, r.Scramble, r.Date.UnixMilli(), offset, r.DNF); err != nil {
			return fmt.Errorf("failed to insert solve %d: %w", r.Index, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit solves: %w", err)
	}
	return nil
}

// LoadRecords returns the mirrored records ordered by index.
func (s *Store) LoadRecords(ctx context.Context) ([]models.SolveRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT idx, time_seconds, scramble, solved_at_ms, utc_offset, dnf FROM solve ORDER BY idx`)
	if err != nil {
		return nil, fmt.Errorf("failed to query solves: %w", err)
	}
	defer rows.Close()

	records := []models.SolveRecord{}
	for rows.Next() {
		var (
			r      models.SolveRecord
			ms     int64
			offset int
		)
		if err := rows.Scan(&r.Index, &r.Time, &r.Scramble, &ms, &offset, &r.DNF); err != nil {
			return nil, fmt.Errorf("failed to scan solve: %w", err)
		}
		r.Date = time.UnixMilli(ms).In(zoneFor(offset))
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read solves: %w", err)
	}
	return records, nil
}

// Load makes the store usable as a record source.
func (s *Store) Load(ctx context.Context) ([]models.SolveRecord, error) {
	return s.LoadRecords(ctx)
}

func zoneFor(offset int) *time.Location {
	if offset == 0 {
		return time.UTC
	}
	return time.FixedZone("", offset)
}

// LoadEntry is one row of the load history.
type LoadEntry struct {
	ID       string
	Source   string
	Records  int
	LoadedAt time.Time
}

// RecordLoad appends a load to the history.
func (s *Store) RecordLoad(ctx context.Context, e LoadEntry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO load_snapshot (id, source, record_count, loaded_at_ms) VALUES (`+s.args(1, 4)+`)`,
		e.ID, e.Source, e.Records, e.LoadedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to record load: %w", err)
	}
	return nil
}

// RecentLoads returns up to limit history entries, newest first.
func (s *Store) RecentLoads(ctx context.Context, limit int) ([]LoadEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source, record_count, loaded_at_ms FROM load_snapshot ORDER BY loaded_at_ms DESC LIMIT `+s.arg(1), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query loads: %w", err)
	}
	defer rows.Close()

	var out []LoadEntry
	for rows.Next() {
		var (
			e  LoadEntry
			ms int64
		)
		if err := rows.Scan(&e.ID, &e.Source, &e.Records, &ms); err != nil {
			return nil, fmt.Errorf("failed to scan load: %w", err)
		}
		e.LoadedAt = time.UnixMilli(ms).UTC()
		out = append(out, e)
	}
	return out, rows.Err()
}
