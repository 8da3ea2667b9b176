// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates the mirror tables. Safe to call multiple times.
func CreateSchema(db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

// Statements are kept to the subset sqlite and postgres share. Dates are
// stored as Unix milliseconds plus the UTC offset so calendar bucketing
// survives a round trip.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS solve (
    idx INTEGER PRIMARY KEY,
    time_seconds DOUBLE PRECISION NOT NULL,
    scramble TEXT NOT NULL,
    solved_at_ms BIGINT NOT NULL,
    utc_offset INTEGER NOT NULL DEFAULT 0,
    dnf BOOLEAN NOT NULL DEFAULT FALSE
)`,
	`CREATE INDEX IF NOT EXISTS idx_solve_solved_at ON solve(solved_at_ms)`,
	`CREATE TABLE IF NOT EXISTS load_snapshot (
    id TEXT PRIMARY KEY,
    source TEXT NOT NULL,
    record_count INTEGER NOT NULL,
    loaded_at_ms BIGINT NOT NULL
)`,
}
