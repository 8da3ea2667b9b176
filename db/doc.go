// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db mirrors loaded solve records into SQLite or PostgreSQL.

The record source stays the source of truth; the mirror exists so other
tools can query the same data with SQL and so the server can start from the
mirror alone ("-data db").

# Opening

	store, err := db.Open(ctx, "sqlite", "")        // in-memory
	store, err := db.Open(ctx, "postgres", dbURL)

Open pings the database and runs CreateSchema, which is safe to call
multiple times.

# Tables

  - solve: one row per record (idx, time_seconds, scramble, solved_at_ms,
    utc_offset, dnf)
  - load_snapshot: one row per successful load (id, source, record_count,
    loaded_at_ms)

# Writing

ReplaceAll deletes and re-inserts every record in a single transaction, so
readers see either the old or the new set.
*/
package db
