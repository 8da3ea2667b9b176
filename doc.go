// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the solvegraph server.

solvegraph turns a timer's solve export into a dashboard: raw times, trimmed
moving averages (Ao5, Ao12, Ao50, Ao100), personal bests and daily/weekly
solve counts, rendered server-side as SVG with a hover readout.

# Starting the Server

	SOLVES_DATA=solves.csv go run .

Or with flags:

	go run . -p 3318 -data https://example.com/solves.csv -malformed skip

# Configuration

Required settings:

  - SOLVES_DATA (-data): records file, http(s) URL, or "db" to read the mirror

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE / DATABASE_URL (-t / -d): record mirror (default: in-memory sqlite)
  - RECENT_SOLVES (-recent), MALFORMED_POLICY (-malformed), DATE_FORMAT
    (-date-format), LOG_LEVEL (-log-level), CHART_WIDTH/CHART_HEIGHT

A .env file in the working directory is read if present.

# Startup

The records are loaded once before the listener opens. If that load fails
the process exits with status 1. Later loads happen only through
POST /reload, and a failed reload keeps serving the previous data.

Logs go to stderr as text on a terminal and as JSON otherwise.

# Architecture

  - models: data model and API types
  - series: moving averages, running bests, counts, gap markers
  - chartopts: option defaults and JSON decoding
  - render: scales, SVG/PNG output, hover readout
  - dashboard: chart definitions and the snapshot service
  - source: record parsing and loading
  - db: SQLite/PostgreSQL mirror
  - export: XLSX workbook
  - handlers, router, middleware, web: HTTP surface
  - cliparse: configuration parsing

The offline renderer lives in cmd/solvechart.
*/
package main
