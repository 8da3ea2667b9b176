// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DataSource: Solve records file, http(s) URL, or "db" for the mirror (required)
  - DatabaseURL: Mirror connection string (default: in-memory sqlite)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - RecentSolves: Records counted by the daily/weekly charts (default: 1000)
  - Malformed: strict or skip (default: strict)
  - DateLayout: strftime layout of readout dates (default: %Y-%m-%d)
  - LogLevel: debug, info, warn or error (default: info)
  - Width, Height: Chart size in pixels (default: 600x300)

# CLI Flags

	-p            Server port
	-data         Solve records source
	-d            Database URL
	-t            Database type
	-recent       Recent solve count
	-malformed    Malformed record policy
	-date-format  Readout date layout
	-log-level    Log level
	-width        Chart width
	-height       Chart height
	-env          Dotenv file (default: .env)

# Environment Variables

Flags fall back to environment variables:

	PORT             → -p
	SOLVES_DATA      → -data
	DATABASE_URL     → -d
	DATABASE_TYPE    → -t
	RECENT_SOLVES    → -recent
	MALFORMED_POLICY → -malformed
	DATE_FORMAT      → -date-format
	LOG_LEVEL        → -log-level
	CHART_WIDTH      → -width
	CHART_HEIGHT     → -height

CLI flags take precedence over environment variables. If the dotenv file
exists it is loaded first; it only fills variables that are not already set.

# Validation

ParseFlags returns an error if:

  - SOLVES_DATA is missing
  - DATABASE_TYPE is not sqlite or postgres
  - postgres is selected without DATABASE_URL
  - a number, policy or log level does not parse
*/
package cliparse
