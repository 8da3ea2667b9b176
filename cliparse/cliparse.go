package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/solvegraph/db"
	"github.com/danielhkuo/solvegraph/source"
)

// DataSourceStore makes the server read records from the database mirror
// instead of a file or URL.
const DataSourceStore = "db"

type Config struct {
	Port         int
	DataSource   string
	DatabaseURL  string
	DatabaseType string
	RecentSolves int
	Malformed    source.Policy
	DateLayout   string
	LogLevel     slog.Level
	Width        int
	Height       int
	EnvFile      string
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var malformed, logLevel string

	fs := flag.NewFlagSet("solvegraph", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DataSource, "data", "", "Solve records: file path, http(s) URL or \"db\"")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (default in-memory sqlite)")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.IntVar(&cfg.RecentSolves, "recent", 0, "Records counted by the daily and weekly charts")
	fs.StringVar(&malformed, "malformed", "", "Malformed record policy (strict or skip)")
	fs.StringVar(&cfg.DateLayout, "date-format", "", "strftime layout for readout dates")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.IntVar(&cfg.Width, "width", 0, "Chart width in pixels")
	fs.IntVar(&cfg.Height, "height", 0, "Chart height in pixels")
	fs.StringVar(&cfg.EnvFile, "env", ".env", "Optional dotenv file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// .env values never override the real environment
	if cfg.EnvFile != "" {
		if _, err := os.Stat(cfg.EnvFile); err == nil {
			if err := godotenv.Load(cfg.EnvFile); err != nil {
				return Config{}, fmt.Errorf("failed to load %s: %w", cfg.EnvFile, err)
			}
		}
	}

	var err error
	if cfg.Port, err = intSetting(cfg.Port, "PORT", 3318); err != nil {
		return Config{}, err
	}
	if cfg.RecentSolves, err = intSetting(cfg.RecentSolves, "RECENT_SOLVES", 1000); err != nil {
		return Config{}, err
	}
	if cfg.Width, err = intSetting(cfg.Width, "CHART_WIDTH", 600); err != nil {
		return Config{}, err
	}
	if cfg.Height, err = intSetting(cfg.Height, "CHART_HEIGHT", 300); err != nil {
		return Config{}, err
	}

	cfg.DataSource = stringSetting(cfg.DataSource, "SOLVES_DATA", "")
	if cfg.DataSource == "" {
		return Config{}, errors.New("data source required (use -data or SOLVES_DATA env)")
	}

	cfg.DatabaseType = stringSetting(cfg.DatabaseType, "DATABASE_TYPE", db.TypeSQLite)
	if cfg.DatabaseType != db.TypeSQLite && cfg.DatabaseType != db.TypePostgres {
		return Config{}, fmt.Errorf("invalid database type %q (use sqlite or postgres)", cfg.DatabaseType)
	}
	cfg.DatabaseURL = stringSetting(cfg.DatabaseURL, "DATABASE_URL", "")
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == db.TypePostgres {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = db.DefaultSQLiteURL
	}

	if cfg.Malformed, err = source.ParsePolicy(stringSetting(malformed, "MALFORMED_POLICY", "strict")); err != nil {
		return Config{}, err
	}

	cfg.DateLayout = stringSetting(cfg.DateLayout, "DATE_FORMAT", "%Y-%m-%d")

	if err := cfg.LogLevel.UnmarshalText([]byte(stringSetting(logLevel, "LOG_LEVEL", "info"))); err != nil {
		return Config{}, fmt.Errorf("invalid log level: %w", err)
	}

	return cfg, nil
}

func stringSetting(flagValue, env, def string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(env); v != "" {
		return v
	}
	return def
}

func intSetting(flagValue int, env string, def int) (int, error) {
	if flagValue != 0 {
		return flagValue, nil
	}
	s := os.Getenv(env)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid %s env variable", env)
	}
	return v, nil
}
