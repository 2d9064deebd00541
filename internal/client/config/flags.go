package config

import (
	"flag"
	"os"
	"time"

	"github.com/2018dayanan/bus-booking-admin-panel/internal/flagx"
)

// parseFlags populates cfg from command-line flags:
//
//	-e string    environment (development, staging, production)
//	-a string    API base URL
//	-t int       request timeout in seconds
//	-db string   token store database path
//	-check str   token check strategy (presence, expiry)
//	-log string  log level
//
// os.Args is filtered through flagx.FilterArgs first so the -c and
// -envfile flags owned by the other loaders do not break parsing.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-e", "-a", "-t", "-db", "-check", "-log"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.Env, "e", cfg.Env, "environment: development, staging or production")
	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "admin API base URL (overrides -e)")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "token store database path")
	fs.StringVar(&cfg.TokenCheck, "check", cfg.TokenCheck, "token check: presence or expiry")
	fs.StringVar(&cfg.LogLevel, "log", cfg.LogLevel, "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
