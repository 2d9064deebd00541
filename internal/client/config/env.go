package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/2018dayanan/bus-booking-admin-panel/internal/flagx"
	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

// parseEnv overlays cfg with values from a dotenv file and the process
// environment. The file is -envfile if given, else ./.env when present.
// Process variables win over file entries.
//
// Recognized keys: APP_ENV, API_BASE_URL, ADMIN_DB, REQUEST_TIMEOUT,
// TOKEN_CHECK, LOG_LEVEL.
func parseEnv(cfg *Config) {
	path := flagx.EnvFileFlag()
	explicit := path != ""
	if !explicit {
		path = defaultEnvFile
	}

	vals, err := godotenv.Read(path)
	if err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			panic(err)
		}
		vals = map[string]string{}
	}

	applyEnv(cfg, func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := vals[key]
		return v, ok
	})
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) {
	if v, ok := lookup("APP_ENV"); ok && v != "" {
		cfg.Env = v
	}
	if v, ok := lookup("API_BASE_URL"); ok && v != "" {
		cfg.APIBaseURL = v
	}
	if v, ok := lookup("ADMIN_DB"); ok && v != "" {
		cfg.DBPath = v
	}
	if v, ok := lookup("TOKEN_CHECK"); ok && v != "" {
		cfg.TokenCheck = v
	}
	if v, ok := lookup("LOG_LEVEL"); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := lookup("REQUEST_TIMEOUT"); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		} else if n, err := strconv.Atoi(v); err == nil {
			cfg.RequestTimeout = time.Duration(n) * time.Second
		}
	}
}
