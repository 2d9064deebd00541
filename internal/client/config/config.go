package config

import (
	"strings"
	"time"
)

// Environments with a built-in API base URL.
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// BaseURLs maps an environment to the admin API it talks to.
var BaseURLs = map[string]string{
	EnvDevelopment: "http://localhost:7000/api",
	EnvStaging:     "http://staging-api.example.com/api",
	EnvProduction:  "https://api.example.com/api",
}

// Token check strategies understood by services.NewTokenChecker.
const (
	TokenCheckPresence = "presence"
	TokenCheckExpiry   = "expiry"
)

// Config holds runtime settings for the admin console.
//
// Fields:
//   - Env: development, staging or production; selects the default API base URL.
//   - APIBaseURL: explicit base URL; overrides Env when set.
//   - RequestTimeout: per-request race timer for every outbound call.
//   - DBPath: SQLite file holding the Token Store (":memory:" keeps nothing).
//   - TokenCheck: "presence" (token exists) or "expiry" (JWT exp also checked).
//   - SeatPrice: unit price of a seat on the booking screen.
//   - LogLevel / LogFormat: slog level and "text" or "json".
type Config struct {
	Env            string
	APIBaseURL     string
	RequestTimeout time.Duration
	DBPath         string
	TokenCheck     string
	SeatPrice      int64
	LogLevel       string
	LogFormat      string
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.Env = EnvDevelopment
	c.APIBaseURL = ""
	c.RequestTimeout = 10 * time.Second
	c.DBPath = "admin.db"
	c.TokenCheck = TokenCheckPresence
	c.SeatPrice = 1200
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// BaseURL resolves the API base URL: the explicit override first, then the
// environment table, then development.
func (c *Config) BaseURL() string {
	if c.APIBaseURL != "" {
		return strings.TrimRight(c.APIBaseURL, "/")
	}
	if u, ok := BaseURLs[c.Env]; ok {
		return u
	}
	return BaseURLs[EnvDevelopment]
}

// LoadConfig applies defaults, then the dotenv file, then JSON, then flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
