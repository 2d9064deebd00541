package config

import (
	"encoding/json"
	"os"

	"github.com/2018dayanan/bus-booking-admin-panel/internal/flagx"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/timex"
)

// JsonConfig is the on-disk shape of the console config file. Intervals
// use timex.Duration so "10s" and integer nanoseconds both parse.
type JsonConfig struct {
	Env            string         `json:"env"`
	APIBaseURL     string         `json:"api_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	DBPath         string         `json:"db_path"`
	TokenCheck     string         `json:"token_check"`
	SeatPrice      int64          `json:"seat_price"`
	LogLevel       string         `json:"log_level"`
	LogFormat      string         `json:"log_format"`
}

// parseJson overlays cfg with the file named by -c / -config. Only
// non-zero fields are copied. Read or decode errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.Env != "" {
		cfg.Env = jc.Env
	}
	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.DBPath != "" {
		cfg.DBPath = jc.DBPath
	}
	if jc.TokenCheck != "" {
		cfg.TokenCheck = jc.TokenCheck
	}
	if jc.SeatPrice > 0 {
		cfg.SeatPrice = jc.SeatPrice
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.LogFormat != "" {
		cfg.LogFormat = jc.LogFormat
	}
}
