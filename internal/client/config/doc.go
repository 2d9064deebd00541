// Package config loads runtime configuration for the admin console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Dotenv file and process environment (see parseEnv): -envfile or ./.env.
//  3. Optional JSON file (see parseJson) selected with -c or -config.
//  4. Command-line flags (see parseFlags).
//
// # JSON schema
//
//	{
//	  "env": "staging",
//	  "api_base_url": "http://localhost:7000/api",
//	  "request_timeout": "10s",
//	  "db_path": "admin.db",
//	  "token_check": "expiry",
//	  "seat_price": 1200,
//	  "log_level": "debug",
//	  "log_format": "json"
//	}
//
// The API base URL comes from api_base_url when set, otherwise from the
// environment table BaseURLs (development is the fallback).
package config
