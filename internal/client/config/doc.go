// Package config loads runtime configuration for the dsaccounts client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   store driver: sqlite, file or memory
//	-p string   path of the sqlite database or JSON store file
//	-l string   log level: debug, info, warn or error
//
// # JSON schema
//
// The JSON loader uses timex.Duration for delays, so values can be either
// strings like "800ms" or integer nanoseconds. Keys that are absent keep
// their previous value:
//
//	{
//	  "store_driver": "sqlite",
//	  "store_path": "ds_store.db",
//	  "landing_page": "dashboard.html",
//	  "signup_redirect_delay": "1s",
//	  "signin_redirect_delay": "800ms",
//	  "message_clear_delay": "2.5s",
//	  "log_level": "info"
//	}
//
// Note: This package does not read environment variables; use the JSON file
// or flags to configure values.
package config
