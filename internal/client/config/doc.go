// Package config loads runtime configuration for the MyAuthApp CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   path to the SQLite database file
//	-l string   log level (debug, info, warn, error)
//	-f string   log format (text, json)
//	-t int      storage call timeout (seconds)
//	-q int      persistence queue size
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "3s" or integer nanoseconds:
//
//	{
//	  "database_path": "myauthapp.db",
//	  "log_level": "info",
//	  "log_format": "text",
//	  "storage_timeout": "3s",
//	  "persist_queue_size": 16
//	}
//
// Note: This package does not read environment variables; use the JSON file
// or flags to configure values.
package config
