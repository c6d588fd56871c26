// Package config loads runtime configuration for the StuDeaf CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. STUDEAF_* environment variables (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the StuDeaf REST backend
//	-t int      request timeout (seconds)
//	-d string   directory for the local store
//	-s string   session store driver: sqlite, redis or memory
//	-l string   log level: debug, info, warn, error
//
// # JSON schema
//
// The timeout uses timex.Duration, so it can be a string like "60s" or an
// integer number of nanoseconds:
//
//	{
//	  "base_url": "https://gelatik-virid.vercel.app",
//	  "request_timeout": "60s",
//	  "data_dir": "~/.studeaf",
//	  "store_driver": "sqlite",
//	  "redis_url": "redis://localhost:6379/0",
//	  "log_level": "info"
//	}
package config
