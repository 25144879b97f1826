// Package config loads runtime configuration for the MindMate terminal client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment, optionally seeded from a .env file (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the auth server
//	-n string   collection segment of POST /api/<collection>
//	-p string   application name, used to namespace persisted keys
//	-s string   path of the local SQLite store
//	-t int      request timeout (seconds)
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "http://localhost:5000",
//	  "collection": "nodes",
//	  "app_name": "mindmate",
//	  "store_path": "mindmate.db",
//	  "request_timeout": "10s",
//	  "log_level": "warn"
//	}
package config
