package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/mindmate/internal/flagx"
	"github.com/dmitrijs2005/mindmate/internal/timex"
)

// JsonConfig is the on-disk shape of the server config file. Durations
// accept "5s" style strings as well as integer nanoseconds.
type JsonConfig struct {
	EndpointAddr    string         `json:"endpoint_addr"`
	DatabaseDSN     string         `json:"database_dsn"`
	Collection      string         `json:"collection"`
	CORSOrigin      string         `json:"cors_origin"`
	BcryptCost      int            `json:"bcrypt_cost"`
	ShutdownTimeout timex.Duration `json:"shutdown_timeout"`
	LogLevel        string         `json:"log_level"`
}

// parseJson loads the file named by -c/-config (if any) and copies every
// non-zero field into config. An unreadable or invalid file panics.
func parseJson(config *Config, args []string) {
	path := flagx.ConfigFile(args)
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.Collection != "" {
		config.Collection = c.Collection
	}
	if c.CORSOrigin != "" {
		config.CORSOrigin = c.CORSOrigin
	}
	if c.BcryptCost != 0 {
		config.BcryptCost = c.BcryptCost
	}
	if c.ShutdownTimeout.Duration != 0 {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
}
