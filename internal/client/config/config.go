package config

import (
	"os"
	"time"

	"github.com/dmitrijs2005/mindmate/internal/common"
)

// Config holds runtime settings for the MindMate client.
//
// Fields:
//   - ServerEndpointAddr: base URL of the auth server.
//   - Collection: path segment of the auth route.
//   - AppName: prefix of the persisted keys (<app>_user, <app>_data_<id>).
//   - StorePath: SQLite file backing the Persisted Store.
//   - RequestTimeout: per-request timeout for auth calls.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	ServerEndpointAddr string
	Collection         string
	AppName            string
	StorePath          string
	RequestTimeout     time.Duration
	LogLevel           string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://localhost:5000"
	c.Collection = common.DefaultCollection
	c.AppName = common.AppName
	c.StorePath = "mindmate.db"
	c.RequestTimeout = 10 * time.Second
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON, the environment and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, os.Args[1:])
	parseEnv(cfg)
	parseFlags(cfg, os.Args[1:])
	return cfg
}
