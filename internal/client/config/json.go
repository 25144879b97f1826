package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/mindmate/internal/flagx"
	"github.com/dmitrijs2005/mindmate/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations
// may be strings like "10s" or integer nanoseconds.
type JsonConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	Collection         string         `json:"collection"`
	AppName            string         `json:"app_name"`
	StorePath          string         `json:"store_path"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
	LogLevel           string         `json:"log_level"`
}

// parseJson overlays cfg with the non-empty values of the JSON file named
// by -c/-config. Read or unmarshal errors panic.
func parseJson(cfg *Config, args []string) {
	jsonConfigFile := flagx.ConfigFile(args)
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.Collection != "" {
		cfg.Collection = jc.Collection
	}
	if jc.AppName != "" {
		cfg.AppName = jc.AppName
	}
	if jc.StorePath != "" {
		cfg.StorePath = jc.StorePath
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
