package config

import "github.com/dmitrijs2005/mindmate/internal/envx"

// parseEnv applies MINDMATE_* overrides from .env and the environment.
func parseEnv(cfg *Config) {
	_ = envx.LoadDotEnv()

	envx.String("MINDMATE_SERVER", &cfg.ServerEndpointAddr)
	envx.String("MINDMATE_COLLECTION", &cfg.Collection)
	envx.String("MINDMATE_APP_NAME", &cfg.AppName)
	envx.String("MINDMATE_STORE", &cfg.StorePath)
	envx.Seconds("MINDMATE_TIMEOUT", &cfg.RequestTimeout)
	envx.String("MINDMATE_LOG_LEVEL", &cfg.LogLevel)
}
