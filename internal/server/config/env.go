package config

import (
	"strings"

	"github.com/dmitrijs2005/mindmate/internal/envx"
)

// parseEnv applies overrides from .env and the process environment.
//
//	PORT              port only; becomes ":<PORT>"
//	SERVER_ADDR       full bind address, wins over PORT
//	DATABASE_DSN      PostgreSQL DSN
//	API_COLLECTION    route collection segment
//	CORS_ORIGIN       allowed origin
//	BCRYPT_COST       bcrypt work factor
//	SHUTDOWN_TIMEOUT  seconds or Go duration
//	LOG_LEVEL         log level
func parseEnv(config *Config) {
	_ = envx.LoadDotEnv()

	var port string
	envx.String("PORT", &port)
	if port != "" {
		config.EndpointAddr = ":" + strings.TrimPrefix(port, ":")
	}

	envx.String("SERVER_ADDR", &config.EndpointAddr)
	envx.String("DATABASE_DSN", &config.DatabaseDSN)
	envx.String("API_COLLECTION", &config.Collection)
	envx.String("CORS_ORIGIN", &config.CORSOrigin)
	envx.Int("BCRYPT_COST", &config.BcryptCost)
	envx.Seconds("SHUTDOWN_TIMEOUT", &config.ShutdownTimeout)
	envx.String("LOG_LEVEL", &config.LogLevel)
}
