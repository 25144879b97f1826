package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/mindmate/internal/flagx"
)

// parseFlags populates server Config fields from command-line flags.
//
//	-a string   HTTP bind address (e.g. ":5000")
//	-d string   PostgreSQL DSN
//	-n string   collection segment of POST /api/<collection>
//	-o string   allowed CORS origin
//	-b int      bcrypt cost
//	-t int      shutdown timeout, seconds
//	-l string   log level
//
// Only the flags above are considered; other arguments (e.g. -c) are
// filtered out first so the flag sets do not collide.
func parseFlags(config *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-n", "-o", "-b", "-t", "-l"})

	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.Collection, "n", config.Collection, "auth route collection")
	fs.StringVar(&config.CORSOrigin, "o", config.CORSOrigin, "allowed CORS origin")
	fs.IntVar(&config.BcryptCost, "b", config.BcryptCost, "bcrypt cost")
	shutdown := fs.Int("t", int(config.ShutdownTimeout.Seconds()), "shutdown timeout (in seconds)")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.ShutdownTimeout = time.Duration(*shutdown) * time.Second
}
