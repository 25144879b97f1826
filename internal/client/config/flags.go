package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/mindmate/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
// Arguments it does not know about are filtered out first.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-n", "-p", "-s", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "base URL of the auth server")
	fs.StringVar(&cfg.Collection, "n", cfg.Collection, "auth route collection")
	fs.StringVar(&cfg.AppName, "p", cfg.AppName, "application name (key prefix)")
	fs.StringVar(&cfg.StorePath, "s", cfg.StorePath, "local store path")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
