package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/minichat/internal/flagx"
)

// parseFlags reads -s (server address) and -w (request timeout).
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-s", "-w"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerEndpointAddr, "s", cfg.ServerEndpointAddr, "server address")
	fs.DurationVar(&cfg.RequestTimeout, "w", cfg.RequestTimeout, "request timeout")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("flags: %w", err)
	}
	return nil
}
