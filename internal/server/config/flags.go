package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/minichat/internal/flagx"
)

// parseFlags populates Config fields from short command-line flags:
//
//	-a string     gRPC bind address
//	-o string     health/metrics bind address ("" disables)
//	-b int        per-reader stream buffer
//	-r float      join attempts per second per peer (0 disables)
//	-n int        join burst
//	-l string     log level
//	-f string     log format (json|console)
//	-s string     seed source
//	-g string     S3 region
//	-e string     S3 base endpoint
//	-u string     S3 access key
//	-p string     S3 secret key
//	-t duration   graceful shutdown timeout
//
// Unknown arguments, including -c/-config, are filtered out first.
func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-o", "-b", "-r", "-n", "-l", "-f", "-s", "-g", "-e", "-u", "-p", "-t"})

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.OpsAddr, "o", config.OpsAddr, "address of the health and metrics endpoint")
	fs.IntVar(&config.StreamBuffer, "b", config.StreamBuffer, "chat log stream buffer")
	fs.Float64Var(&config.JoinRate, "r", config.JoinRate, "join attempts per second")
	fs.IntVar(&config.JoinBurst, "n", config.JoinBurst, "join burst")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.LogFormat, "f", config.LogFormat, "log format")
	fs.StringVar(&config.SeedSource, "s", config.SeedSource, "seed source")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.S3User, "u", config.S3User, "S3 access key")
	fs.StringVar(&config.S3Password, "p", config.S3Password, "S3 secret key")
	fs.DurationVar(&config.ShutdownTimeout, "t", config.ShutdownTimeout, "graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("flags: %w", err)
	}
	return nil
}
