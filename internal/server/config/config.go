// Package config handles configuration for the chat server: defaults, an
// optional .env file and environment variables, a JSON overlay and finally
// command-line flags, each layer overriding the previous one.
package config

import (
	"time"

	"github.com/dmitrijs2005/minichat/internal/common"
)

// Config holds runtime settings for the chat server.
//
// SeedSource selects the bootstrap data loaded before serving: empty for
// none, a path to a JSON file, an s3://bucket/key object or a postgres DSN.
// OpsAddr set to "" disables the health and metrics listener, JoinRate set
// to 0 disables join throttling.
//
// Environment variable names are spelled out in full so that only
// MINICHAT_* variables are ever read.
type Config struct {
	EndpointAddrGRPC string        `envconfig:"MINICHAT_GRPC_ADDR"`
	OpsAddr          string        `envconfig:"MINICHAT_OPS_ADDR"`
	StreamBuffer     int           `envconfig:"MINICHAT_STREAM_BUFFER"`
	JoinRate         float64       `envconfig:"MINICHAT_JOIN_RATE"`
	JoinBurst        int           `envconfig:"MINICHAT_JOIN_BURST"`
	LogLevel         string        `envconfig:"MINICHAT_LOG_LEVEL"`
	LogFormat        string        `envconfig:"MINICHAT_LOG_FORMAT"`
	SeedSource       string        `envconfig:"MINICHAT_SEED"`
	S3Region         string        `envconfig:"MINICHAT_S3_REGION"`
	S3BaseEndpoint   string        `envconfig:"MINICHAT_S3_BASE_ENDPOINT"`
	S3User           string        `envconfig:"MINICHAT_S3_USER"`
	S3Password       string        `envconfig:"MINICHAT_S3_PASSWORD"`
	ShutdownTimeout  time.Duration `envconfig:"MINICHAT_SHUTDOWN_TIMEOUT"`
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = "[::1]:10000"
	c.OpsAddr = ":9090"
	c.StreamBuffer = common.DefaultStreamBuffer
	c.JoinRate = 5
	c.JoinBurst = 10
	c.LogLevel = "info"
	c.LogFormat = "json"
	c.SeedSource = ""
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = ""
	c.S3User = ""
	c.S3Password = ""
	c.ShutdownTimeout = 10 * time.Second
}

// LoadConfig builds a Config from defaults, then the environment, then the
// JSON file named by -c/-config in args and finally the flags in args.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseEnv(cfg, ".env"); err != nil {
		return nil, err
	}
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
