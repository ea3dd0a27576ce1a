// Package config handles configuration for the chat client: defaults, the
// MINICHAT_* environment, a JSON overlay and command-line flags.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds client settings. Only the MINICHAT_SERVER and
// MINICHAT_REQUEST_TIMEOUT environment variables are read.
type Config struct {
	ServerEndpointAddr string        `envconfig:"MINICHAT_SERVER"`
	RequestTimeout     time.Duration `envconfig:"MINICHAT_REQUEST_TIMEOUT"`
}

func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "[::1]:10000"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig applies defaults, the environment, the JSON file named by
// -c/-config and then the -s and -w flags found in args.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
