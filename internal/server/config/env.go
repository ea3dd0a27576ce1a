package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// parseEnv loads envFile into the process environment when it exists and
// then overlays every MINICHAT_* variable that is set onto config. Variables
// already present in the environment win over the file.
func parseEnv(config *Config, envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	if err := envconfig.Process("", config); err != nil {
		return fmt.Errorf("environment: %w", err)
	}
	return nil
}
