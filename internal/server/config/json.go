package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/minichat/internal/flagx"
	"github.com/dmitrijs2005/minichat/internal/timex"
)

// JsonConfig is the on-disk shape of the server configuration file. Absent
// or zero fields leave the current value untouched.
type JsonConfig struct {
	EndpointAddrGRPC string         `json:"endpoint_addr_grpc"`
	OpsAddr          *string        `json:"ops_addr"`
	StreamBuffer     int            `json:"stream_buffer"`
	JoinRate         *float64       `json:"join_rate"`
	JoinBurst        int            `json:"join_burst"`
	LogLevel         string         `json:"log_level"`
	LogFormat        string         `json:"log_format"`
	SeedSource       string         `json:"seed_source"`
	S3Region         string         `json:"s3_region"`
	S3BaseEndpoint   string         `json:"s3_base_endpoint"`
	S3User           string         `json:"s3_user"`
	S3Password       string         `json:"s3_password"`
	ShutdownTimeout  timex.Duration `json:"shutdown_timeout"`
}

// parseJson overlays the file given by -c or -config. Without either flag
// nothing is loaded.
func parseJson(config *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	if c.OpsAddr != nil {
		config.OpsAddr = *c.OpsAddr
	}
	setInt(&config.StreamBuffer, c.StreamBuffer)
	if c.JoinRate != nil {
		config.JoinRate = *c.JoinRate
	}
	setInt(&config.JoinBurst, c.JoinBurst)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.LogFormat, c.LogFormat)
	setString(&config.SeedSource, c.SeedSource)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&config.S3User, c.S3User)
	setString(&config.S3Password, c.S3Password)
	if c.ShutdownTimeout.Duration > 0 {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}
