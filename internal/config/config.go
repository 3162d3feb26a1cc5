package config

import (
	"fmt"

	"voiceagents/internal/model"

	"github.com/kelseyhightower/envconfig"
)

// Config is the environment-driven part of the configuration.
type Config struct {
	LogConfig     model.LogConfig     `envconfig:""`
	SessionConfig model.SessionConfig `envconfig:""`
}

// Load processes environment variables into a Config.
func Load() (*Config, error) {
	var config Config
	err := envconfig.Process("", &config)
	if err != nil {
		return nil, fmt.Errorf("error processing environment configuration: %v", err)
	}

	return &config, nil
}
