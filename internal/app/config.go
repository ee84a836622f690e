package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	BuildFile string // build file, or a directory holding build.xml / build.hcl

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.BuildFile == "" {
		return nil, errors.New("BuildFile is a required configuration field and cannot be empty")
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return &cfg, nil
}
