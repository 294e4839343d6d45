package app

import (
	"errors"
	"fmt"
)

// Config holds everything needed for one normalization run.
type Config struct {
	InputPath  string
	OutputPath string
	LogLevel   string
	LogFormat  string
}

// NewConfig validates c and fills in defaults.
func NewConfig(c Config) (*Config, error) {
	if c.InputPath == "" {
		return nil, errors.New("input path is required")
	}

	if c.OutputPath == "" {
		return nil, errors.New("output path is required")
	}

	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}

	if c.LogFormat == "" {
		c.LogFormat = "text"
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log level %q", c.LogLevel)
	}

	if c.LogFormat != "text" && c.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log format %q", c.LogFormat)
	}

	return &c, nil
}
