package app

import (
	"errors"
	"fmt"
)

// Output formats for the road map summary.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	DocumentPath string // a document file or a directory of documents

	LogFormat  string
	LogLevel   string
	Output     string
	ListenPort int // 0 disables the inspection server
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.DocumentPath == "" {
		return nil, errors.New("DocumentPath is a required configuration field and cannot be empty")
	}

	switch cfg.Output {
	case "":
		cfg.Output = OutputText
	case OutputText, OutputJSON:
	default:
		return nil, fmt.Errorf("invalid output format '%s': must be '%s' or '%s'", cfg.Output, OutputText, OutputJSON)
	}

	if cfg.ListenPort < 0 || cfg.ListenPort > 65535 {
		return nil, fmt.Errorf("invalid listen port %d", cfg.ListenPort)
	}

	return &cfg, nil
}
