package config

import (
	"log/slog"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port              string        `envconfig:"PORT" default:"8080"`
	ReadHeaderTimeout time.Duration `envconfig:"READ_HEADER_TIMEOUT" default:"10s"`
	MaxUploadBytes    int64         `envconfig:"MAX_UPLOAD_BYTES" default:"10485760"`
	LogLevel          string        `envconfig:"LOG_LEVEL" default:"info"`
}

func FromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("funnel", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) SlogLevel() slog.Level {
	if c.LogLevel == "debug" {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
