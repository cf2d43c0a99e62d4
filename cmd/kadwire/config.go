package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/kadwire/internal/logging"
)

type fileConfig struct {
	LogLevel     string `toml:"log_level"`
	LogTimestamp bool   `toml:"log_timestamp"`
	LogNoColor   bool   `toml:"log_nocolor"`
	PeerLimit    int    `toml:"peer_limit"`
}

type appConfig struct {
	Logging logging.Config
	// PeerLimit caps how many bootstrap peers get logged per packet;
	// zero means all of them.
	PeerLimit int
}

func defaultConfig() appConfig {
	return appConfig{Logging: logging.DefaultConfig()}
}

func loadConfig(path string) (appConfig, error) {
	cfg := defaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return appConfig{}, fmt.Errorf("load kadwire config: %w", err)
	}

	if meta.IsDefined("log_level") {
		lvl, ok := logging.ParseLevel(raw.LogLevel)
		if !ok {
			return appConfig{}, fmt.Errorf("parse log_level: unknown level %q", raw.LogLevel)
		}
		cfg.Logging.Level = lvl
	}

	if meta.IsDefined("log_timestamp") {
		cfg.Logging.Timestamp = raw.LogTimestamp
	}

	if meta.IsDefined("log_nocolor") {
		cfg.Logging.NoColor = raw.LogNoColor
	}

	if meta.IsDefined("peer_limit") {
		if raw.PeerLimit < 0 {
			return appConfig{}, fmt.Errorf("peer_limit must not be negative, got %d", raw.PeerLimit)
		}
		cfg.PeerLimit = raw.PeerLimit
	}

	return cfg, nil
}
