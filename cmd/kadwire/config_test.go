package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func TestLoadConfigDefaultsAndOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
log_level = "debug"
log_timestamp = false
peer_limit = 5
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Logging.Level != zerolog.DebugLevel {
		t.Fatalf("unexpected level: %v", cfg.Logging.Level)
	}
	if cfg.Logging.Timestamp {
		t.Fatalf("expected timestamp disabled")
	}
	if cfg.Logging.NoColor {
		t.Fatalf("expected nocolor untouched by partial config")
	}
	if cfg.PeerLimit != 5 {
		t.Fatalf("unexpected peer limit: %d", cfg.PeerLimit)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "bad_level.toml")
	if err := os.WriteFile(path, []byte(`log_level = "verbose"`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := loadConfig(path); err == nil {
		t.Fatalf("expected error for unknown log level")
	}

	path = filepath.Join(dir, "bad_limit.toml")
	if err := os.WriteFile(path, []byte(`peer_limit = -1`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := loadConfig(path); err == nil {
		t.Fatalf("expected error for negative peer limit")
	}
}

func TestParseHexPacket(t *testing.T) {
	raw, err := parseHexPacket("e4 61 39 30")
	if err != nil {
		t.Fatalf("parse hex: %v", err)
	}
	if len(raw) != 4 || raw[0] != 0xE4 || raw[3] != 0x30 {
		t.Fatalf("unexpected bytes: %x", raw)
	}

	if _, err := parseHexPacket("zz"); err == nil {
		t.Fatalf("expected error for invalid hex")
	}
}
