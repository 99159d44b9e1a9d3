package tui

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func TestServeConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ServeConfig)
		wantErr bool
	}{
		{"defaults", func(*ServeConfig) {}, false},
		{"session limit", func(c *ServeConfig) { c.MaxSessions = 4 }, false},
		{"no address", func(c *ServeConfig) { c.Address = "" }, true},
		{"negative idle timeout", func(c *ServeConfig) { c.IdleTimeout = -1 }, true},
		{"negative session limit", func(c *ServeConfig) { c.MaxSessions = -1 }, true},
		{"zero tick rate", func(c *ServeConfig) { c.TickRate = 0 }, true},
		{"bad game config", func(c *ServeConfig) { c.Game.Gameplay.Lives = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultServeConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestResolveHostKey(t *testing.T) {
	dir := t.TempDir()
	explicit := filepath.Join(dir, "keys", "host_ed25519")

	got, err := resolveHostKey(explicit)
	if err != nil {
		t.Fatalf("resolveHostKey() failed: %v", err)
	}
	if got != explicit {
		t.Errorf("path = %q, expected %q", got, explicit)
	}
	if info, err := os.Stat(filepath.Dir(explicit)); err != nil || !info.IsDir() {
		t.Errorf("key directory not created: %v", err)
	}

	t.Setenv("HOME", dir)
	got, err = resolveHostKey("")
	if err != nil {
		t.Fatalf("resolveHostKey(\"\") failed: %v", err)
	}
	if want := filepath.Join(dir, ".brickcanvas", "host_key"); got != want {
		t.Errorf("default path = %q, expected %q", got, want)
	}
}

func TestNewSSHHostGeneratesKey(t *testing.T) {
	cfg := DefaultServeConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")

	host, err := NewSSHHost(cfg, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSSHHost() failed: %v", err)
	}
	if host.Sessions() != 0 {
		t.Errorf("Sessions() = %d, expected 0", host.Sessions())
	}
	if _, err := os.Stat(cfg.HostKeyPath); err != nil {
		t.Errorf("host key not written: %v", err)
	}

	cfg.TickRate = 0
	if _, err := NewSSHHost(cfg, nil); err == nil {
		t.Error("NewSSHHost() accepted an invalid config")
	}
}
