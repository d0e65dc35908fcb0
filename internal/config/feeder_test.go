package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSetDefaultFeederFlags(t *testing.T) {
	var cfg FeederFlags
	setDefaultFeederFlags(&cfg)

	assert.Equal(t, 100, cfg.Count)
	assert.Equal(t, 2*time.Second, cfg.Delay)
	assert.Equal(t, "Test Event", cfg.Label)
	assert.Equal(t, "wl-copy", cfg.ClipboardCmd)
	assert.Equal(t, BackendWlCopy, cfg.Backend)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParseEnvFeeder_KeepsFlagLogLevelWhenEnvUnset(t *testing.T) {
	os.Unsetenv("LOGLEVEL")

	var cfg FeederFlags
	setDefaultFeederFlags(&cfg)
	// Значение, как будто пришедшее из --loglevel
	cfg.LogLevel = "debug"

	parseEnvFeeder(&cfg)

	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParseEnvFeeder_EnvLogLevelWinsOverFlag(t *testing.T) {
	t.Setenv("LOGLEVEL", "warn")

	var cfg FeederFlags
	setDefaultFeederFlags(&cfg)
	cfg.LogLevel = "debug"

	parseEnvFeeder(&cfg)

	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestParseEnvFeeder(t *testing.T) {
	t.Setenv("EVENT_COUNT", "3")
	t.Setenv("EVENT_DELAY", "0s")
	t.Setenv("EVENT_LABEL", "X")
	t.Setenv("CLIPBOARD_BACKEND", "noop")

	var cfg FeederFlags
	setDefaultFeederFlags(&cfg)
	parseEnvFeeder(&cfg)

	assert.Equal(t, 3, cfg.Count)
	assert.Equal(t, time.Duration(0), cfg.Delay)
	assert.Equal(t, "X", cfg.Label)
	assert.Equal(t, BackendNoop, cfg.Backend)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *FeederFlags)
		wantErr bool
	}{
		{"defaults are valid", func(cfg *FeederFlags) {}, false},
		{"zero count", func(cfg *FeederFlags) { cfg.Count = 0 }, true},
		{"negative count", func(cfg *FeederFlags) { cfg.Count = -5 }, true},
		{"negative delay", func(cfg *FeederFlags) { cfg.Delay = -time.Second }, true},
		{"zero delay is allowed", func(cfg *FeederFlags) { cfg.Delay = 0 }, false},
		{"unknown backend", func(cfg *FeederFlags) { cfg.Backend = "xclip-magic" }, true},
		{"noop backend", func(cfg *FeederFlags) { cfg.Backend = BackendNoop }, false},
		{"empty command with wl-copy backend", func(cfg *FeederFlags) { cfg.ClipboardCmd = "" }, true},
		{"empty command with noop backend", func(cfg *FeederFlags) {
			cfg.Backend = BackendNoop
			cfg.ClipboardCmd = ""
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg FeederFlags
			setDefaultFeederFlags(&cfg)
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
