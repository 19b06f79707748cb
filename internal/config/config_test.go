package config

import (
	"bytes"
	"errors"
	"testing"
	"time"

	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

// TestOutputConfig_Defaults verifies OutputConfig has sensible defaults
func TestOutputConfig_Defaults(t *testing.T) {
	cfg := NewOutputConfig()

	if cfg.JSONFormat {
		t.Error("JSONFormat should be false by default")
	}
	if cfg.ShowLegalMoves {
		t.Error("ShowLegalMoves should be false by default")
	}
	if !cfg.ShowFEN {
		t.Error("ShowFEN should be true by default")
	}
}

// TestPerftConfig_Defaults verifies PerftConfig has sensible defaults
func TestPerftConfig_Defaults(t *testing.T) {
	cfg := NewPerftConfig()

	if cfg.Depth != 0 {
		t.Errorf("Depth = %d, want 0", cfg.Depth)
	}
	if cfg.Timeout != 0 {
		t.Errorf("Timeout = %v, want no limit", cfg.Timeout)
	}
	if cfg.Divide {
		t.Error("Divide should be false by default")
	}
	if cfg.Workers < 1 {
		t.Errorf("Workers = %d, want at least 1", cfg.Workers)
	}
}

// TestPerftConfig_Validate verifies perft config validation
func TestPerftConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     PerftConfig
		wantErr bool
	}{
		{
			name:    "disabled perft is valid",
			cfg:     PerftConfig{Workers: 1},
			wantErr: false,
		},
		{
			name:    "max depth",
			cfg:     PerftConfig{Depth: MaxPerftDepth, Workers: 4},
			wantErr: false,
		},
		{
			name:    "negative depth",
			cfg:     PerftConfig{Depth: -1, Workers: 1},
			wantErr: true,
		},
		{
			name:    "depth too large",
			cfg:     PerftConfig{Depth: MaxPerftDepth + 1, Workers: 1},
			wantErr: true,
		},
		{
			name:    "with timeout",
			cfg:     PerftConfig{Depth: 5, Workers: 2, Timeout: time.Second},
			wantErr: false,
		},
		{
			name:    "negative timeout",
			cfg:     PerftConfig{Depth: 5, Workers: 2, Timeout: -time.Second},
			wantErr: true,
		},
		{
			name:    "no workers",
			cfg:     PerftConfig{Depth: 3},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, chesserrors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// TestConfig_Validate verifies top-level validation
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"silent", func(c *Config) { c.Verbosity = 0 }, false},
		{"verbosity too high", func(c *Config) { c.Verbosity = 3 }, true},
		{"negative verbosity", func(c *Config) { c.Verbosity = -1 }, true},
		{"no output", func(c *Config) { c.OutputFile = nil }, true},
		{"bad perft", func(c *Config) { c.Perft.Workers = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}

	cfg.SetOutput(buf)

	if cfg.OutputFile != buf {
		t.Error("SetOutput did not set OutputFile")
	}
}

// TestConfig_Logf verifies log lines are gated on verbosity
func TestConfig_Logf(t *testing.T) {
	buf := &bytes.Buffer{}
	cfg := NewConfigBuilder().WithLog(buf).WithVerbosity(1).Build()

	cfg.Logf(1, "summary %d\n", 1)
	cfg.Logf(2, "commentary\n")

	if got := buf.String(); got != "summary 1\n" {
		t.Errorf("log = %q, want %q", got, "summary 1\n")
	}

	cfg.LogFile = nil
	cfg.Logf(1, "dropped\n") // must not panic
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	out := &bytes.Buffer{}
	cfg := NewConfigBuilder().
		WithStartFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1").
		WithJSONOutput(true).
		WithLegalMoves(true).
		WithPerft(3, true).
		WithWorkers(2).
		WithPerftTimeout(3*time.Second).
		WithOutput(out).
		WithVerbosity(2).
		Build()

	if cfg.StartFEN != "4k3/8/8/8/8/8/8/4K3 w - - 0 1" {
		t.Errorf("StartFEN = %q", cfg.StartFEN)
	}
	if !cfg.Output.JSONFormat || !cfg.Output.ShowLegalMoves {
		t.Error("output flags not set")
	}
	if cfg.Perft.Depth != 3 || !cfg.Perft.Divide || cfg.Perft.Workers != 2 || cfg.Perft.Timeout != 3*time.Second {
		t.Errorf("Perft = %+v", *cfg.Perft)
	}
	if cfg.OutputFile != out {
		t.Error("WithOutput did not set OutputFile")
	}
	if cfg.Verbosity != 2 {
		t.Errorf("Verbosity = %d, want 2", cfg.Verbosity)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
}
