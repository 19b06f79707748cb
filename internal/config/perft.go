package config

import (
	"fmt"
	"runtime"
	"time"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MaxPerftDepth bounds the perft depth accepted from the command line.
const MaxPerftDepth = 8

// PerftConfig holds settings for move-tree counting.
type PerftConfig struct {
	// Depth of the count; 0 disables perft
	Depth int

	// Divide prints the count below each root move
	Divide bool

	// Workers is the number of goroutines counting subtrees
	Workers int

	// Timeout abandons the count after this long; 0 means no limit
	Timeout time.Duration
}

// NewPerftConfig creates a PerftConfig with one worker per CPU.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Workers: runtime.NumCPU(),
	}
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 || p.Depth > MaxPerftDepth {
		return fmt.Errorf("perft depth %d out of range 0-%d: %w", p.Depth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if p.Timeout < 0 {
		return fmt.Errorf("perft timeout %v is negative: %w", p.Timeout, errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d: %w", p.Workers, errors.ErrInvalidConfig)
	}
	return nil
}
