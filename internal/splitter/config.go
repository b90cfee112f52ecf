package splitter

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid splitter config")

// Config holds the thresholds of the splitting rules. All lengths count runes.
type Config struct {
	// SoftLimit is the length up to which text stays one paragraph, and the
	// furthest index a period-count split may end at.
	SoftLimit int
	// MinPeriods is the number of usable "。" needed for period-count splitting.
	MinPeriods int
	// SearchStart and SearchEnd bound the char-limit search window [start, end).
	SearchStart int
	SearchEnd   int
	// HardLimit is the unconditional cut used when the window has no delimiter.
	HardLimit int
}

// DefaultConfig returns the thresholds the splitter was tuned with.
func DefaultConfig() Config {
	return Config{
		SoftLimit:   200,
		MinPeriods:  3,
		SearchStart: 150,
		SearchEnd:   400,
		HardLimit:   500,
	}
}

// Validate reports whether the thresholds can drive the splitter.
func (c Config) Validate() error {
	switch {
	case c.SoftLimit <= 0:
		return fmt.Errorf("%w: soft limit must be positive, got %d", ErrInvalidConfig, c.SoftLimit)
	case c.MinPeriods < 2:
		return fmt.Errorf("%w: min periods must be at least 2, got %d", ErrInvalidConfig, c.MinPeriods)
	case c.SearchStart < 0:
		return fmt.Errorf("%w: search start must not be negative, got %d", ErrInvalidConfig, c.SearchStart)
	case c.SearchStart >= c.SearchEnd:
		return fmt.Errorf("%w: search window [%d, %d) is empty", ErrInvalidConfig, c.SearchStart, c.SearchEnd)
	case c.HardLimit <= 0:
		return fmt.Errorf("%w: hard limit must be positive, got %d", ErrInvalidConfig, c.HardLimit)
	}
	return nil
}
