package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/san-kum/asciisweep/internal/art"
	"github.com/san-kum/asciisweep/internal/sweep"
)

const (
	DefaultTheme        = "classic"
	DefaultStep         = sweep.DefaultStep
	DefaultDelay        = 50 * time.Millisecond
	DefaultForeverDelay = 100 * time.Millisecond
	DefaultLogLevel     = "info"
)

var (
	ErrUnknownTheme = errors.New("config: unknown theme")
	ErrInvalid      = errors.New("config: invalid value")
)

// Config holds the run settings assembled from defaults and flags.
type Config struct {
	ArtPath      string
	Theme        string
	Forever      bool
	Step         int
	Delay        time.Duration
	ForeverDelay time.Duration
	Seed         uint64
	LogLevel     string
	LogFile      string
}

func DefaultConfig() *Config {
	return &Config{
		ArtPath:      art.DefaultPath,
		Theme:        DefaultTheme,
		Step:         DefaultStep,
		Delay:        DefaultDelay,
		ForeverDelay: DefaultForeverDelay,
		LogLevel:     DefaultLogLevel,
	}
}

// FrameDelay is the pause between frames for the selected mode.
func (c *Config) FrameDelay() time.Duration {
	if c.Forever {
		return c.ForeverDelay
	}
	return c.Delay
}

func (c *Config) Validate() error {
	if c.ArtPath == "" {
		return fmt.Errorf("%w: empty art path", ErrInvalid)
	}
	if c.Step <= 0 {
		return fmt.Errorf("%w: step must be positive, got %d", ErrInvalid, c.Step)
	}
	if c.Delay < 0 || c.ForeverDelay < 0 {
		return fmt.Errorf("%w: negative frame delay", ErrInvalid)
	}
	if _, err := GetTheme(c.Theme); err != nil {
		return err
	}
	return nil
}

// Palettes resolves the configured theme.
func (c *Config) Palettes() (sweep.Palettes, error) {
	th, err := GetTheme(c.Theme)
	if err != nil {
		return sweep.Palettes{}, err
	}
	return th.Palettes()
}
