// Package config loads game settings from an optional .env file and the
// process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/natikozel/Snake/constants"
	"github.com/natikozel/Snake/game"
)

// Environment variable names
const (
	EnvBoardWidth  = "SNAKE_BOARD_WIDTH"
	EnvBoardHeight = "SNAKE_BOARD_HEIGHT"
	EnvCellSize    = "SNAKE_CELL_SIZE"
	EnvTickMs      = "SNAKE_TICK_MS"
	EnvSeed        = "SNAKE_SEED"
	EnvViKeys      = "SNAKE_VI_KEYS"
	EnvDebug       = "SNAKE_DEBUG"
)

// DefaultEnvFile is read when no other file is named
const DefaultEnvFile = ".env"

// Sentinel errors
var (
	ErrInvalidBoard = game.ErrInvalidBoard
	ErrInvalidTick  = errors.New("invalid tick interval")
	ErrInvalidValue = errors.New("invalid configuration value")
)

// Config holds the game settings
type Config struct {
	Board        game.Board
	TickInterval time.Duration
	Seed         uint64 // 0 picks a random seed
	ViKeys       bool
	Debug        bool
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Board:        game.DefaultBoard(),
		TickInterval: constants.TickInterval,
	}
}

// Load reads envFile if it exists, applies environment overrides on top of
// the defaults and validates the result
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := Default()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	ints := []struct {
		name string
		dst  *int
	}{
		{EnvBoardWidth, &c.Board.Width},
		{EnvBoardHeight, &c.Board.Height},
		{EnvCellSize, &c.Board.CellSize},
	}
	for _, v := range ints {
		if err := envInt(v.name, v.dst); err != nil {
			return err
		}
	}

	tickMs := int(c.TickInterval / time.Millisecond)
	if err := envInt(EnvTickMs, &tickMs); err != nil {
		return err
	}
	c.TickInterval = time.Duration(tickMs) * time.Millisecond

	if raw, ok := os.LookupEnv(EnvSeed); ok && raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidValue, EnvSeed, raw, err)
		}
		c.Seed = seed
	}

	if err := envBool(EnvViKeys, &c.ViKeys); err != nil {
		return err
	}
	return envBool(EnvDebug, &c.Debug)
}

// Validate checks board geometry and tick interval
func (c *Config) Validate() error {
	if err := c.Board.Validate(); err != nil {
		return err
	}
	if c.TickInterval < constants.MinTickInterval {
		return fmt.Errorf("%w: %v is below %v", ErrInvalidTick, c.TickInterval, constants.MinTickInterval)
	}
	return nil
}

func envInt(name string, dst *int) error {
	raw, ok := os.LookupEnv(name)
	if !ok || raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("%w: %s=%q: %v", ErrInvalidValue, name, raw, err)
	}
	*dst = v
	return nil
}

func envBool(name string, dst *bool) error {
	raw, ok := os.LookupEnv(name)
	if !ok || raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fmt.Errorf("%w: %s=%q: %v", ErrInvalidValue, name, raw, err)
	}
	*dst = v
	return nil
}
