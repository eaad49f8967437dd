package sampledata

import (
	"fmt"
	"time"
)

// Default generator settings.
const (
	DefaultPlayers        = 100
	DefaultPlaysPerPlayer = 5
	DefaultUnregistered   = 0.1
	DefaultSeed           = 1
)

// Config controls how a Dataset is generated.
type Config struct {
	Players        int       // registered players written to the roster
	PlaysPerPlayer int       // play records per player, registered or not
	Unregistered   float64   // extra players, as a fraction of Players, that only appear in the play log
	Seed           uint64    // same seed, same dataset
	UUIDs          bool      // use uuid player ids instead of sequential ones
	Start          time.Time // timestamp of the first play
	Interval       time.Duration
}

// DefaultConfig returns a Config with the default settings.
func DefaultConfig() Config {
	return Config{
		Players:        DefaultPlayers,
		PlaysPerPlayer: DefaultPlaysPerPlayer,
		Unregistered:   DefaultUnregistered,
		Seed:           DefaultSeed,
		Start:          time.Date(2021, time.January, 1, 12, 0, 0, 0, time.UTC),
		Interval:       time.Minute,
	}
}

// Validate reports whether the configuration can produce a dataset.
func (c Config) Validate() error {
	switch {
	case c.Players < 0:
		return fmt.Errorf("%w: players must not be negative, got %d", ErrInvalidConfig, c.Players)
	case c.PlaysPerPlayer < 0:
		return fmt.Errorf("%w: plays per player must not be negative, got %d", ErrInvalidConfig, c.PlaysPerPlayer)
	case c.Unregistered < 0 || c.Unregistered > 1:
		return fmt.Errorf("%w: unregistered fraction must be within [0,1], got %g", ErrInvalidConfig, c.Unregistered)
	case c.Interval < 0:
		return fmt.Errorf("%w: interval must not be negative, got %s", ErrInvalidConfig, c.Interval)
	}
	return nil
}
