package game

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds game configuration options. Every field can be set from the
// environment; see LoadConfig.
type Config struct {
	// Seed is mixed into every noise salt. The same seed always produces the
	// same world.
	Seed int64 `env:"WILDLANDS_SEED" envDefault:"0"`

	// CacheSize bounds the generated cells kept in memory. Zero keeps all of
	// them. Player-written cells are never evicted.
	CacheSize int `env:"WILDLANDS_CACHE_SIZE" envDefault:"0"`

	InventoryCapacity int `env:"WILDLANDS_INVENTORY_CAPACITY" envDefault:"24"`
	StartingHealth    int `env:"WILDLANDS_STARTING_HEALTH"    envDefault:"3"`
	StartingCoins     int `env:"WILDLANDS_STARTING_COINS"     envDefault:"50"`

	// WarmRadius is how many cells around the arrival point are generated
	// ahead of time after a teleport. Zero disables warming.
	WarmRadius int `env:"WILDLANDS_WARM_RADIUS" envDefault:"0"`

	// TraceSampleRatio is the fraction of traces exported, in [0, 1].
	TraceSampleRatio float64 `env:"WILDLANDS_TRACE_SAMPLE_RATIO" envDefault:"1"`
}

// DefaultConfig returns the configuration used when no environment is set.
func DefaultConfig() Config {
	return Config{
		InventoryCapacity: 24,
		StartingHealth:    3,
		StartingCoins:     50,
		TraceSampleRatio:  1,
	}
}

// LoadConfig reads the configuration from the environment and validates it.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid field.
func (c Config) Validate() error {
	var errs []error
	if c.CacheSize < 0 {
		errs = append(errs, fmt.Errorf("cache size must not be negative, got %d", c.CacheSize))
	}
	if c.InventoryCapacity <= 0 {
		errs = append(errs, fmt.Errorf("inventory capacity must be positive, got %d", c.InventoryCapacity))
	}
	if c.StartingHealth <= 0 {
		errs = append(errs, fmt.Errorf("starting health must be positive, got %d", c.StartingHealth))
	}
	if c.StartingCoins < 0 {
		errs = append(errs, fmt.Errorf("starting coins must not be negative, got %d", c.StartingCoins))
	}
	if c.WarmRadius < 0 {
		errs = append(errs, fmt.Errorf("warm radius must not be negative, got %d", c.WarmRadius))
	}
	if c.TraceSampleRatio < 0 || c.TraceSampleRatio > 1 {
		errs = append(errs, fmt.Errorf("trace sample ratio must be in [0, 1], got %v", c.TraceSampleRatio))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
