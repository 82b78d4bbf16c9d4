package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

const (
	envPlayerName = "DAI_DI_PLAYER_NAME"
	envSeed       = "DAI_DI_SEED"

	defaultPlayerName = "Player"
)

// Config holds the process-wide settings read from the environment.
type Config struct {
	// PlayerName is the display name of the human player.
	PlayerName string
	// Seed drives the shuffle and the bots when SeedSet is true; games with
	// the same seed deal the same hands.
	Seed    int64
	SeedSet bool
}

var (
	cfg      *Config
	loadOnce sync.Once
	loadErr  error
)

// Load reads the configuration from the environment, consulting a .env file
// first if one exists. Safe to call more than once; only the first call does
// any work.
func Load() error {
	loadOnce.Do(func() {
		// A missing .env file is not an error, the environment still applies.
		_ = godotenv.Load()

		c, err := loadFromEnv()
		if err != nil {
			loadErr = err
			return
		}
		cfg = &c
	})
	return loadErr
}

func loadFromEnv() (Config, error) {
	c := Config{PlayerName: defaultPlayerName}

	if name := os.Getenv(envPlayerName); name != "" {
		c.PlayerName = name
	}

	if seed := os.Getenv(envSeed); seed != "" {
		parsed, err := strconv.ParseInt(seed, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", envSeed, err)
		}
		c.Seed = parsed
		c.SeedSet = true
	}

	return c, nil
}

// Get returns the loaded configuration, or nil before Load succeeds.
func Get() *Config {
	return cfg
}
