package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/golangdaddy/synthwave/pkg/models"
	"github.com/joho/godotenv"
)

// Environment variables read by Load
const (
	EnvHighScorePath = "SYNTHWAVE_HIGHSCORE_PATH"
	EnvAssetsDir     = "SYNTHWAVE_ASSETS_DIR"
	EnvWindowScale   = "SYNTHWAVE_WINDOW_SCALE"
	EnvSeed          = "SYNTHWAVE_SEED"
	EnvDebug         = "SYNTHWAVE_DEBUG"
)

// Settings are the runtime options that are not part of the game's tuning
type Settings struct {
	HighScorePath string
	AssetsDir     string
	WindowScale   float64
	Seed          int64
	Debug         bool // Draw the tick and frame rate overlay
}

// Defaults returns the settings used when nothing is configured
func Defaults() Settings {
	return Settings{
		HighScorePath: models.DefaultHighScorePath(),
		AssetsDir:     "assets",
		WindowScale:   1,
		Seed:          time.Now().UnixNano(),
	}
}

// Load reads an optional .env file and then the environment.
// A missing .env is fine; malformed values are errors.
func Load(envFiles ...string) (Settings, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Settings{}, fmt.Errorf("failed to load env file: %w", err)
	}

	s := Defaults()

	if v := os.Getenv(EnvHighScorePath); v != "" {
		s.HighScorePath = v
	}
	if v := os.Getenv(EnvAssetsDir); v != "" {
		s.AssetsDir = v
	}
	if v := os.Getenv(EnvWindowScale); v != "" {
		scale, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid %s '%s': %w", EnvWindowScale, v, err)
		}
		if scale <= 0 {
			return Settings{}, fmt.Errorf("invalid %s '%s': must be positive", EnvWindowScale, v)
		}
		s.WindowScale = scale
	}
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid %s '%s': %w", EnvSeed, v, err)
		}
		s.Seed = seed
	}
	if v := os.Getenv(EnvDebug); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid %s '%s': %w", EnvDebug, v, err)
		}
		s.Debug = debug
	}

	log.Printf("config: high score at %s, assets in %s", s.HighScorePath, s.AssetsDir)
	return s, nil
}
