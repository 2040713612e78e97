package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadWithoutEnvFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(EnvSeed, "")
	t.Setenv(EnvWindowScale, "")

	s, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.AssetsDir != "assets" || s.WindowScale != 1 {
		t.Fatalf("defaults = %+v", s)
	}
}

func TestLoadReadsEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	content := "SYNTHWAVE_SEED=1234\nSYNTHWAVE_WINDOW_SCALE=1.5\nSYNTHWAVE_ASSETS_DIR=/tmp/art\n"
	if err := os.WriteFile(envFile, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	// Register the variables with t.Setenv so they are restored afterwards;
	// godotenv does not override variables that are already set, so clear them first.
	for _, k := range []string{EnvSeed, EnvWindowScale, EnvAssetsDir} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	s, err := Load(envFile)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Seed != 1234 || s.WindowScale != 1.5 || s.AssetsDir != "/tmp/art" {
		t.Fatalf("settings = %+v", s)
	}
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Setenv(EnvSeed, "soon")
	if _, err := Load(); err == nil {
		t.Fatal("malformed seed accepted")
	}

	t.Setenv(EnvSeed, "")
	t.Setenv(EnvWindowScale, "-2")
	if _, err := Load(); err == nil {
		t.Fatal("negative window scale accepted")
	}
}

func TestHighScorePathOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(EnvHighScorePath, "/var/games/synthwave.json")

	s, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.HighScorePath != "/var/games/synthwave.json" {
		t.Fatalf("high score path = %s", s.HighScorePath)
	}
}

func TestDebugFlag(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Setenv(EnvDebug, "true")
	s, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !s.Debug {
		t.Fatal("debug not enabled")
	}

	t.Setenv(EnvDebug, "sometimes")
	if _, err := Load(); err == nil {
		t.Fatal("malformed debug flag accepted")
	}
}
