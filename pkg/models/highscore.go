package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// HighScoreStore persists a single high score between sessions
type HighScoreStore interface {
	// Load returns the stored high score, or false when none is available
	Load() (int, bool)
	// Store saves a new high score
	Store(score int) error
}

// highScoreFile is the on-disk layout of a FileStore
type highScoreFile struct {
	HighScore int `json:"high_score"`
}

// FileStore keeps the high score in a small JSON file
type FileStore struct {
	Path string
}

// NewFileStore creates a store backed by the file at path
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// DefaultHighScorePath returns the per-user location of the high score file,
// falling back to the working directory when no config dir is known
func DefaultHighScorePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "highscore.json"
	}
	return filepath.Join(dir, "synthwave", "highscore.json")
}

// Load reads the high score. A missing file is simply absent; an unreadable or
// malformed one is logged and treated as absent.
func (s *FileStore) Load() (int, bool) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("highscore: reading %s: %v", s.Path, err)
		}
		return 0, false
	}

	var f highScoreFile
	if err := json.Unmarshal(data, &f); err != nil {
		log.Printf("highscore: ignoring malformed %s: %v", s.Path, err)
		return 0, false
	}
	if f.HighScore < 0 {
		log.Printf("highscore: ignoring negative score %d in %s", f.HighScore, s.Path)
		return 0, false
	}

	return f.HighScore, true
}

// Store writes the high score, creating the parent directory if needed
func (s *FileStore) Store(score int) error {
	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create high score dir: %w", err)
		}
	}

	data, err := json.MarshalIndent(highScoreFile{HighScore: score}, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(s.Path, data, 0644); err != nil {
		return fmt.Errorf("failed to write high score: %w", err)
	}
	return nil
}

// MemoryStore keeps the high score in memory only
type MemoryStore struct {
	score  int
	stored bool
	Writes int // Number of Store calls
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns the last stored score
func (m *MemoryStore) Load() (int, bool) {
	return m.score, m.stored
}

// Store records the score
func (m *MemoryStore) Store(score int) error {
	m.score = score
	m.stored = true
	m.Writes++
	return nil
}
