package models

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "highscore.json")
	store := NewFileStore(path)

	if _, ok := store.Load(); ok {
		t.Fatal("missing file should load as absent")
	}

	if err := store.Store(42); err != nil {
		t.Fatalf("Store: %v", err)
	}
	got, ok := store.Load()
	if !ok || got != 42 {
		t.Fatalf("Load = %d, %v; want 42, true", got, ok)
	}
}

func TestFileStoreHoldsOnlyTheScore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.json")
	if err := NewFileStore(path).Store(7); err != nil {
		t.Fatalf("Store: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("stored file is not JSON: %v", err)
	}
	if len(fields) != 1 || string(fields["high_score"]) != "7" {
		t.Fatalf("stored file = %s, want only high_score 7", data)
	}
}

func TestFileStoreMalformedIsAbsent(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"text.json":     "forty-two",
		"string.json":   `{"high_score": "lots"}`,
		"negative.json": `{"high_score": -3}`,
	}

	for name, content := range cases {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		if score, ok := NewFileStore(path).Load(); ok {
			t.Errorf("%s: Load = %d, true; want absent", name, score)
		}

		sb := NewScoreboard(NewFileStore(path))
		if sb.HighScore != 0 {
			t.Errorf("%s: high score = %d, want 0", name, sb.HighScore)
		}
	}
}

func TestScoreboardHighScoreFollowsScore(t *testing.T) {
	store := NewMemoryStore()
	store.Store(3)
	store.Writes = 0

	sb := NewScoreboard(store)
	if sb.HighScore != 3 || sb.Score != 0 {
		t.Fatalf("initial = %d/%d, want 0/3", sb.Score, sb.HighScore)
	}

	for i := 0; i < 3; i++ {
		sb.Pass()
	}
	if sb.HighScore != 3 || store.Writes != 0 {
		t.Fatalf("tying the high score should not store: hs=%d writes=%d", sb.HighScore, store.Writes)
	}

	sb.Pass()
	sb.Pass()
	if sb.Score != 5 || sb.HighScore != 5 {
		t.Fatalf("after 5 passes = %d/%d, want 5/5", sb.Score, sb.HighScore)
	}
	if stored, _ := store.Load(); stored != sb.HighScore || store.Writes != 2 {
		t.Fatalf("stored %d with %d writes, want %d with 2", stored, store.Writes, sb.HighScore)
	}

	sb.Reset()
	if sb.Score != 0 || sb.HighScore != 5 {
		t.Fatalf("after reset = %d/%d, want 0/5", sb.Score, sb.HighScore)
	}
	sb.Pass()
	if sb.HighScore != 5 {
		t.Fatalf("high score dropped to %d", sb.HighScore)
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	sb := NewScoreboard(nil)
	sb.Pass()
	if sb.Score != 1 || sb.HighScore != 1 {
		t.Fatalf("score = %d/%d, want 1/1", sb.Score, sb.HighScore)
	}
}
