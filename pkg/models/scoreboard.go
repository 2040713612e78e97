package models

import "log"

// Scoreboard tracks the current score and the persisted high score
type Scoreboard struct {
	Score     int
	HighScore int

	store HighScoreStore
}

// NewScoreboard creates a scoreboard seeded from the store
func NewScoreboard(store HighScoreStore) *Scoreboard {
	sb := &Scoreboard{store: store}
	if store != nil {
		if hs, ok := store.Load(); ok {
			sb.HighScore = hs
		}
	}
	return sb
}

// Pass records an obstacle passed without collision.
// A new high score is written through to the store straight away.
func (sb *Scoreboard) Pass() {
	sb.Score++
	if sb.Score <= sb.HighScore {
		return
	}

	sb.HighScore = sb.Score
	if sb.store == nil {
		return
	}
	if err := sb.store.Store(sb.HighScore); err != nil {
		log.Printf("highscore: failed to store %d: %v", sb.HighScore, err)
	}
}

// Reset starts a new session's score, keeping the high score
func (sb *Scoreboard) Reset() {
	sb.Score = 0
}
