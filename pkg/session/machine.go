package session

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/golangdaddy/synthwave/pkg/models"
	"github.com/golangdaddy/synthwave/pkg/projection"
)

// Phase is the state of the game
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game over"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Input is the player's intent for one tick, polled once per frame
type Input struct {
	Dir     int  // World direction: +1 steering left, -1 steering right, 0 straight
	Restart bool // Restart requested (only meaningful on the game over screen)
}

// Result is the payload carried into the game over state
type Result struct {
	Score     int
	HighScore int
}

// Machine switches between playing and the game over screen
type Machine struct {
	tuning Tuning
	proj   *projection.Projector
	clock  Clock
	rng    *rand.Rand
	score  *models.Scoreboard

	phase     Phase
	session   *Session
	result    Result
	enteredAt time.Time
}

// NewMachine creates a machine in the playing phase with a fresh session
func NewMachine(tuning Tuning, store models.HighScoreStore, clock Clock, rng *rand.Rand) (*Machine, error) {
	proj, err := projection.New(tuning.Projection)
	if err != nil {
		return nil, err
	}
	if clock == nil {
		clock = SystemClock{}
	}

	m := &Machine{
		tuning: tuning,
		proj:   proj,
		clock:  clock,
		rng:    rng,
		score:  models.NewScoreboard(store),
	}
	m.startPlaying()
	return m, nil
}

// Phase returns the current phase
func (m *Machine) Phase() Phase {
	return m.phase
}

// Session returns the active or most recent session
func (m *Machine) Session() *Session {
	return m.session
}

// Result returns the payload of the last game over
func (m *Machine) Result() Result {
	return m.result
}

// HighScore returns the best score seen so far
func (m *Machine) HighScore() int {
	return m.score.HighScore
}

// RestartReady reports whether a restart would be accepted now
func (m *Machine) RestartReady() bool {
	return m.phase == PhaseGameOver && m.clock.Now().Sub(m.enteredAt) >= m.tuning.RestartDelay
}

// Update runs one tick and reports whether the phase changed
func (m *Machine) Update(in Input) bool {
	switch m.phase {
	case PhasePlaying:
		out := m.session.Tick(in.Dir)
		if out.Collided {
			m.gameOver()
			return true
		}
	case PhaseGameOver:
		if in.Restart && m.RestartReady() {
			m.startPlaying()
			return true
		}
	}
	return false
}

func (m *Machine) startPlaying() {
	m.score.Reset()
	m.session = NewSession(m.tuning, m.proj, m.score, m.rng)
	m.phase = PhasePlaying
	log.Printf("session started (high score %d)", m.score.HighScore)
}

func (m *Machine) gameOver() {
	m.result = Result{
		Score:     m.score.Score,
		HighScore: m.score.HighScore,
	}
	m.phase = PhaseGameOver
	m.enteredAt = m.clock.Now()
	log.Printf("game over: score %d, high score %d", m.result.Score, m.result.HighScore)
}
