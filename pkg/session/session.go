package session

import (
	"math/rand"

	"github.com/golangdaddy/synthwave/pkg/models"
	"github.com/golangdaddy/synthwave/pkg/projection"
	"github.com/golangdaddy/synthwave/pkg/road"
	"github.com/golangdaddy/synthwave/pkg/traffic"
)

// Outcome summarises one tick
type Outcome struct {
	Passed   int               // Obstacles retired this tick
	Collided bool              // The player hit an obstacle
	Hit      *traffic.Obstacle // The obstacle that was hit, if any
}

// Session owns all mutable state of one play-through
type Session struct {
	Scroll  *road.Scroll
	Road    *road.Road
	Traffic *traffic.Traffic
	Score   *models.Scoreboard

	tuning Tuning
	proj   *projection.Projector
	ticks  int
}

// NewSession creates a fresh session. The first obstacle spawns immediately.
func NewSession(tuning Tuning, proj *projection.Projector, score *models.Scoreboard, rng *rand.Rand) *Session {
	s := &Session{
		Scroll:  road.NewScroll(tuning.Scroll),
		Road:    road.NewRoad(proj, tuning.Grid, tuning.Roadside),
		Traffic: traffic.New(proj, tuning.Traffic, rng),
		Score:   score,
		tuning:  tuning,
		proj:    proj,
	}
	s.Traffic.Spawn(s.Scroll.Shift)
	return s
}

// Projector returns the projection shared by every component of the session
func (s *Session) Projector() *projection.Projector {
	return s.proj
}

// Ticks returns how many ticks the session has run
func (s *Session) Ticks() int {
	return s.ticks
}

// Tick advances the session by one frame.
// dir is the world's lateral direction this tick (+1 steering left, -1 steering right).
func (s *Session) Tick(dir int) Outcome {
	s.ticks++

	dx := s.Scroll.Update(s.tuning.Speed, dir)
	s.Traffic.Shift(dx)
	s.Road.Update(s.Scroll)

	retired := s.Traffic.Step(s.tuning.Speed, s.Scroll.Shift)
	for range retired {
		s.Score.Pass()
	}

	out := Outcome{Passed: len(retired)}
	if hit := s.Traffic.Collide(s.tuning.Player); hit != nil {
		out.Collided = true
		out.Hit = hit
	}
	return out
}
