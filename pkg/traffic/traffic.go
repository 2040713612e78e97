package traffic

import (
	"log"
	"math/rand"

	"github.com/golangdaddy/synthwave/pkg/projection"
	"github.com/golangdaddy/synthwave/pkg/road"
)

// Obstacle is an enemy car on the ground plane
type Obstacle struct {
	ID    int64   // Unique identifier, increasing in spawn order
	X     float64 // Lateral ground position, 0 is the player's lane
	Y     float64 // Forward distance from the viewer, shrinks every tick
	Spawn float64 // Distance it appeared at

	prevY float64 // Y before the most recent tick
}

// Travelled returns how far the obstacle has come since it spawned
func (o *Obstacle) Travelled() float64 {
	return o.Spawn - o.Y
}

// Config holds the obstacle manager's fixed parameters
type Config struct {
	Appearance float64 // Far spawn plane
	Spacing    float64 // Forward gap between consecutive spawns
	NearPlane  float64 // Obstacles below this distance have passed the viewer
	HalfSpread float64 // Spawns land uniformly in [-HalfSpread, HalfSpread] around the road centre
	CarWidth   float64 // Ground width of an enemy car
}

// Traffic spawns, advances and retires obstacles
type Traffic struct {
	cfg       Config
	proj      *projection.Projector
	rng       *rand.Rand
	obstacles []*Obstacle
	last      *Obstacle // Most recently spawned
	nextID    int64
	warned    bool
}

// New creates an empty obstacle manager
func New(proj *projection.Projector, cfg Config, rng *rand.Rand) *Traffic {
	return &Traffic{
		cfg:       cfg,
		proj:      proj,
		rng:       rng,
		obstacles: make([]*Obstacle, 0, 8),
	}
}

// Obstacles returns the active obstacles in spawn order
func (t *Traffic) Obstacles() []*Obstacle {
	return t.obstacles
}

// Spawn places a new obstacle on the far plane at a random lateral position
// relative to the road centre, which the player's shift has moved to x = shift
func (t *Traffic) Spawn(shift float64) *Obstacle {
	x := (t.rng.Float64()*2-1)*t.cfg.HalfSpread + shift
	return t.SpawnAt(x, t.cfg.Appearance)
}

// SpawnAt places a new obstacle at an explicit ground position.
// Positions already at or past the near plane are rejected.
func (t *Traffic) SpawnAt(x, y float64) *Obstacle {
	if y <= t.cfg.NearPlane {
		if !t.warned {
			log.Printf("traffic: refusing to spawn obstacle at y=%.1f (near plane %.1f)", y, t.cfg.NearPlane)
			t.warned = true
		}
		return nil
	}

	t.nextID++
	o := &Obstacle{
		ID:    t.nextID,
		X:     x,
		Y:     y,
		Spawn: y,
		prevY: y,
	}
	t.obstacles = append(t.obstacles, o)
	t.last = o
	return o
}

// Shift moves every active obstacle sideways with the world
func (t *Traffic) Shift(dx float64) {
	if dx == 0 {
		return
	}
	for _, o := range t.obstacles {
		o.X += dx
	}
}

// Advance moves every obstacle toward the viewer and retires the ones that
// passed the near plane. Remaining obstacles keep their spawn order.
func (t *Traffic) Advance(speed float64) []*Obstacle {
	var retired []*Obstacle

	active := t.obstacles[:0]
	for _, o := range t.obstacles {
		o.prevY = o.Y
		o.Y -= speed
		if o.Y < t.cfg.NearPlane {
			retired = append(retired, o)
			continue
		}
		active = append(active, o)
	}
	for i := len(active); i < len(t.obstacles); i++ {
		t.obstacles[i] = nil
	}
	t.obstacles = active

	return retired
}

// Step runs one tick of the obstacle simulation: advance, retire, then spawn.
// A new obstacle appears when none are active, or on the tick the most recent
// spawn first covers the spacing distance.
func (t *Traffic) Step(speed, shift float64) []*Obstacle {
	retired := t.Advance(speed)

	if len(t.obstacles) == 0 || t.crossedSpacing() {
		t.Spawn(shift)
	}

	return retired
}

// crossedSpacing reports whether the most recent spawn crossed the spacing
// threshold during the last tick. It compares positions before and after the
// tick so a changing speed can't skip or repeat the trigger.
func (t *Traffic) crossedSpacing() bool {
	if t.last == nil {
		return false
	}
	before := t.last.Spawn - t.last.prevY
	after := t.last.Travelled()
	return before < t.cfg.Spacing && after >= t.cfg.Spacing
}

// Placement projects an obstacle onto the screen, anchored at its bottom centre
func (t *Traffic) Placement(o *Obstacle) road.Placement {
	if o.Y < 0 || !t.proj.Visible(o.Y) {
		return road.Placement{}
	}
	return road.Placement{
		X:       t.proj.GroundXToScreenX(o.X, o.Y),
		Y:       t.proj.GroundYToScreenY(o.Y),
		Width:   t.proj.ScaleToScreen(t.cfg.CarWidth, o.Y),
		Depth:   t.proj.Depth(o.Y),
		Visible: true,
	}
}

// Reset drops every obstacle
func (t *Traffic) Reset() {
	for i := range t.obstacles {
		t.obstacles[i] = nil
	}
	t.obstacles = t.obstacles[:0]
	t.last = nil
}
