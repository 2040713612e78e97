package traffic

import "math"

// HitBox is the player's fixed footprint on the ground plane
type HitBox struct {
	Distance  float64 // Near edge of the depth window
	Length    float64 // Depth of the window
	HalfWidth float64 // Lateral half-width around x = 0
}

// Hits reports whether an obstacle overlaps the hit box
func (h HitBox) Hits(o *Obstacle) bool {
	return o.Y > h.Distance &&
		o.Y < h.Distance+h.Length &&
		math.Abs(o.X) < h.HalfWidth
}

// Collide returns the first obstacle, in spawn order, that overlaps the hit box
func (t *Traffic) Collide(h HitBox) *Obstacle {
	for _, o := range t.obstacles {
		if h.Hits(o) {
			return o
		}
	}
	return nil
}
