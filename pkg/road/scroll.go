package road

// Scroll holds the offsets that drive the illusion of movement.
// Forward and Lateral are cyclic, Shift is the player's cumulative steering.
type Scroll struct {
	Forward float64 // 0 <= Forward < RowSpacing
	Lateral float64 // 0 <= Lateral < ColumnSpacing
	Shift   float64 // -MaxShift <= Shift <= MaxShift

	cfg ScrollConfig
}

// NewScroll creates a scroll state at rest
func NewScroll(cfg ScrollConfig) *Scroll {
	return &Scroll{cfg: cfg}
}

// Update advances the scroll by one tick.
// dir is the direction the world slides (+1, 0, -1); steering left moves the world right.
// Returns the lateral displacement applied this tick, which world content must follow.
func (s *Scroll) Update(speed float64, dir int) float64 {
	s.Forward = wrap(s.Forward+speed, s.cfg.RowSpacing)

	if dir == 0 {
		return 0
	}
	if dir > 0 {
		dir = 1
	} else {
		dir = -1
	}

	dx := float64(dir) * s.cfg.ShiftSpeed
	next := s.Shift + dx
	if next < -s.cfg.MaxShift || next > s.cfg.MaxShift {
		return 0
	}
	s.Shift = next
	s.Lateral = wrap(s.Lateral+dx, s.cfg.ColumnSpacing)
	return dx
}

// Reset puts the scroll back to its initial state
func (s *Scroll) Reset() {
	s.Forward = 0
	s.Lateral = 0
	s.Shift = 0
}
