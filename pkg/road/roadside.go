package road

import "github.com/golangdaddy/synthwave/pkg/projection"

// Roadside keeps two fixed pools of trees, one per grid row on each side of the road
type Roadside struct {
	Left  []Placement
	Right []Placement

	cfg  RoadsideConfig
	proj *projection.Projector
}

// NewRoadside creates the tree pools and positions them for a scroll at rest
func NewRoadside(proj *projection.Projector, cfg RoadsideConfig) *Roadside {
	r := &Roadside{
		Left:  make([]Placement, cfg.Rows),
		Right: make([]Placement, cfg.Rows),
		cfg:   cfg,
		proj:  proj,
	}
	r.Update(&Scroll{})
	return r
}

// Update moves every tree to its row's current distance, shifted with the player
func (r *Roadside) Update(s *Scroll) {
	for i := 0; i < r.cfg.Rows; i++ {
		y := r.cfg.RowSpacing*float64(i) - s.Forward
		r.Left[i] = r.place(-r.cfg.Extent+s.Shift, y)
		r.Right[i] = r.place(r.cfg.Extent+s.Shift, y)
	}
}

func (r *Roadside) place(x, y float64) Placement {
	if !r.proj.Visible(y) {
		return Placement{}
	}
	return Placement{
		X:       r.proj.GroundXToScreenX(x, y),
		Y:       r.proj.GroundYToScreenY(y),
		Width:   r.proj.ScaleToScreen(r.cfg.TreeWidth, y),
		Depth:   r.proj.Depth(y),
		Visible: true,
	}
}
