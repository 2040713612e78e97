package road

import "github.com/golangdaddy/synthwave/pkg/projection"

// Line is a screen-space segment
type Line struct {
	X1, Y1, X2, Y2 float64
	Visible        bool // False for rows at or behind the viewer's eye
}

// Grid maintains the fixed set of guide lines. Lines are allocated once and
// rewritten in place every tick.
type Grid struct {
	Vertical   []Line
	Horizontal []Line

	cfg   GridConfig
	proj  *projection.Projector
	baseX []float64
}

// NewGrid creates the guide lines and positions them for a scroll at rest
func NewGrid(proj *projection.Projector, cfg GridConfig) *Grid {
	g := &Grid{
		Vertical:   make([]Line, cfg.VerticalCount),
		Horizontal: make([]Line, cfg.HorizontalCount),
		cfg:        cfg,
		proj:       proj,
		baseX:      make([]float64, cfg.VerticalCount),
	}

	// Near endpoints are evenly spread across the bottom edge, wider than the screen
	step := 0.0
	if cfg.VerticalCount > 1 {
		step = cfg.Spread / float64(cfg.VerticalCount-1)
	}
	for i := range g.baseX {
		g.baseX[i] = projection.ScreenWidth/2 - cfg.Spread/2 + float64(i)*step
	}

	g.Update(&Scroll{})
	return g
}

// BaseX returns the near screen X of rail i before any lateral offset
func (g *Grid) BaseX(i int) float64 {
	return g.baseX[i]
}

// Update recomputes every line's endpoints from the scroll state
func (g *Grid) Update(s *Scroll) {
	horizon := g.proj.HorizonY()
	for i := range g.Vertical {
		g.Vertical[i] = Line{
			X1:      projection.ScreenWidth / 2,
			Y1:      horizon,
			X2:      g.baseX[i] + s.Lateral,
			Y2:      projection.ScreenHeight,
			Visible: true,
		}
	}

	for i := range g.Horizontal {
		d := g.cfg.RowSpacing*float64(i) - s.Forward
		if !g.proj.Visible(d) {
			g.Horizontal[i] = Line{}
			continue
		}
		y := g.proj.GroundYToScreenY(d)
		g.Horizontal[i] = Line{
			X1:      0,
			Y1:      y,
			X2:      projection.ScreenWidth,
			Y2:      y,
			Visible: true,
		}
	}
}
