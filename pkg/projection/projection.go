package projection

import "fmt"

// Fixed canvas size in pixels
const (
	ScreenWidth  = 480
	ScreenHeight = 640
)

// Config describes the perspective used to flatten the ground plane onto the screen
type Config struct {
	HorizonY       float64 // Screen row that represents infinite distance
	ViewerDistance float64 // Distance between the viewer's eyes and the screen, in ground units
}

// DefaultConfig returns the perspective of the released game: horizon at row 400,
// viewer sitting half a screen width away from the glass
func DefaultConfig() Config {
	return Config{
		HorizonY:       400,
		ViewerDistance: ScreenWidth / 2,
	}
}

// Validate checks the config can be used for projection
func (c Config) Validate() error {
	if c.HorizonY < 0 || c.HorizonY >= ScreenHeight {
		return fmt.Errorf("horizon %.1f outside screen height %d", c.HorizonY, ScreenHeight)
	}
	if c.ViewerDistance <= 0 {
		return fmt.Errorf("viewer distance must be positive, got %.1f", c.ViewerDistance)
	}
	return nil
}

// Projector maps ground plane coordinates (lateral x, forward y) to screen coordinates.
// It holds no mutable state.
type Projector struct {
	cfg Config
}

// New creates a projector for the given config
func New(cfg Config) (*Projector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid projection config: %w", err)
	}
	return &Projector{cfg: cfg}, nil
}

// MustNew is like New but panics on an invalid config
func MustNew(cfg Config) *Projector {
	p, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return p
}

// HorizonY returns the screen row of the horizon
func (p *Projector) HorizonY() float64 {
	return p.cfg.HorizonY
}

// ViewerDistance returns the eye-to-screen distance
func (p *Projector) ViewerDistance() float64 {
	return p.cfg.ViewerDistance
}

// Visible reports whether a ground distance can be projected.
// Anything at or behind the viewer's eye would divide by zero or flip.
func (p *Projector) Visible(y float64) bool {
	return p.cfg.ViewerDistance+y > 0
}

// GroundYToScreenY projects a forward distance onto a screen row.
// y = 0 lands on the bottom of the screen, y -> inf approaches the horizon.
func (p *Projector) GroundYToScreenY(y float64) float64 {
	h := ScreenHeight - p.cfg.HorizonY
	return ScreenHeight - (h*y)/(p.cfg.ViewerDistance+y)
}

// ScaleToScreen converts a ground length seen at distance y into screen pixels
func (p *Projector) ScaleToScreen(length, y float64) float64 {
	return (p.cfg.ViewerDistance * length) / (p.cfg.ViewerDistance + y)
}

// GroundXToScreenX projects a lateral offset (0 = centre) at distance y onto a screen column
func (p *Projector) GroundXToScreenX(x, y float64) float64 {
	return ScreenWidth/2 + p.ScaleToScreen(x, y)
}

// Depth returns a draw-order key for distance y; nearer objects get larger values
func (p *Projector) Depth(y float64) float64 {
	return 1 / (p.cfg.ViewerDistance + y)
}
