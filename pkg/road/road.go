package road

import "github.com/golangdaddy/synthwave/pkg/projection"

// Road bundles the guide grid and the roadside trees, which share row stepping
type Road struct {
	Grid     *Grid
	Roadside *Roadside
}

// NewRoad creates a road for the given projection
func NewRoad(proj *projection.Projector, grid GridConfig, side RoadsideConfig) *Road {
	return &Road{
		Grid:     NewGrid(proj, grid),
		Roadside: NewRoadside(proj, side),
	}
}

// Update repositions all lines and trees from the scroll state
func (r *Road) Update(s *Scroll) {
	r.Grid.Update(s)
	r.Roadside.Update(s)
}
