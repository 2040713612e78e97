package road

import "math"

// ScrollConfig holds the fixed parameters of the scrolling illusion
type ScrollConfig struct {
	RowSpacing    float64 // Ground distance between horizontal grid rows (forward wrap modulus)
	ColumnSpacing float64 // Distance between vertical rails (lateral wrap modulus)
	ShiftSpeed    float64 // Lateral displacement per tick while steering
	MaxShift      float64 // Bound on the cumulative lateral shift
}

// GridConfig describes the guide lines drawn on the ground plane
type GridConfig struct {
	VerticalCount   int     // Number of rails radiating from the vanishing point
	Spread          float64 // Width covered by the rails at the bottom of the screen
	HorizontalCount int     // Number of ground rows
	RowSpacing      float64 // Ground distance between rows
}

// ColumnSpacing is the lateral wrap modulus for the rails.
// It is a little smaller than the rail step of Spread/(count-1), so a wrap snaps the rails back by the difference.
func (c GridConfig) ColumnSpacing() float64 {
	return c.Spread / float64(c.VerticalCount)
}

// RoadsideConfig describes the tree pools on both sides of the road
type RoadsideConfig struct {
	Rows       int     // One tree per side per grid row
	RowSpacing float64 // Same stepping as the grid rows
	Extent     float64 // Lateral ground distance of each tree line from the road centre
	TreeWidth  float64 // Ground width of a tree
}

// Placement is the screen-space position of a sprite anchored at its bottom centre.
// Adapters turn placements into draw calls; larger Depth draws on top.
type Placement struct {
	X, Y    float64
	Width   float64
	Depth   float64
	Visible bool
}

// wrap is a cyclic modulus that maps negatives back into [0, m)
func wrap(v, m float64) float64 {
	r := math.Mod(v, m)
	if r < 0 {
		r += m
	}
	if r >= m {
		r = 0
	}
	return r
}
