package session

import (
	"time"

	"github.com/golangdaddy/synthwave/pkg/projection"
	"github.com/golangdaddy/synthwave/pkg/road"
	"github.com/golangdaddy/synthwave/pkg/traffic"
)

// Tuning groups every constant that shapes a play session.
// Distances are ground units, speeds are ground units per tick.
type Tuning struct {
	Projection projection.Config
	Speed      float64 // Constant forward scroll speed

	Scroll   road.ScrollConfig
	Grid     road.GridConfig
	Roadside road.RoadsideConfig
	Traffic  traffic.Config
	Player   traffic.HitBox

	RestartDelay time.Duration // Minimum time on the game over screen before a restart is accepted
}

// Screen placement of the player's sprite, which never moves
const (
	PlayerScreenWidth  = 160
	PlayerScreenBottom = 120
)

// DefaultTuning returns the tuning of the released game
func DefaultTuning() Tuning {
	const (
		rowSpacing  = 64
		rows        = 64
		spread      = projection.ScreenWidth * 6
		rails       = 32
		roadExtent  = 600
		roadSpread  = 480
		carWidth    = 220
		appearance  = 1500
		carSpacing  = 600
		shiftSpeed  = 5
		scrollSpeed = 5
	)

	grid := road.GridConfig{
		VerticalCount:   rails,
		Spread:          spread,
		HorizontalCount: rows,
		RowSpacing:      rowSpacing,
	}

	return Tuning{
		Projection: projection.DefaultConfig(),
		Speed:      scrollSpeed,
		Scroll: road.ScrollConfig{
			RowSpacing:    rowSpacing,
			ColumnSpacing: grid.ColumnSpacing(),
			ShiftSpeed:    shiftSpeed,
			MaxShift:      roadSpread,
		},
		Grid: grid,
		Roadside: road.RoadsideConfig{
			Rows:       rows,
			RowSpacing: rowSpacing,
			Extent:     roadExtent,
			TreeWidth:  120,
		},
		Traffic: traffic.Config{
			Appearance: appearance,
			Spacing:    carSpacing,
			NearPlane:  0,
			HalfSpread: roadSpread,
			CarWidth:   carWidth,
		},
		Player: traffic.HitBox{
			Distance:  100,
			Length:    50,
			HalfWidth: 120,
		},
		RestartDelay: time.Second,
	}
}
