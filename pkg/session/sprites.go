package session

import (
	"slices"

	"github.com/golangdaddy/synthwave/pkg/projection"
	"github.com/golangdaddy/synthwave/pkg/road"
	"github.com/golangdaddy/synthwave/pkg/sprites"
)

// Sprite is one drawable the frontends place on screen this frame
type Sprite struct {
	Kind sprites.Kind
	road.Placement
}

// Sprites appends every visible tree and enemy car to dst, ordered far to near
// so drawing in order puts nearer sprites on top
func (s *Session) Sprites(dst []Sprite) []Sprite {
	side := s.Road.Roadside
	for i := range side.Left {
		if side.Left[i].Visible {
			dst = append(dst, Sprite{sprites.KindTree, side.Left[i]})
		}
		if side.Right[i].Visible {
			dst = append(dst, Sprite{sprites.KindTree, side.Right[i]})
		}
	}
	for _, o := range s.Traffic.Obstacles() {
		if p := s.Traffic.Placement(o); p.Visible {
			dst = append(dst, Sprite{sprites.KindEnemy, p})
		}
	}

	slices.SortStableFunc(dst, func(a, b Sprite) int {
		switch {
		case a.Depth < b.Depth:
			return -1
		case a.Depth > b.Depth:
			return 1
		}
		return 0
	})
	return dst
}

// PlayerSprite returns the screen-fixed placement of the player's car
func PlayerSprite() Sprite {
	return Sprite{
		Kind: sprites.KindPlayer,
		Placement: road.Placement{
			X:       projection.ScreenWidth / 2,
			Y:       projection.ScreenHeight - PlayerScreenBottom,
			Width:   PlayerScreenWidth,
			Visible: true,
		},
	}
}
