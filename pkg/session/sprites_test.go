package session

import (
	"testing"

	"github.com/golangdaddy/synthwave/pkg/projection"
	"github.com/golangdaddy/synthwave/pkg/sprites"
)

func TestSpritesSortedFarToNear(t *testing.T) {
	s := newTestSession(t, DefaultTuning())
	s.Tick(0)

	list := s.Sprites(nil)
	if len(list) == 0 {
		t.Fatal("no sprites")
	}

	enemies, trees := 0, 0
	for i, sp := range list {
		if !sp.Visible {
			t.Fatalf("sprite %d is not visible", i)
		}
		if i > 0 && list[i-1].Depth > sp.Depth {
			t.Fatalf("sprite %d nearer than sprite %d", i-1, i)
		}
		switch sp.Kind {
		case sprites.KindEnemy:
			enemies++
		case sprites.KindTree:
			trees++
		default:
			t.Fatalf("unexpected kind %q in draw list", sp.Kind)
		}
	}
	if enemies != len(s.Traffic.Obstacles()) {
		t.Fatalf("enemies = %d, want %d", enemies, len(s.Traffic.Obstacles()))
	}
	if trees == 0 || trees%2 != 0 {
		t.Fatalf("trees = %d, want a positive even count", trees)
	}
}

func TestSpritesReusesBuffer(t *testing.T) {
	s := newTestSession(t, DefaultTuning())

	buf := make([]Sprite, 0, 512)
	first := s.Sprites(buf)
	second := s.Sprites(first[:0])
	if len(first) != len(second) {
		t.Fatalf("second pass has %d sprites, first had %d", len(second), len(first))
	}
	if &first[0] != &second[0] {
		t.Fatal("draw list not built in the supplied buffer")
	}
}

func TestPlayerSprite(t *testing.T) {
	p := PlayerSprite()
	if p.Kind != sprites.KindPlayer || !p.Visible {
		t.Fatalf("player sprite = %+v", p)
	}
	if p.X != projection.ScreenWidth/2 || p.Y != projection.ScreenHeight-PlayerScreenBottom {
		t.Fatalf("player anchored at (%f, %f)", p.X, p.Y)
	}
}
