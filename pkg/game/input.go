package game

import (
	"github.com/golangdaddy/synthwave/pkg/projection"
	"github.com/golangdaddy/synthwave/pkg/session"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// pollInput reads the pointer, touch and keyboard state once for this tick.
// Holding the left half of the screen steers left, which slides the world right.
func pollInput() session.Input {
	var in session.Input

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, _ := ebiten.CursorPosition()
		in.Dir = sideOfScreen(x)
	}
	for _, id := range ebiten.AppendTouchIDs(nil) {
		x, _ := ebiten.TouchPosition(id)
		in.Dir = sideOfScreen(x)
	}

	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA):
		in.Dir = 1
	case ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD):
		in.Dir = -1
	}

	in.Restart = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter)

	return in
}

func sideOfScreen(x int) int {
	if x < projection.ScreenWidth/2 {
		return 1
	}
	return -1
}
