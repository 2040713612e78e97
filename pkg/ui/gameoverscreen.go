package ui

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/golangdaddy/synthwave/pkg/session"
	"github.com/hajimehoshi/ebiten/v2"
)

// GameOverScreen shows the final score over the frozen last frame
type GameOverScreen struct {
	result    session.Result
	startTime time.Time
	backdrop  func(*ebiten.Image) // Draws the frame the crash happened on
	ready     func() bool         // Reports whether a restart would be accepted
	shade     *ebiten.Image
}

// NewGameOverScreen creates the game over screen for a result
func NewGameOverScreen(result session.Result, backdrop func(*ebiten.Image), ready func() bool) *GameOverScreen {
	shade := ebiten.NewImage(1, 1)
	shade.Fill(color.RGBA{0, 0, 0, 160})

	return &GameOverScreen{
		result:    result,
		startTime: time.Now(),
		backdrop:  backdrop,
		ready:     ready,
		shade:     shade,
	}
}

// Update has nothing to simulate; restart input is handled by the machine
func (gs *GameOverScreen) Update() error {
	return nil
}

// Draw renders the game over screen
func (gs *GameOverScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	if gs.backdrop != nil {
		gs.backdrop(screen)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width), float64(height))
	screen.DrawImage(gs.shade, op)

	elapsed := time.Since(gs.startTime).Seconds()
	centerX := float64(width) / 2
	centerY := float64(height) / 3

	// Pulsing title
	pulse := 1.0 + 0.08*math.Sin(elapsed*4)
	DrawTextCentered(screen, "GAME OVER", centerX, centerY, 48*pulse, color.RGBA{255, 60, 200, 255})

	DrawTextCentered(screen, fmt.Sprintf("SCORE %d", gs.result.Score), centerX, centerY+80, 24, color.RGBA{255, 220, 120, 255})

	hiColor := color.RGBA{180, 180, 220, 255}
	if gs.result.Score > 0 && gs.result.Score == gs.result.HighScore {
		hiColor = color.RGBA{120, 255, 200, 255}
	}
	DrawTextCentered(screen, fmt.Sprintf("HIGH SCORE %d", gs.result.HighScore), centerX, centerY+120, 20, hiColor)

	// Blink the prompt once a restart would be accepted
	if gs.ready != nil && gs.ready() && int(elapsed*2)%2 == 0 {
		DrawTextCentered(screen, "TAP TO RESTART", centerX, float64(height)-120, 20, color.RGBA{150, 200, 255, 255})
	}
}
