package game

import (
	"log"

	"github.com/golangdaddy/synthwave/pkg/projection"
	"github.com/golangdaddy/synthwave/pkg/session"
	"github.com/golangdaddy/synthwave/pkg/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// Screen represents a UI screen interface
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// Game implements the ebiten.Game interface and switches screens with the machine's phase
type Game struct {
	machine       *session.Machine
	assets        *Assets
	gameplay      *GameplayScreen
	currentScreen Screen
}

// NewGame creates a new game instance showing the gameplay screen
func NewGame(machine *session.Machine, assets *Assets) *Game {
	g := &Game{
		machine: machine,
		assets:  assets,
	}
	g.gameplay = NewGameplayScreen(machine, assets)
	g.currentScreen = g.gameplay
	return g
}

// Update polls input, advances the machine and switches scenes on a phase change
func (g *Game) Update() error {
	if g.machine.Update(pollInput()) {
		g.switchScreen()
	}
	return g.currentScreen.Update()
}

// SetDebug toggles the tick and frame rate overlay
func (g *Game) SetDebug(debug bool) {
	g.gameplay.Debug = debug
}

// Draw renders the current screen
func (g *Game) Draw(screen *ebiten.Image) {
	g.currentScreen.Draw(screen)
}

// Layout returns the fixed canvas size regardless of the window
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return projection.ScreenWidth, projection.ScreenHeight
}

// switchScreen moves to the screen for the machine's new phase
func (g *Game) switchScreen() {
	switch g.machine.Phase() {
	case session.PhasePlaying:
		g.currentScreen = g.gameplay
	case session.PhaseGameOver:
		// Freeze the frame the crash happened on
		g.gameplay.Update()
		g.currentScreen = ui.NewGameOverScreen(g.machine.Result(), g.gameplay.Draw, g.machine.RestartReady)
	}
	log.Printf("screen: %s", g.machine.Phase())
}
