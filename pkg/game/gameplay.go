package game

import (
	"fmt"
	"image/color"

	"github.com/golangdaddy/synthwave/pkg/projection"
	"github.com/golangdaddy/synthwave/pkg/road"
	"github.com/golangdaddy/synthwave/pkg/session"
	"github.com/golangdaddy/synthwave/pkg/sprites"
	"github.com/golangdaddy/synthwave/pkg/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// BackgroundTop is the screen row where the sky image starts
const BackgroundTop = 160

// GameplayScreen translates the session's ground-plane state into draw calls
type GameplayScreen struct {
	machine *session.Machine
	assets  *Assets
	sprites []session.Sprite // Reused every tick, sorted far to near

	Debug bool
}

// NewGameplayScreen creates the driving screen
func NewGameplayScreen(machine *session.Machine, assets *Assets) *GameplayScreen {
	return &GameplayScreen{
		machine: machine,
		assets:  assets,
		sprites: make([]session.Sprite, 0, 256),
	}
}

// Update rebuilds the depth-sorted sprite list from the session
func (gs *GameplayScreen) Update() error {
	gs.sprites = gs.machine.Session().Sprites(gs.sprites[:0])
	return nil
}

// Draw renders the gameplay screen
func (gs *GameplayScreen) Draw(screen *ebiten.Image) {
	screen.Fill(sprites.Background)

	gs.drawGrid(screen)
	gs.drawBackground(screen)

	for _, sp := range gs.sprites {
		gs.drawSprite(screen, gs.assets.Image(sp.Kind), sp.Placement)
	}

	player := session.PlayerSprite()
	gs.drawSprite(screen, gs.assets.Image(player.Kind), player.Placement)

	gs.drawHUD(screen)

	if gs.Debug {
		label := fmt.Sprintf("TPS %.0f FPS %.0f", ebiten.ActualTPS(), ebiten.ActualFPS())
		ebitenutil.DebugPrintAt(screen, label, projection.ScreenWidth-130, projection.ScreenHeight-25)
	}
}

// drawGrid strokes the rails and ground rows
func (gs *GameplayScreen) drawGrid(screen *ebiten.Image) {
	grid := gs.machine.Session().Road.Grid

	for _, l := range grid.Vertical {
		strokeLine(screen, l, sprites.Line)
	}
	for _, l := range grid.Horizontal {
		// Rows behind the viewer project below the screen
		if !l.Visible || l.Y1 > projection.ScreenHeight {
			continue
		}
		strokeLine(screen, l, sprites.Line)
	}
}

func strokeLine(screen *ebiten.Image, l road.Line, clr color.Color) {
	vector.StrokeLine(screen, float32(l.X1), float32(l.Y1), float32(l.X2), float32(l.Y2), 1, clr, false)
}

// drawBackground stretches the sky image to the screen width, ending at the horizon
func (gs *GameplayScreen) drawBackground(screen *ebiten.Image) {
	img := gs.assets.Image(sprites.KindBackground)
	scale := float64(projection.ScreenWidth) / float64(img.Bounds().Dx())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(0, BackgroundTop)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(img, op)
}

// drawSprite draws an image with its bottom centre on the placement point
func (gs *GameplayScreen) drawSprite(screen *ebiten.Image, img *ebiten.Image, p road.Placement) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if w == 0 || p.Width <= 0 {
		return
	}
	scale := p.Width / float64(w)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(p.X-p.Width/2, p.Y-float64(h)*scale)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(img, op)
}

// drawHUD prints the score in the top corners
func (gs *GameplayScreen) drawHUD(screen *ebiten.Image) {
	score := gs.machine.Session().Score
	hudColor := color.RGBA{255, 220, 120, 255}

	ui.DrawTextAt(screen, fmt.Sprintf("SCORE %d", score.Score), 12, 16, 16, hudColor)

	hi := fmt.Sprintf("HI %d", score.HighScore)
	ui.DrawTextAt(screen, hi, projection.ScreenWidth-12-ui.TextWidth(hi, 16), 16, 16, hudColor)
}
