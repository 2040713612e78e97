package termview

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/golangdaddy/synthwave/pkg/projection"
	"github.com/golangdaddy/synthwave/pkg/road"
	"github.com/golangdaddy/synthwave/pkg/session"
	"github.com/golangdaddy/synthwave/pkg/sprites"
)

// Glyphs used on the cell grid
const (
	RowGlyph    = '─'
	RailGlyph   = '·'
	CrossGlyph  = '┼'
	TreeGlyph   = '♣'
	EnemyGlyph  = '█'
	PlayerGlyph = '▀'
)

var (
	baseStyle   = tcell.StyleDefault.Background(tcell.FromImageColor(sprites.Background))
	lineStyle   = baseStyle.Foreground(tcell.FromImageColor(sprites.Line))
	treeStyle   = baseStyle.Foreground(tcell.NewHexColor(0xff4fa3))
	enemyStyle  = baseStyle.Foreground(tcell.FromImageColor(sprites.EnemyBody))
	playerStyle = baseStyle.Foreground(tcell.FromImageColor(sprites.PlayerBody))
	hudStyle    = baseStyle.Foreground(tcell.NewHexColor(0xffdc78)).Bold(true)
)

// View draws the machine's current frame onto a terminal.
// The fixed canvas is stretched over whatever cell grid the terminal has.
type View struct {
	screen  tcell.Screen
	machine *session.Machine
	sprites []session.Sprite
}

// NewView creates a view over an initialised screen
func NewView(screen tcell.Screen, machine *session.Machine) *View {
	return &View{
		screen:  screen,
		machine: machine,
		sprites: make([]session.Sprite, 0, 256),
	}
}

// Draw renders one frame without presenting it
func (v *View) Draw() {
	v.screen.Fill(' ', baseStyle)

	w, h := v.screen.Size()
	if w <= 0 || h <= 0 {
		return
	}

	s := v.machine.Session()
	v.drawGrid(s.Road.Grid, w, h)

	v.sprites = s.Sprites(v.sprites[:0])
	for _, sp := range v.sprites {
		v.drawSprite(sp, w, h)
	}
	v.drawSprite(session.PlayerSprite(), w, h)

	v.drawHUD(s.Score.Score, s.Score.HighScore, w)

	if v.machine.Phase() == session.PhaseGameOver {
		v.drawGameOver(w, h)
	}
}

// Show draws and presents a frame
func (v *View) Show() {
	v.Draw()
	v.screen.Show()
}

// cell maps a canvas point onto the cell grid
func cell(x, y float64, w, h int) (int, int) {
	cx := int(math.Floor(x * float64(w) / projection.ScreenWidth))
	cy := int(math.Floor(y * float64(h) / projection.ScreenHeight))
	return cx, cy
}

func (v *View) set(x, y int, r rune, style tcell.Style) {
	w, h := v.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	v.screen.SetContent(x, y, r, nil, style)
}

func (v *View) drawGrid(grid *road.Grid, w, h int) {
	for _, l := range grid.Horizontal {
		if !l.Visible || l.Y1 >= projection.ScreenHeight {
			continue
		}
		_, cy := cell(0, l.Y1, w, h)
		for x := 0; x < w; x++ {
			v.set(x, cy, RowGlyph, lineStyle)
		}
	}

	for _, l := range grid.Vertical {
		_, top := cell(l.X1, l.Y1, w, h)
		_, bottom := cell(l.X2, l.Y2, w, h)
		if bottom >= h {
			bottom = h - 1
		}
		for cy := top; cy <= bottom; cy++ {
			// Sample the rail at the centre of the cell row
			y := (float64(cy) + 0.5) * projection.ScreenHeight / float64(h)
			t := (y - l.Y1) / (l.Y2 - l.Y1)
			cx, _ := cell(l.X1+(l.X2-l.X1)*t, y, w, h)

			r := RailGlyph
			if cur, _, _, _ := v.screen.GetContent(cx, cy); cur == RowGlyph || cur == CrossGlyph {
				r = CrossGlyph
			}
			v.set(cx, cy, r, lineStyle)
		}
	}
}

// drawSprite fills the sprite's footprint, anchored bottom centre like the image renderer
func (v *View) drawSprite(sp session.Sprite, w, h int) {
	cells := int(math.Round(sp.Width * float64(w) / projection.ScreenWidth))
	if cells < 1 {
		cells = 1
	}
	cx, bottom := cell(sp.X, sp.Y, w, h)
	left := cx - cells/2

	var (
		glyph  rune
		style  tcell.Style
		height int
	)
	switch sp.Kind {
	case sprites.KindTree:
		glyph, style = TreeGlyph, treeStyle
		left, cells = cx, 1
		height = max(1, int(math.Round(sp.Width*float64(h)/projection.ScreenHeight*sprites.TreeHeight/sprites.TreeWidth)))
	case sprites.KindEnemy:
		glyph, style = EnemyGlyph, enemyStyle
		height = max(1, int(math.Round(sp.Width*float64(h)/projection.ScreenHeight*sprites.CarHeight/sprites.CarWidth)))
	case sprites.KindPlayer:
		glyph, style = PlayerGlyph, playerStyle
		cells = max(cells, 2)
		left = cx - cells/2
		height = 1
	default:
		return
	}

	for y := bottom - height + 1; y <= bottom; y++ {
		for x := left; x < left+cells; x++ {
			v.set(x, y, glyph, style)
		}
	}
}

func (v *View) drawHUD(score, high, w int) {
	v.text(1, 0, fmt.Sprintf("SCORE %d", score), hudStyle)
	hi := fmt.Sprintf("HI %d", high)
	v.text(w-1-len(hi), 0, hi, hudStyle)
}

func (v *View) drawGameOver(w, h int) {
	res := v.machine.Result()
	mid := h / 2

	v.centred(mid-2, "GAME OVER", hudStyle.Foreground(tcell.FromImageColor(sprites.PlayerBody)), w)
	v.centred(mid, fmt.Sprintf("SCORE %d", res.Score), hudStyle, w)
	v.centred(mid+1, fmt.Sprintf("HIGH SCORE %d", res.HighScore), hudStyle, w)
	if v.machine.RestartReady() {
		v.centred(mid+3, "SPACE TO RESTART", lineStyle, w)
	}
}

func (v *View) centred(y int, s string, style tcell.Style, w int) {
	v.text((w-len([]rune(s)))/2, y, s, style)
}

func (v *View) text(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		v.set(x+i, y, r, style)
	}
}
