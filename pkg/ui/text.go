package ui

import (
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// face is the bitmap font used for all text; glyphs are 16px tall
var face = text.NewGoXFace(bitmapfont.Face)

// TextWidth returns the width of str drawn at the given size
func TextWidth(str string, size float64) float64 {
	return text.Advance(str, face) * size / 16.0
}

// DrawTextAt draws text with its top-left corner at (x, y)
func DrawTextAt(screen *ebiten.Image, str string, x, y float64, size float64, clr color.Color) {
	scale := size / 16.0

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// DrawTextCentered draws text centred on (centerX, centerY)
func DrawTextCentered(screen *ebiten.Image, str string, centerX, centerY float64, size float64, clr color.Color) {
	x := centerX - TextWidth(str, size)/2
	y := centerY - size/2
	DrawTextAt(screen, str, x, y, size, clr)
}
