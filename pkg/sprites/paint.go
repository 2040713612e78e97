package sprites

import (
	"image"
	"image/color"
	"math"
	"math/rand"
)

// Sprite sizes in pixels. Sprites are scaled with nearest-neighbour filtering.
const (
	CarWidth         = 40
	CarHeight        = 24
	TreeWidth        = 24
	TreeHeight       = 40
	BackgroundWidth  = 240
	BackgroundHeight = 120
)

func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.Color) {
	b := img.Bounds()
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if image.Pt(x, y).In(b) {
				img.Set(x, y, c)
			}
		}
	}
}

func shade(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		uint8(math.Min(255, float64(c.R)*f)),
		uint8(math.Min(255, float64(c.G)*f)),
		uint8(math.Min(255, float64(c.B)*f)),
		c.A,
	}
}

// PaintCar draws a car seen from behind
func PaintCar(body color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, CarWidth, CarHeight))

	dark := shade(body, 0.6)
	tyre := color.RGBA{25, 20, 35, 255}
	glass := color.RGBA{120, 200, 255, 255}
	tail := color.RGBA{255, 40, 90, 255}
	plate := color.RGBA{240, 240, 200, 255}

	// Tyres peek out below the body
	fillRect(img, 3, 18, 10, 24, tyre)
	fillRect(img, 30, 18, 37, 24, tyre)

	// Roof and rear window
	fillRect(img, 9, 2, 31, 10, dark)
	fillRect(img, 11, 4, 29, 9, glass)

	// Body
	fillRect(img, 1, 10, 39, 20, body)
	fillRect(img, 1, 10, 39, 11, shade(body, 1.3))
	fillRect(img, 1, 19, 39, 20, dark)

	// Tail lights and plate
	fillRect(img, 3, 12, 11, 15, tail)
	fillRect(img, 29, 12, 37, 15, tail)
	fillRect(img, 16, 15, 24, 18, plate)

	return img
}

// PaintTree draws a layered pine with its trunk at the bottom centre
func PaintTree() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, TreeWidth, TreeHeight))

	trunk := color.RGBA{90, 40, 80, 255}
	leaves := color.RGBA{255, 60, 200, 255}

	fillRect(img, TreeWidth/2-2, TreeHeight-8, TreeWidth/2+2, TreeHeight, trunk)

	layers := 3
	layerHeight := (TreeHeight - 8) / layers
	for l := 0; l < layers; l++ {
		bottom := TreeHeight - 8 - l*layerHeight*3/4
		width := TreeWidth - l*5
		c := shade(leaves, 1-0.15*float64(l))
		for ly := 0; ly < layerHeight; ly++ {
			rowW := width * (layerHeight - ly) / layerHeight
			fillRect(img, TreeWidth/2-rowW/2, bottom-ly-1, TreeWidth/2+rowW/2, bottom-ly, c)
		}
	}

	return img
}

// PaintBackground draws the sky strip above the horizon: a gradient, stars,
// a striped sun and a mountain ridge along the bottom edge
func PaintBackground(seed int64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, BackgroundWidth, BackgroundHeight))
	rng := rand.New(rand.NewSource(seed))

	top := color.RGBA{20, 8, 40, 255}
	for y := 0; y < BackgroundHeight; y++ {
		t := float64(y) / BackgroundHeight
		c := color.RGBA{
			uint8(float64(top.R) + t*float64(int(Background.R)-int(top.R))),
			uint8(float64(top.G) + t*float64(int(Background.G)-int(top.G))),
			uint8(float64(top.B) + t*float64(int(Background.B)-int(top.B))),
			255,
		}
		fillRect(img, 0, y, BackgroundWidth, y+1, c)
	}

	for i := 0; i < BackgroundWidth*BackgroundHeight/60; i++ {
		x := rng.Intn(BackgroundWidth)
		y := rng.Intn(BackgroundHeight / 2)
		b := uint8(150 + rng.Intn(100))
		img.Set(x, y, color.RGBA{b, b, b, 255})
	}

	// Sun with horizontal cut-outs that widen toward the horizon
	cx, cy, r := BackgroundWidth/2, BackgroundHeight-20, 48
	for y := cy - r; y < BackgroundHeight; y++ {
		if y > cy && (y-cy)%8 < (y-cy)/10+1 {
			continue
		}
		t := float64(y-(cy-r)) / float64(2*r)
		c := color.RGBA{255, uint8(220 - 160*math.Min(t, 1)), uint8(60 + 80*math.Min(t, 1)), 255}
		for x := cx - r; x <= cx+r; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				img.Set(x, y, c)
			}
		}
	}

	// Mountain ridge
	ridge := color.RGBA{40, 15, 70, 255}
	h := 6.0
	for x := 0; x < BackgroundWidth; x++ {
		h += rng.Float64()*2 - 1
		h = math.Max(2, math.Min(18, h))
		if x > cx-r-10 && x < cx+r+10 {
			h = math.Max(2, h-0.6)
		}
		fillRect(img, x, BackgroundHeight-int(h), x+1, BackgroundHeight, ridge)
	}

	return img
}
