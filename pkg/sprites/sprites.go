package sprites

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// Kind identifies a sprite asset
type Kind string

const (
	KindPlayer     Kind = "player car"
	KindEnemy      Kind = "enemy car"
	KindTree       Kind = "tree"
	KindBackground Kind = "background"
)

// Kinds lists every asset the game draws
var Kinds = []Kind{KindPlayer, KindEnemy, KindTree, KindBackground}

// Palette of the game
var (
	Background = color.RGBA{0x36, 0x1b, 0x52, 0xff}
	Line       = color.RGBA{0xff, 0xff, 0xff, 0xff}
	PlayerBody = color.RGBA{220, 20, 60, 255}
	EnemyBody  = color.RGBA{40, 200, 220, 255}
)

// FileName returns the asset file for a kind
func FileName(kind Kind) string {
	switch kind {
	case KindPlayer:
		return "player.png"
	case KindEnemy:
		return "enemy.png"
	case KindTree:
		return "tree.png"
	case KindBackground:
		return "background.png"
	}
	return ""
}

// Paint draws the built-in version of an asset
func Paint(kind Kind) (*image.RGBA, error) {
	switch kind {
	case KindPlayer:
		return PaintCar(PlayerBody), nil
	case KindEnemy:
		return PaintCar(EnemyBody), nil
	case KindTree:
		return PaintTree(), nil
	case KindBackground:
		return PaintBackground(1), nil
	}
	return nil, fmt.Errorf("unknown sprite kind %q", kind)
}

// Save writes an image as PNG
func Save(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	return png.Encode(file, img)
}
