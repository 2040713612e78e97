package game

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/golangdaddy/synthwave/pkg/sprites"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Assets holds the GPU images for every sprite kind
type Assets struct {
	images map[sprites.Kind]*ebiten.Image
}

// LoadAssets loads every sprite from dir, using built-in art for missing or unreadable files
func LoadAssets(dir string) (*Assets, error) {
	a := &Assets{images: make(map[sprites.Kind]*ebiten.Image, len(sprites.Kinds))}
	for _, kind := range sprites.Kinds {
		img, err := loadImage(dir, kind)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", kind, err)
		}
		a.images[kind] = img
	}
	return a, nil
}

func loadImage(dir string, kind sprites.Kind) (*ebiten.Image, error) {
	name := sprites.FileName(kind)
	if name == "" {
		return nil, fmt.Errorf("unknown sprite kind %q", kind)
	}

	img, _, err := ebitenutil.NewImageFromFile(filepath.Join(dir, name))
	if err == nil {
		return img, nil
	}
	log.Printf("assets: using built-in %s: %v", kind, err)

	painted, err := sprites.Paint(kind)
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(painted), nil
}

// Image returns the image for a sprite kind
func (a *Assets) Image(kind sprites.Kind) *ebiten.Image {
	return a.images[kind]
}
