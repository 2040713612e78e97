//go:build ignore

// Writes the built-in sprites to assets/ so they can be edited by hand.
//
//	go run generate_sprites.go
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/golangdaddy/synthwave/pkg/sprites"
)

func main() {
	dir := "assets"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatalf("Error creating directory: %v", err)
	}

	for _, kind := range sprites.Kinds {
		img, err := sprites.Paint(kind)
		if err != nil {
			log.Fatalf("Error painting %s: %v", kind, err)
		}

		filename := filepath.Join(dir, sprites.FileName(kind))
		if err := sprites.Save(img, filename); err != nil {
			log.Fatalf("Error saving %s: %v", kind, err)
		}
		fmt.Printf("Generated %s: %s (%dx%d)\n", kind, filename, img.Bounds().Dx(), img.Bounds().Dy())
	}
}
