package main

import (
	"log"
	"math/rand"

	"github.com/golangdaddy/synthwave/pkg/config"
	"github.com/golangdaddy/synthwave/pkg/game"
	"github.com/golangdaddy/synthwave/pkg/models"
	"github.com/golangdaddy/synthwave/pkg/projection"
	"github.com/golangdaddy/synthwave/pkg/session"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	store := models.NewFileStore(settings.HighScorePath)
	machine, err := session.NewMachine(session.DefaultTuning(), store, session.SystemClock{}, rand.New(rand.NewSource(settings.Seed)))
	if err != nil {
		log.Fatal(err)
	}

	assets, err := game.LoadAssets(settings.AssetsDir)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(int(projection.ScreenWidth*settings.WindowScale), int(projection.ScreenHeight*settings.WindowScale))
	ebiten.SetWindowTitle("Synthwave")
	g := game.NewGame(machine, assets)
	g.SetDebug(settings.Debug)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
