package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/golangdaddy/synthwave/pkg/config"
	"github.com/golangdaddy/synthwave/pkg/models"
	"github.com/golangdaddy/synthwave/pkg/session"
	"github.com/golangdaddy/synthwave/pkg/termview"
)

const tickRate = time.Second / 60

func main() {
	ephemeral := flag.Bool("ephemeral", false, "keep the high score in memory only")
	logPath := flag.String("log", "", "write logs to this file (the terminal is busy drawing)")
	flag.Parse()

	// Anything printed to stderr would tear the screen
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	settings, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	var store models.HighScoreStore = models.NewFileStore(settings.HighScorePath)
	if *ephemeral {
		store = models.NewMemoryStore()
	}

	machine, err := session.NewMachine(session.DefaultTuning(), store, session.SystemClock{}, rand.New(rand.NewSource(settings.Seed)))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	run(screen, machine)
}

// run drives the machine at a fixed rate; events are folded into the next tick's input
func run(screen tcell.Screen, machine *session.Machine) {
	view := termview.NewView(screen, machine)
	controller := termview.NewController(screen)

	ticker := time.NewTicker(tickRate)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev := <-events:
			if !controller.Handle(ev) {
				return
			}

		case <-ticker.C:
			if machine.Update(controller.Poll()) {
				log.Printf("phase: %v", machine.Phase())
			}
			view.Show()
		}
	}
}
