package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/ball-animation/internal/config"
	"github.com/iburimskiy/ball-animation/internal/game"
	"github.com/iburimskiy/ball-animation/internal/sim"
	"github.com/iburimskiy/ball-animation/internal/sound"
	"github.com/iburimskiy/ball-animation/internal/tui"
)

func main() {
	settings := config.Load()
	flag.Int64Var(&settings.Seed, "seed", settings.Seed, "random seed for ball placement (0 picks one)")
	flag.BoolVar(&settings.Mute, "mute", settings.Mute, "disable bounce sounds")
	flag.BoolVar(&settings.ConfirmReset, "confirm-reset", settings.ConfirmReset, "ask before RESET removes balls")
	flag.BoolVar(&settings.TUI, "tui", settings.TUI, "run in the terminal instead of a window")
	flag.Parse()

	seed := uint64(settings.Seed)
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	world := sim.NewWorld(
		sim.Bounds{Width: config.CanvasWidth, Height: config.CanvasHeight},
		rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	)

	if settings.TUI {
		// Log output would tear the terminal UI.
		log.SetOutput(io.Discard)
		runTUI(world, settings)
		return
	}

	log.Printf("ball animation starting, seed %d", seed)
	player := sound.New(settings.Mute)
	defer player.Close()

	g := game.New(world, player, settings.ConfirmReset)
	if err := game.Run(g); err != nil {
		log.Printf("fatal: %v", err)
		_ = zenity.Error(err.Error(), zenity.Title("Ball Animation"), zenity.ErrorIcon)
		player.Close()
		os.Exit(1)
	}
}

func runTUI(world *sim.World, settings config.Settings) {
	player := sound.New(settings.Mute)
	defer player.Close()

	app, err := tui.New(world, player)
	if err != nil {
		player.Close()
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer app.Close()

	app.Run()
}
