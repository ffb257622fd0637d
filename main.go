package main

import (
	"errors"
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olivierh59500/heartbeat-go/internal/config"
	"github.com/olivierh59500/heartbeat-go/internal/display"
	"github.com/olivierh59500/heartbeat-go/internal/heartbeat"
)

var (
	configPath = flag.String("config", "", "JSON file overriding the default tuning")
	seed       = flag.Int64("seed", 0, "Random seed (0 = time based)")
	width      = flag.Int("width", 1280, "Initial window width")
	height     = flag.Int("height", 720, "Initial window height")
	fullscreen = flag.Bool("fullscreen", false, "Start in fullscreen")
)

func main() {
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatal(err)
		}
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	// Initialize simulation with the chosen tuning
	sim, err := heartbeat.NewSimulation(cfg, float64(*width), float64(*height), rand.New(rand.NewSource(*seed)))
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("heartbeat: %dx%d, %d particles, beat every %gms, seed %d", *width, *height, cfg.TotalParticles, cfg.BeatInterval, *seed)

	// Set up Ebitengine game
	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("Heartbeat")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(*fullscreen)
	ebiten.SetVsyncEnabled(true)
	// Previous frames must survive for the trail fade
	ebiten.SetScreenClearedEveryFrame(false)

	// Run the game loop
	err = ebiten.RunGame(display.NewGame(sim))

	st := sim.Stats()
	log.Printf("heartbeat: %d frames, %d/%d beats, %d particle resets, %d clamped ticks",
		st.Frames, st.PrimaryBeats, st.SecondaryBeats, st.ParticleResets, st.ClampedTicks)

	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
