package main

import (
	"flag"
	"log"

	"github.com/automoto/strider/actions"
	"github.com/automoto/strider/config"
	"github.com/automoto/strider/scenes"
	"github.com/automoto/strider/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	scene *scenes.WorldScene
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.Window.Width, config.Window.Height
}

func main() {
	xr := flag.Bool("xr", false, "drive locomotion from the headset runtime instead of the flat camera")
	configPath := flag.String("config", "strider.yaml", "optional YAML override for the tunables")
	flag.Parse()

	if err := config.LoadFile(*configPath); err != nil {
		log.Fatalf("config: %v", err)
	}

	// Initialize persistence and apply saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(saved)
	}

	var runtime *systems.XRRuntime
	if *xr {
		registry, err := actions.FromConfig()
		if err != nil {
			log.Fatalf("actions: %v", err)
		}
		runtime = &systems.XRRuntime{
			Registry: registry,
			Poller:   scenes.NewGamepadPoller(),
		}
	} else {
		// Mouse look needs the cursor captured, like any shooter.
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	}

	ebiten.SetWindowSize(config.Window.Width, config.Window.Height)
	ebiten.SetWindowTitle("strider")

	if err := ebiten.RunGame(&Game{scene: scenes.NewWorldScene(*xr, runtime)}); err != nil {
		log.Fatal(err)
	}
}
