package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/ballplayer/config"
	"github.com/plus3/ballplayer/ecs/debugui"
	debugui_ebiten "github.com/plus3/ballplayer/ecs/debugui/ebiten"
	"github.com/plus3/ballplayer/game"
)

func main() {
	configPath := flag.String("config", "", "YAML file overriding the default config")
	seed := flag.Uint64("seed", 0, "random seed for enemy spawns (0 keeps the config value)")
	debug := flag.Bool("debug", false, "show the Dear ImGui debug overlay")
	watch := flag.Bool("watch", false, "reload speeds whenever the -config file changes")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	world := game.NewWorld(cfg, game.NewRand(cfg.Seed))
	g := NewGame(world, loadSprites(cfg))

	if *debug {
		overlay := debugui.NewOverlay(world.Storage, world.Scheduler)
		world.Scheduler.Register(overlay.System())
		g.EnableOverlay(debugui_ebiten.NewImguiBackend(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height))
	} else {
		ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
		ebiten.SetWindowTitle(cfg.Window.Title)
	}
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	if *watch {
		if *configPath == "" {
			log.Println("-watch has no effect without -config")
		} else {
			watcher, err := config.NewWatcher(*configPath)
			if err != nil {
				log.Fatal(err)
			}
			defer watcher.Close()
			g.watcher = watcher
			log.Printf("watching %s for changes", *configPath)
		}
	}

	log.Printf("starting with seed %d, %d enemies", cfg.Seed, cfg.Enemies.Count)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
