// Command ballplayer-tty plays the ball-player game in a terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/plus3/ballplayer/config"
	"github.com/plus3/ballplayer/game"
)

func main() {
	configPath := flag.String("config", "", "YAML file overriding the default config")
	seed := flag.Uint64("seed", 0, "random seed for enemy spawns (0 keeps the config value)")
	mute := flag.Bool("mute", false, "disable the bounce sound")
	logPath := flag.String("log", "", "write log output to this file")
	flag.Parse()

	// The terminal is owned by tcell while the game runs.
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	world := game.NewWorld(cfg, game.NewRand(cfg.Seed))

	t, err := NewTerminal(world)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	if !*mute {
		if err := t.blipper.Init(); err != nil {
			log.Printf("audio initialization failed: %v", err)
		}
	}

	defer t.Close()
	t.Run()
}
