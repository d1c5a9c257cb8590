// Command ballplayer-bench runs the simulation headless with scripted input and random
// window resizes, checking the frame invariants after every frame.
//
// Profiling:
//
//	go build ./cmd/ballplayer-bench
//	./ballplayer-bench -profile cpu
//	go tool pprof -http=":8000" ./ballplayer-bench cpu.pprof
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"github.com/plus3/ballplayer/config"
	"github.com/plus3/ballplayer/game"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the run should last for.")
	configPath := flag.String("config", "", "YAML file overriding the default config")
	seed := flag.Uint64("seed", 1, "Seed for enemy spawns, scripted input and resizes.")
	width := flag.Float64("width", 1280, "Initial window width.")
	height := flag.Float64("height", 720, "Initial window height.")
	dt := flag.Float64("dt", 1.0/60.0, "Seconds simulated per frame.")
	resizeEvery := flag.Int("resize-every", 120, "Resize the window every N frames (0 disables).")
	enemies := flag.Int("enemies", 0, "Override the enemy count (0 keeps the config value).")
	profileMode := flag.String("profile", "", "Write a cpu or mem profile to the working directory.")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}
	cfg.Seed = *seed
	if *enemies > 0 {
		cfg.Enemies.Count = *enemies
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	switch *profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		log.Fatalf("unknown profile mode %q", *profileMode)
	}

	log.Println("Starting ball-player bench...")

	driver := NewDriver(cfg, game.Window{Width: *width, Height: *height}, *resizeEvery)

	report := &Report{
		Duration:    *duration,
		Seed:        *seed,
		Enemies:     cfg.Enemies.Count,
		DeltaTime:   *dt,
		ResizeEvery: *resizeEvery,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			err := driver.Frame(*dt)
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
			report.TotalUpdates++

			if err != nil {
				report.Violations++
				if report.FirstViolation == "" {
					report.FirstViolation = fmt.Sprintf("frame %d: %v", report.TotalUpdates, err)
				}
			}
		}
	}

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	report.Bounces = driver.Bounces()
	report.Resizes = driver.Resizes()
	report.Scheduler = driver.world.Scheduler.GetStats()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Bench Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	if report.Violations > 0 {
		os.Exit(1)
	}
}
