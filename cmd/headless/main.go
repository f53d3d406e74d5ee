// cmd/headless/main.go
package main

import (
	"bufio"
	"flag"
	"go-tower-defense-3d/internal/app"
	"go-tower-defense-3d/internal/config"
	"go-tower-defense-3d/internal/defs"
	"go-tower-defense-3d/internal/trace"
	"os"

	"github.com/charmbracelet/log"
)

func main() {
	scenePath := flag.String("scene", config.DefaultScenePath, "Scene file, empty for the built-in scene")
	ticks := flag.Int("ticks", 600, "Number of ticks to run")
	dt := flag.Float64("dt", 1.0/60, "Seconds per tick")
	seed := flag.Int64("seed", 1, "Seed for the target spawner, overridden by the scene seed")
	workers := flag.Int("workers", config.OverlapWorkers, "Workers for the parallel overlap search")
	threshold := flag.Int("parallel", config.ParallelOverlapThreshold, "Bodies needed for the parallel overlap search, 0 disables it")
	keepDead := flag.Bool("keep-dead", false, "Leave targets with zero health in the world")
	tracePath := flag.String("trace", "", "Write a msgpack frame per tick to this file")
	verbose := flag.Bool("v", false, "Log every shot and hit")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "headless"})
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	scene := defs.DefaultScene()
	if *scenePath != "" {
		loaded, err := defs.LoadScene(*scenePath)
		if err != nil {
			logger.Fatal("could not load scene", "err", err)
		}
		scene = loaded
	}

	cfg := app.DefaultConfig()
	cfg.Logger = logger
	cfg.Seed = *seed
	cfg.Workers = *workers
	cfg.ParallelThreshold = *threshold
	cfg.RemoveDeadTargets = !*keepDead
	sim, err := app.NewSimulationFromScene(cfg, scene)
	if err != nil {
		logger.Fatal("could not build scene", "scene", scene.Name, "err", err)
	}

	var rec *trace.Recorder
	if *tracePath != "" {
		f, err := os.Create(*tracePath)
		if err != nil {
			logger.Fatal("could not create trace file", "err", err)
		}
		defer f.Close()
		w := bufio.NewWriter(f)
		defer w.Flush()
		rec = trace.NewRecorder(w)
	}

	var total app.TickStats
	for i := 0; i < *ticks; i++ {
		stats := sim.Tick(*dt)
		total.Hits += stats.Hits
		total.Destroyed += stats.Destroyed
		total.Fired += stats.Fired
		total.Expired += stats.Expired
		total.Spawned += stats.Spawned
		if rec != nil {
			if err := rec.Record(sim, stats); err != nil {
				logger.Error("trace stopped", "err", err)
				rec = nil
			}
		}
	}

	logger.Info("run finished",
		"run", sim.RunID,
		"scene", scene.Name,
		"time", sim.Time(),
		"fired", total.Fired,
		"hits", total.Hits,
		"destroyed", total.Destroyed,
		"expired", total.Expired,
		"spawned", total.Spawned,
		"targets_left", len(sim.Targets()),
		"bullets_left", len(sim.Bullets()),
	)
}
