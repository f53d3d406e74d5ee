// internal/app/scene.go
package app

import (
	"fmt"
	"go-tower-defense-3d/internal/defs"
	"go-tower-defense-3d/internal/system"
)

// NewSimulationFromScene создаёт симуляцию и расставляет сущности сцены.
// Сид сцены, если задан, переопределяет cfg.Seed.
func NewSimulationFromScene(cfg Config, scene *defs.SceneDefinition) (*Simulation, error) {
	if scene.Seed != 0 {
		cfg.Seed = scene.Seed
	}
	sim := NewSimulation(cfg)
	if err := sim.ApplyScene(scene); err != nil {
		return nil, err
	}
	return sim, nil
}

// ApplyScene расставляет башни и цели сцены и подключает её спавнер.
func (s *Simulation) ApplyScene(scene *defs.SceneDefinition) error {
	for i := range scene.Towers {
		d := &scene.Towers[i]
		if _, err := s.SpawnTower(d.Position.Vec(), d.DetectionRange, d.FirePeriod, d.MuzzleOffset.Vec()); err != nil {
			return fmt.Errorf("tower %d (%s): %w", i, d.Name, err)
		}
	}
	for i := range scene.Targets {
		d := &scene.Targets[i]
		if _, err := s.SpawnTargetHeading(d.Position.Vec(), d.Speed, d.Health, d.BoxSize.Vec(), d.HeadingVec()); err != nil {
			return fmt.Errorf("target %d (%s): %w", i, d.Name, err)
		}
	}
	if sp := scene.Spawner; sp != nil {
		s.SetSpawner(system.SpawnerConfig{
			Origin:    sp.Origin.Vec(),
			Jitter:    sp.Jitter.Vec(),
			Interval:  sp.Interval,
			SpeedMin:  sp.SpeedMin,
			SpeedMax:  sp.SpeedMax,
			HealthMin: sp.HealthMin,
			HealthMax: sp.HealthMax,
			BoxSize:   sp.BoxSize.Vec(),
			Heading:   sp.HeadingVec(),
			MaxAlive:  sp.MaxAlive,
			Limit:     sp.Limit,
		})
	}
	s.logger.Info("scene applied", "scene", scene.Name, "towers", len(scene.Towers), "targets", len(scene.Targets), "spawner", scene.Spawner != nil)
	return nil
}
