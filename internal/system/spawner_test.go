package system

import (
	"go-tower-defense-3d/internal/entity"
	"go-tower-defense-3d/internal/event"
	"go-tower-defense-3d/internal/utils"
	"go-tower-defense-3d/pkg/geom"
	"testing"
)

func spawnerConfig() SpawnerConfig {
	return SpawnerConfig{
		Origin:    geom.V(-2, 0.5, 1.5),
		Jitter:    geom.V(0.2, 0.5, 0),
		Interval:  1.0,
		SpeedMin:  0.2,
		SpeedMax:  0.5,
		HealthMin: 2,
		HealthMax: 4,
		BoxSize:   geom.V(0.4, 0.4, 0.4),
		Heading:   geom.V(1, 0, 0),
		Limit:     3,
	}
}

func runSpawner(t *testing.T, seed int64) []geom.Vec3 {
	t.Helper()
	ecs := entity.NewECS()
	s := NewSpawnerSystem(ecs, event.NewDispatcher(), quiet, utils.NewPRNGService(seed), spawnerConfig())
	for i := 0; i < 10; i++ {
		if _, err := s.Update(1.0); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}
	var out []geom.Vec3
	for _, id := range ecs.TargetIDs() {
		pos, _ := ecs.Position(id)
		out = append(out, pos)
	}
	return out
}

func TestSpawnerIsDeterministicAndLimited(t *testing.T) {
	a := runSpawner(t, 1234)
	b := runSpawner(t, 1234)
	if len(a) != 3 {
		t.Fatalf("spawned %d targets, want the limit of 3", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("target %d differs between runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestSpawnerRespectsMaxAlive(t *testing.T) {
	ecs, d, rec := newWorld(t)
	cfg := spawnerConfig()
	cfg.Limit = 0
	cfg.MaxAlive = 2
	s := NewSpawnerSystem(ecs, d, quiet, utils.NewPRNGService(1), cfg)
	for i := 0; i < 5; i++ {
		s.Update(1.0)
	}
	if len(ecs.Targets) != 2 || s.Spawned() != 2 {
		t.Errorf("targets = %d, spawned = %d, want 2", len(ecs.Targets), s.Spawned())
	}
	if rec.count(event.TargetSpawned) != 2 {
		t.Errorf("TargetSpawned events = %d", rec.count(event.TargetSpawned))
	}
	for _, id := range ecs.TargetIDs() {
		h := ecs.Healths[id].Value
		if h < cfg.HealthMin || h > cfg.HealthMax {
			t.Errorf("health %d outside [%d, %d]", h, cfg.HealthMin, cfg.HealthMax)
		}
	}
}
