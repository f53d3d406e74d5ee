// internal/system/spawner.go
package system

import (
	"go-tower-defense-3d/internal/component"
	"go-tower-defense-3d/internal/entity"
	"go-tower-defense-3d/internal/event"
	"go-tower-defense-3d/internal/types"
	"go-tower-defense-3d/internal/utils"
	"go-tower-defense-3d/pkg/geom"

	"github.com/charmbracelet/log"
)

// SpawnerConfig описывает периодическое появление целей.
type SpawnerConfig struct {
	Origin    geom.Vec3
	Jitter    geom.Vec3 // Разброс позиции по каждой оси: origin ± jitter
	Interval  float64
	SpeedMin  float64
	SpeedMax  float64
	HealthMin int
	HealthMax int
	BoxSize   geom.Vec3
	Heading   geom.Vec3
	MaxAlive  int // 0 — без ограничения
	Limit     int // Сколько всего целей создать, 0 — без ограничения
}

// SpawnerSystem создаёт цели по таймеру. Параметры новых целей берутся
// из PRNGService, так что при одинаковом сиде запуски совпадают.
type SpawnerSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	logger          *log.Logger
	rng             *utils.PRNGService
	cfg             SpawnerConfig
	timer           component.Timer
	spawned         int
}

func NewSpawnerSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, logger *log.Logger, rng *utils.PRNGService, cfg SpawnerConfig) *SpawnerSystem {
	return &SpawnerSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		logger:          orDefault(logger),
		rng:             rng,
		cfg:             cfg,
		timer:           component.NewRepeatingTimer(cfg.Interval),
	}
}

// Spawned — сколько целей создано за всё время
func (s *SpawnerSystem) Spawned() int {
	return s.spawned
}

// Update возвращает id созданной цели или types.NoEntity.
func (s *SpawnerSystem) Update(deltaTime float64) (types.EntityID, error) {
	s.timer.Tick(deltaTime)
	if !s.timer.JustFinished() {
		return types.NoEntity, nil
	}
	if s.cfg.Limit > 0 && s.spawned >= s.cfg.Limit {
		return types.NoEntity, nil
	}
	if s.cfg.MaxAlive > 0 && len(s.ecs.Targets) >= s.cfg.MaxAlive {
		return types.NoEntity, nil
	}

	pos := geom.V(
		s.cfg.Origin.X+s.rng.Range(-s.cfg.Jitter.X, s.cfg.Jitter.X),
		s.cfg.Origin.Y+s.rng.Range(-s.cfg.Jitter.Y, s.cfg.Jitter.Y),
		s.cfg.Origin.Z+s.rng.Range(-s.cfg.Jitter.Z, s.cfg.Jitter.Z),
	)
	speed := s.rng.Range(s.cfg.SpeedMin, s.cfg.SpeedMax)
	health := s.rng.IntRange(s.cfg.HealthMin, s.cfg.HealthMax)

	id, err := s.ecs.SpawnTargetHeading(pos, speed, health, s.cfg.BoxSize, s.cfg.Heading)
	if err != nil {
		return types.NoEntity, err
	}
	s.spawned++
	s.logger.Info("target spawned", "target", id, "speed", speed, "health", health)
	s.eventDispatcher.Dispatch(event.Event{Type: event.TargetSpawned, Data: event.SpawnData{ID: id, Position: pos}})
	return id, nil
}
