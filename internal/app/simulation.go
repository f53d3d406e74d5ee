// internal/app/simulation.go
package app

import (
	"context"
	"go-tower-defense-3d/internal/config"
	"go-tower-defense-3d/internal/entity"
	"go-tower-defense-3d/internal/event"
	"go-tower-defense-3d/internal/physics"
	"go-tower-defense-3d/internal/system"
	"go-tower-defense-3d/internal/types"
	"go-tower-defense-3d/internal/utils"
	"go-tower-defense-3d/pkg/geom"
	"iter"
	"os"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Config — параметры симуляции
type Config struct {
	// Убирать цели с нулевым здоровьем отдельным шагом после столкновений
	RemoveDeadTargets bool
	// С какого числа тел искать пересечения параллельно (0 — никогда)
	ParallelThreshold int
	Workers           int
	Seed              int64
	Logger            *log.Logger
}

func DefaultConfig() Config {
	return Config{
		RemoveDeadTargets: true,
		ParallelThreshold: config.ParallelOverlapThreshold,
		Workers:           config.OverlapWorkers,
	}
}

// TickStats — что произошло за один тик
type TickStats struct {
	Hits      int
	Destroyed int
	Fired     int
	Expired   int
	Spawned   int
}

// Simulation — ядро игры: реестры сущностей и явный конвейер тика.
type Simulation struct {
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	RunID           string

	TowerSystem     *system.TowerSystem
	BulletSystem    *system.BulletSystem
	CollisionSystem *system.CollisionSystem
	DeathSystem     *system.DeathSystem
	SpawnerSystem   *system.SpawnerSystem // nil, пока спавнер не задан

	cfg    Config
	logger *log.Logger
	ticks  uint64
}

// NewSimulation создаёт пустую симуляцию.
func NewSimulation(cfg Config) *Simulation {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	runID := uuid.NewString()
	base := cfg.Logger
	if base == nil {
		base = log.NewWithOptions(os.Stderr, log.Options{Prefix: "sim"})
	}
	logger := base.With("run", runID)

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	return &Simulation{
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Rng:             utils.NewPRNGService(cfg.Seed),
		RunID:           runID,
		TowerSystem:     system.NewTowerSystem(ecs, eventDispatcher, logger),
		BulletSystem:    system.NewBulletSystem(ecs, eventDispatcher, logger),
		CollisionSystem: system.NewCollisionSystem(ecs, eventDispatcher, logger),
		DeathSystem:     system.NewDeathSystem(ecs, eventDispatcher, logger),
		cfg:             cfg,
		logger:          logger,
	}
}

// Logger возвращает логгер текущего прогона.
func (s *Simulation) Logger() *log.Logger {
	return s.logger
}

// Events — диспетчер событий для слоя отрисовки
func (s *Simulation) Events() *event.Dispatcher {
	return s.EventDispatcher
}

// SetSpawner включает периодическое появление целей.
func (s *Simulation) SetSpawner(cfg system.SpawnerConfig) {
	s.SpawnerSystem = system.NewSpawnerSystem(s.ECS, s.EventDispatcher, s.logger, s.Rng, cfg)
}

func (s *Simulation) SpawnTower(position geom.Vec3, detectionRange, firePeriod float64, muzzleOffset geom.Vec3) (types.EntityID, error) {
	id, err := s.ECS.SpawnTower(position, detectionRange, firePeriod, muzzleOffset)
	if err != nil {
		return types.NoEntity, err
	}
	s.logger.Info("tower placed", "tower", id, "position", position, "range", detectionRange, "period", firePeriod)
	s.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: event.SpawnData{ID: id, Position: position}})
	return id, nil
}

func (s *Simulation) SpawnTarget(position geom.Vec3, speed float64, initialHealth int, boxSize geom.Vec3) (types.EntityID, error) {
	return s.SpawnTargetHeading(position, speed, initialHealth, boxSize, config.DefaultTargetHeading)
}

func (s *Simulation) SpawnTargetHeading(position geom.Vec3, speed float64, initialHealth int, boxSize, heading geom.Vec3) (types.EntityID, error) {
	id, err := s.ECS.SpawnTargetHeading(position, speed, initialHealth, boxSize, heading)
	if err != nil {
		return types.NoEntity, err
	}
	s.logger.Info("target spawned", "target", id, "position", position, "speed", speed, "health", initialHealth)
	s.EventDispatcher.Dispatch(event.Event{Type: event.TargetSpawned, Data: event.SpawnData{ID: id, Position: position}})
	return id, nil
}

// Tick выполняет один шаг симуляции. Порядок шагов фиксирован:
//  1. тела продвигаются на dt;
//  2. пересечения пересчитываются;
//  3. столкновения снаряд-цель превращаются в урон;
//  4. цели с нулевым здоровьем убираются (если включено);
//  5. башни стреляют;
//  6. стареют снаряды, существовавшие до шага 5;
//  7. спавнер добавляет цели.
func (s *Simulation) Tick(dt float64) TickStats {
	var stats TickStats
	if dt < 0 {
		dt = 0
	}
	s.ticks++
	s.ECS.GameTime += dt

	s.ECS.Bodies.Advance(dt)
	stats.Hits = s.CollisionSystem.Update(s.overlaps())
	if s.cfg.RemoveDeadTargets {
		stats.Destroyed = len(s.DeathSystem.Update())
	}

	aging := s.ECS.BulletIDs()
	stats.Fired = len(s.TowerSystem.Update(dt))
	stats.Expired = s.BulletSystem.Update(dt, aging)

	if s.SpawnerSystem != nil {
		id, err := s.SpawnerSystem.Update(dt)
		if err != nil {
			s.logger.Error("spawner failed", "err", err)
		} else if id != types.NoEntity {
			stats.Spawned = 1
		}
	}
	return stats
}

// overlaps выбирает последовательный или параллельный поиск пересечений.
// Параллельный вариант отдаёт результат только после завершения всех воркеров.
func (s *Simulation) overlaps() iter.Seq[physics.Overlap] {
	bodies := s.ECS.Bodies
	if s.cfg.ParallelThreshold <= 0 || bodies.Len() < s.cfg.ParallelThreshold {
		return bodies.Overlaps()
	}
	pairs, err := bodies.ParallelOverlaps(context.Background(), s.cfg.Workers)
	if err != nil {
		s.logger.Warn("parallel overlap search failed, falling back", "err", err)
		return bodies.Overlaps()
	}
	return slices.Values(pairs)
}

// Ticks — число выполненных тиков
func (s *Simulation) Ticks() uint64 {
	return s.ticks
}

// Time — суммарное время симуляции в секундах
func (s *Simulation) Time() float64 {
	return s.ECS.GameTime
}
