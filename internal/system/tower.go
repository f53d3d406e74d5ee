// internal/system/tower.go
package system

import (
	"go-tower-defense-3d/internal/entity"
	"go-tower-defense-3d/internal/event"
	"go-tower-defense-3d/internal/types"
	"go-tower-defense-3d/pkg/geom"
	"math"

	"github.com/charmbracelet/log"
)

// TowerSystem управляет стрельбой башен
type TowerSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	logger          *log.Logger
}

func NewTowerSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, logger *log.Logger) *TowerSystem {
	return &TowerSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		logger:          orDefault(logger),
	}
}

// Update продвигает таймеры башен и стреляет по ближайшей цели в момент
// срабатывания таймера. Возвращает id выпущенных снарядов.
func (s *TowerSystem) Update(deltaTime float64) []types.EntityID {
	var fired []types.EntityID
	for _, id := range s.ecs.TowerIDs() {
		tower := s.ecs.Towers[id]
		tower.FireTimer.Tick(deltaTime)
		if !tower.FireTimer.JustFinished() {
			continue
		}

		muzzle := tower.Muzzle()
		targetID, targetPos, found := s.FindNearestTarget(muzzle)
		if !found {
			// Целей нет: выстрел пропущен, таймер всё равно перезаряжается
			continue
		}

		bulletID, degenerate, err := s.ecs.SpawnBullet(id, muzzle, targetPos.Sub(muzzle))
		if err != nil {
			s.logger.Error("TowerSystem: could not spawn bullet", "tower", id, "err", err)
			continue
		}
		bullet := s.ecs.Bullets[bulletID]
		if degenerate {
			s.logger.Debug("target sits on the muzzle, using default direction",
				"tower", id, "target", targetID, "direction", bullet.Direction)
		}
		tower.Facing = bullet.Direction
		fired = append(fired, bulletID)

		s.logger.Debug("tower fired", "tower", id, "target", targetID, "bullet", bulletID)
		s.eventDispatcher.Dispatch(event.Event{Type: event.BulletFired, Data: event.FireData{
			Tower:     id,
			Bullet:    bulletID,
			Target:    targetID,
			Muzzle:    muzzle,
			Direction: bullet.Direction,
		}})
	}
	return fired
}

// FindNearestTarget ищет ближайшую к точке живую цель среди всех целей.
// Радиус обнаружения башни здесь не учитывается, он используется только для отрисовки.
// Цели перебираются в порядке создания, при равных расстояниях побеждает первая.
func (s *TowerSystem) FindNearestTarget(from geom.Vec3) (types.EntityID, geom.Vec3, bool) {
	var nearest types.EntityID
	var nearestPos geom.Vec3
	minDistance := math.MaxFloat64
	for _, id := range s.ecs.TargetIDs() {
		pos, ok := s.ecs.Position(id)
		if !ok {
			continue
		}
		distance := geom.Distance(pos, from)
		if distance < minDistance {
			minDistance = distance
			nearest = id
			nearestPos = pos
		}
	}
	return nearest, nearestPos, nearest != types.NoEntity
}
