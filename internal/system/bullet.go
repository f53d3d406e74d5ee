// internal/system/bullet.go
package system

import (
	"go-tower-defense-3d/internal/entity"
	"go-tower-defense-3d/internal/event"
	"go-tower-defense-3d/internal/types"

	"github.com/charmbracelet/log"
)

// BulletSystem отсчитывает время жизни снарядов и убирает просроченные.
// Сам полёт снаряда ведёт его физическое тело.
type BulletSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	logger          *log.Logger
}

func NewBulletSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, logger *log.Logger) *BulletSystem {
	return &BulletSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		logger:          orDefault(logger),
	}
}

// Update уменьшает время жизни снарядов из ids на deltaTime. Снаряды,
// которых уже нет в реестре, пропускаются. Возвращает число удалённых.
func (s *BulletSystem) Update(deltaTime float64, ids []types.EntityID) int {
	expired := 0
	for _, id := range ids {
		lifetime, ok := s.ecs.Lifetimes[id]
		if !ok {
			continue
		}
		lifetime.Timer.Tick(deltaTime)
		if !lifetime.Timer.Finished() {
			continue
		}
		if s.removeBullet(id) {
			expired++
		}
	}
	return expired
}

func (s *BulletSystem) removeBullet(id types.EntityID) bool {
	if !s.ecs.RemoveBullet(id) {
		return false
	}
	s.logger.Debug("bullet expired", "bullet", id)
	s.eventDispatcher.Dispatch(event.Event{Type: event.BulletExpired, Data: event.DespawnData{ID: id}})
	return true
}
