// internal/system/death.go
package system

import (
	"go-tower-defense-3d/internal/entity"
	"go-tower-defense-3d/internal/event"
	"go-tower-defense-3d/internal/types"

	"github.com/charmbracelet/log"
)

// DeathSystem убирает цели с нулевым здоровьем вместе с их телами.
type DeathSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	logger          *log.Logger
}

func NewDeathSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, logger *log.Logger) *DeathSystem {
	return &DeathSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		logger:          orDefault(logger),
	}
}

// Update возвращает id удалённых целей.
func (s *DeathSystem) Update() []types.EntityID {
	var removed []types.EntityID
	for _, id := range s.ecs.TargetIDs() {
		health, ok := s.ecs.Healths[id]
		if !ok || !health.Dead() {
			continue
		}
		if !s.ecs.RemoveTarget(id) {
			continue
		}
		removed = append(removed, id)
		s.logger.Info("target destroyed", "target", id)
		s.eventDispatcher.Dispatch(event.Event{Type: event.TargetDestroyed, Data: event.DespawnData{ID: id}})
	}
	return removed
}
