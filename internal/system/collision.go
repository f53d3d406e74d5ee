// internal/system/collision.go
package system

import (
	"go-tower-defense-3d/internal/config"
	"go-tower-defense-3d/internal/entity"
	"go-tower-defense-3d/internal/event"
	"go-tower-defense-3d/internal/physics"
	"go-tower-defense-3d/internal/types"
	"iter"
	"slices"

	"github.com/charmbracelet/log"
)

// CollisionSystem превращает пересечения снаряд-цель в урон
type CollisionSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	logger          *log.Logger
}

func NewCollisionSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, logger *log.Logger) *CollisionSystem {
	return &CollisionSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		logger:          orDefault(logger),
	}
}

// Update разбирает пересечения текущего тика. Учитываются только пары
// снаряд-цель. Цели обходятся внешним циклом, снаряды внутренним (оба
// в порядке создания); снаряд удаляется при первом попадании, поэтому
// за тик он повреждает не более одной цели. Возвращает число попаданий.
func (s *CollisionSystem) Update(overlaps iter.Seq[physics.Overlap]) int {
	contacts := make(map[types.EntityID][]types.EntityID)
	for o := range overlaps {
		switch {
		case s.ecs.IsTarget(o.A) && s.ecs.IsBullet(o.B):
			contacts[o.A] = append(contacts[o.A], o.B)
		case s.ecs.IsBullet(o.A) && s.ecs.IsTarget(o.B):
			contacts[o.B] = append(contacts[o.B], o.A)
		}
	}
	if len(contacts) == 0 {
		return 0
	}

	hits := 0
	for _, targetID := range s.ecs.TargetIDs() {
		bullets := contacts[targetID]
		// id выдаются монотонно, сортировка по id = порядок создания
		slices.Sort(bullets)
		for _, bulletID := range bullets {
			if !s.ecs.RemoveBullet(bulletID) {
				// уже израсходован другой целью в этом тике
				continue
			}
			health, _ := ApplyDamage(s.ecs, targetID, config.BulletDamage)
			hits++
			s.logger.Debug("target hit", "target", targetID, "bullet", bulletID, "health", health)
			s.eventDispatcher.Dispatch(event.Event{Type: event.TargetHit, Data: event.HitData{
				Bullet: bulletID,
				Target: targetID,
				Health: health,
			}})
		}
	}
	return hits
}
