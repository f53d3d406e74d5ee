// internal/system/utils.go
package system

import (
	"go-tower-defense-3d/internal/entity"
	"go-tower-defense-3d/internal/types"

	"github.com/charmbracelet/log"
)

// ApplyDamage наносит урон цели и возвращает оставшееся здоровье.
// Здоровье может уйти ниже нуля, каждое попадание учитывается. Для сущностей без здоровья — no-op.
func ApplyDamage(ecs *entity.ECS, entityID types.EntityID, damage int) (int, bool) {
	health, hasHealth := ecs.Healths[entityID]
	if !hasHealth {
		return 0, false
	}
	if damage < 0 {
		damage = 0
	}

	health.Value -= damage
	return health.Value, true
}

func orDefault(logger *log.Logger) *log.Logger {
	if logger == nil {
		return log.Default()
	}
	return logger
}
