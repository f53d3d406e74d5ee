// internal/event/types.go
package event

import (
	"go-tower-defense-3d/internal/types"
	"go-tower-defense-3d/pkg/geom"
)

const (
	TowerPlaced     EventType = "TowerPlaced"     // Башня установлена
	TargetSpawned   EventType = "TargetSpawned"   // Цель появилась
	BulletFired     EventType = "BulletFired"     // Башня выстрелила
	TargetHit       EventType = "TargetHit"       // Снаряд попал в цель
	BulletExpired   EventType = "BulletExpired"   // Время жизни снаряда истекло
	TargetDestroyed EventType = "TargetDestroyed" // Цель уничтожена
)

// AllTypes — все события, которые порождает симуляция.
var AllTypes = []EventType{TowerPlaced, TargetSpawned, BulletFired, TargetHit, BulletExpired, TargetDestroyed}

// SpawnData — данные для TowerPlaced и TargetSpawned
type SpawnData struct {
	ID       types.EntityID
	Position geom.Vec3
}

// FireData — данные для BulletFired
type FireData struct {
	Tower     types.EntityID
	Bullet    types.EntityID
	Target    types.EntityID
	Muzzle    geom.Vec3
	Direction geom.Vec3
}

// HitData — данные для TargetHit
type HitData struct {
	Bullet types.EntityID
	Target types.EntityID
	Health int // Здоровье цели после попадания
}

// DespawnData — данные для BulletExpired и TargetDestroyed
type DespawnData struct {
	ID types.EntityID
}
