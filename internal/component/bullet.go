// internal/component/bullet.go
package component

import (
	"go-tower-defense-3d/internal/types"
	"go-tower-defense-3d/pkg/geom"
)

// Bullet представляет летящий снаряд. Направление фиксируется при выстреле.
type Bullet struct {
	Direction geom.Vec3
	Speed     float64
	Source    types.EntityID // Башня, выпустившая снаряд
}

// Velocity — скорость тела снаряда
func (b *Bullet) Velocity() geom.Vec3 {
	return b.Direction.Scale(b.Speed)
}

// Lifetime удаляет снаряд по истечении одноразового таймера.
type Lifetime struct {
	Timer Timer
}
