// internal/component/tower.go
package component

import "go-tower-defense-3d/pkg/geom"

// Tower — стационарная башня. Создаётся при загрузке сцены и не уничтожается.
type Tower struct {
	Position       geom.Vec3
	DetectionRange float64   // Радиус обнаружения целей (от дула)
	FireTimer      Timer     // Повторяющийся таймер стрельбы
	MuzzleOffset   geom.Vec3 // Смещение дула, прибавляется в мировых осях без поворота
	Facing         geom.Vec3 // Направление последнего выстрела, для отрисовки
}

// Muzzle возвращает мировую позицию, из которой вылетают снаряды.
func (t *Tower) Muzzle() geom.Vec3 {
	return t.Position.Add(t.MuzzleOffset)
}
