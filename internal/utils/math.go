// internal/utils/math.go
package utils

import (
	"go-tower-defense-3d/pkg/geom"
	"math"
)

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to float32, t float32) float32 {
	return from + (to-from)*t
}

// LerpAngle интерполирует угол по кратчайшей дуге.
func LerpAngle(from, to float32, t float32) float32 {
	diff := NormalizeAngle(to - from)
	return NormalizeAngle(from + diff*t)
}

// NormalizeAngle приводит угол к диапазону [-π, π]
func NormalizeAngle(angle float32) float32 {
	return float32(math.Remainder(float64(angle), 2*math.Pi))
}

// Yaw — угол поворота вокруг оси Y, при котором ось +Z смотрит вдоль dir.
// Для вертикального направления возвращает 0.
func Yaw(dir geom.Vec3) float32 {
	if dir.X == 0 && dir.Z == 0 {
		return 0
	}
	return float32(math.Atan2(dir.X, dir.Z))
}
