// pkg/geom/vec3.go
package geom

import "math"

// Vec3 — трёхмерный вектор (мировые координаты, Y направлен вверх)
type Vec3 struct {
	X, Y, Z float64
}

// Zero — нулевой вектор
var Zero = Vec3{}

// V — короткий конструктор
func V(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// LenSq возвращает квадрат длины вектора
func (v Vec3) LenSq() float64 {
	return v.Dot(v)
}

func (v Vec3) Len() float64 {
	return math.Sqrt(v.LenSq())
}

// Distance — евклидово расстояние между двумя точками
func Distance(a, b Vec3) float64 {
	return a.Sub(b).Len()
}

// Normalize возвращает единичный вектор и false, если длина вектора нулевая
// (нормализация нулевого вектора не определена).
func (v Vec3) Normalize() (Vec3, bool) {
	l := v.Len()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return Zero, false
	}
	inv := 1.0 / l
	return Vec3{v.X * inv, v.Y * inv, v.Z * inv}, true
}

// IsFinite сообщает, что ни одна компонента не NaN и не бесконечность.
func (v Vec3) IsFinite() bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Axis возвращает компоненту по индексу оси (0 — X, 1 — Y, 2 — Z)
func (v Vec3) Axis(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}
