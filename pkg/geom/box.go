// pkg/geom/box.go
package geom

import "math"

// Box — осевой параллелепипед (AABB), заданный центром и полуразмерами
type Box struct {
	Center      Vec3
	HalfExtents Vec3
}

// Intersects проверяет пересечение двух боксов по всем трём осям.
// Касание граней считается пересечением.
func (b Box) Intersects(o Box) bool {
	for i := 0; i < 3; i++ {
		if math.Abs(b.Center.Axis(i)-o.Center.Axis(i)) > b.HalfExtents.Axis(i)+o.HalfExtents.Axis(i) {
			return false
		}
	}
	return true
}

// SweptIntersects сообщает, касаются ли боксы a и b в какой-либо момент, пока a
// линейно смещается на da, а b на db за один и тот же интервал. Оба бокса
// стартуют из своих центров. При нулевых смещениях совпадает с Intersects.
func SweptIntersects(a Box, da Vec3, b Box, db Vec3) bool {
	// Движение a относительно b: отрезок p0 + t*d, t в [0, 1],
	// против бокса с суммой полуразмеров в начале координат.
	p0 := a.Center.Sub(b.Center)
	d := da.Sub(db)
	h := a.HalfExtents.Add(b.HalfExtents)

	tMin, tMax := 0.0, 1.0
	for i := 0; i < 3; i++ {
		p, dv, hv := p0.Axis(i), d.Axis(i), h.Axis(i)
		if dv == 0 {
			if math.Abs(p) > hv {
				return false
			}
			continue
		}
		t1 := (-hv - p) / dv
		t2 := (hv - p) / dv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tMin {
			tMin = t1
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMin > tMax {
			return false
		}
	}
	return true
}
