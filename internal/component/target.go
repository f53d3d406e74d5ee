// internal/component/target.go
package component

import "go-tower-defense-3d/pkg/geom"

// Target — враждебная цель. Двигается по прямой с постоянной скоростью,
// позицию хранит её физическое тело.
type Target struct {
	Speed   float64
	Heading geom.Vec3 // единичный вектор
}
