// internal/defs/targets.go
package defs

import (
	"go-tower-defense-3d/internal/config"
	"go-tower-defense-3d/pkg/geom"
)

// TargetDefinition — статические данные цели, размещённой в сцене.
type TargetDefinition struct {
	Name     string  `json:"name"`
	Position Vector  `json:"position"`
	Speed    float64 `json:"speed"`
	Health   int     `json:"health"`
	BoxSize  Vector  `json:"box_size"`          // полный размер, не полуразмер
	Heading  *Vector `json:"heading,omitempty"` // по умолчанию config.DefaultTargetHeading
}

// HeadingVec возвращает направление движения или направление по умолчанию.
func (d *TargetDefinition) HeadingVec() geom.Vec3 {
	if d.Heading == nil {
		return config.DefaultTargetHeading
	}
	return d.Heading.Vec()
}
