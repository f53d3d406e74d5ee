// internal/defs/types.go
package defs

import (
	"go-tower-defense-3d/pkg/geom"
)

// Vector — вектор в JSON в виде массива [x, y, z].
type Vector [3]float64

// Vec переводит в векторный тип симуляции.
func (v Vector) Vec() geom.Vec3 {
	return geom.V(v[0], v[1], v[2])
}

// SceneDefinition — всё, что нужно для заполнения симуляции.
type SceneDefinition struct {
	Name    string             `json:"name"`
	Seed    int64              `json:"seed,omitempty"` // 0 — сид от текущего времени
	Towers  []TowerDefinition  `json:"towers"`
	Targets []TargetDefinition `json:"targets"`
	Spawner *SpawnerDefinition `json:"spawner,omitempty"`
}
