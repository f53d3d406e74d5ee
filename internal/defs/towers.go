// internal/defs/towers.go
package defs

// TowerDefinition — статические данные установленной башни.
type TowerDefinition struct {
	Name           string  `json:"name"`
	Position       Vector  `json:"position"`
	DetectionRange float64 `json:"detection_range"`
	FirePeriod     float64 `json:"fire_period"`   // секунды между выстрелами
	MuzzleOffset   Vector  `json:"muzzle_offset"` // прибавляется к позиции в мировых осях
}
