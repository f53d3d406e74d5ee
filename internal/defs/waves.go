// internal/defs/waves.go
package defs

import (
	"fmt"
	"go-tower-defense-3d/internal/config"
	"go-tower-defense-3d/pkg/geom"
)

// SpawnerDefinition описывает периодическое появление целей (волну).
type SpawnerDefinition struct {
	Origin    Vector  `json:"origin"`
	Jitter    Vector  `json:"jitter"`
	Interval  float64 `json:"interval"`
	SpeedMin  float64 `json:"speed_min"`
	SpeedMax  float64 `json:"speed_max"`
	HealthMin int     `json:"health_min"`
	HealthMax int     `json:"health_max"`
	BoxSize   Vector  `json:"box_size"`
	Heading   *Vector `json:"heading,omitempty"`
	MaxAlive  int     `json:"max_alive"`
	Limit     int     `json:"limit"`
}

// Validate проверяет параметры спавнера до запуска симуляции.
func (d *SpawnerDefinition) Validate() error {
	switch {
	case d.Interval <= 0:
		return fmt.Errorf("spawner interval %v must be positive", d.Interval)
	case d.SpeedMin < 0 || d.SpeedMax < d.SpeedMin:
		return fmt.Errorf("spawner speed range [%v, %v] is invalid", d.SpeedMin, d.SpeedMax)
	case d.HealthMin <= 0 || d.HealthMax < d.HealthMin:
		return fmt.Errorf("spawner health range [%d, %d] is invalid", d.HealthMin, d.HealthMax)
	case d.BoxSize[0] <= 0 || d.BoxSize[1] <= 0 || d.BoxSize[2] <= 0:
		return fmt.Errorf("spawner box size %v must be positive", d.BoxSize)
	case d.MaxAlive < 0 || d.Limit < 0:
		return fmt.Errorf("spawner limits must not be negative")
	}
	if _, ok := d.HeadingVec().Normalize(); !ok {
		return fmt.Errorf("spawner heading %v has no direction", *d.Heading)
	}
	return nil
}

// HeadingVec возвращает направление движения или направление по умолчанию.
func (d *SpawnerDefinition) HeadingVec() geom.Vec3 {
	if d.Heading == nil {
		return config.DefaultTargetHeading
	}
	return d.Heading.Vec()
}
