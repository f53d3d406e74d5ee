// internal/config/config.go
package config

import (
	"go-tower-defense-3d/pkg/geom"
	"image/color"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	WindowTitle  = "Tower Defense"

	MaxDeltaTime = 0.06 // Ограничение шага симуляции при подвисаниях окна

	// Снаряды
	BulletSpeed    = 2.5
	BulletLifetime = 1000.5 // секунды, фактически бесконечно для геймплея
	BulletSize     = 0.2    // полный размер бокса, полуразмер 0.1

	// Урон за одно попадание
	BulletDamage = 1

	// Параллельный поиск пересечений включается начиная с этого числа тел
	ParallelOverlapThreshold = 512
	OverlapWorkers           = 4

	// Top-down вид (ebiten): пикселей на единицу мира
	WorldScale       = 60.0
	TowerRadius      = 12.0
	BulletRadius     = 3.0
	HealthBarWidth   = 30.0
	HealthBarHeight  = 4.0
	HealthBarOffsetY = 14.0

	SpeedButtonSize = 18.0
	PauseButtonSize = 14.0
	ClickCooldown   = 200 // мс между переключениями кнопок

	// 3D вид (raylib)
	CameraFovy          = 45.0
	CameraRotationSpeed = 0.02
	CameraZoomStep      = 0.05
	CameraPanSpeed      = 3.0 // единиц мира в секунду
	GroundSize          = 12.0
	TowerModelRadius    = 0.25
	TowerModelHeight    = 0.8
	FontSize            = 20

	DefaultScenePath = "assets/scenes/default.json"
)

var (
	// Направление снаряда, если цель совпала с дулом
	DefaultBulletDirection = geom.V(0, 0, 1)
	// Направление движения целей по умолчанию
	DefaultTargetHeading = geom.V(1, 0, 0)
	// Начальная ориентация башни до первого выстрела
	DefaultTowerFacing = geom.V(0, 0, 1)

	BulletHalfExtents = geom.V(BulletSize/2, BulletSize/2, BulletSize/2)

	// Камера: изометрия и вид сверху, колесо мыши интерполирует между ними
	IsoCameraPosition     = geom.V(6, 7, 6)
	TopDownCameraPosition = geom.V(0, 12, 0.01)
	CameraTarget          = geom.V(0, 0.5, 1)
)

var (
	BackgroundColor  = color.RGBA{51, 51, 51, 255}
	GroundColor      = color.RGBA{86, 125, 70, 255}
	GridColor        = color.RGBA{70, 70, 70, 255}
	TowerColor       = color.RGBA{200, 200, 210, 255}
	TowerStrokeColor = color.RGBA{255, 255, 255, 255}
	RangeColor       = color.RGBA{255, 255, 255, 40}
	TargetColor      = color.RGBA{220, 40, 40, 255}
	BulletColor      = color.RGBA{247, 171, 171, 255}
	HealthBackColor  = color.RGBA{40, 40, 40, 220}
	HealthFillColor  = color.RGBA{50, 205, 50, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}

	PauseColor = color.RGBA{255, 215, 0, 255}
	PlayColor  = color.RGBA{50, 205, 50, 255}
	PauseShade = color.RGBA{0, 0, 0, 128}

	SpeedMultipliers  = []float64{1, 2, 4}
	SpeedButtonColors = []color.Color{
		color.RGBA{70, 130, 180, 220},  // x1
		color.RGBA{220, 60, 60, 220},   // x2
		color.RGBA{194, 178, 128, 255}, // x4
	}
)
