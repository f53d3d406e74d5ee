// internal/state/game_state.go
package state

import (
	"fmt"
	"go-tower-defense-3d/internal/app"
	"go-tower-defense-3d/internal/config"
	"go-tower-defense-3d/internal/types"
	"go-tower-defense-3d/internal/ui"
	"go-tower-defense-3d/internal/utils"
	"go-tower-defense-3d/pkg/geom"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Скорость доворота модели башни к направлению выстрела, доля за секунду
const towerTurnRate = 8.0

// GameState — состояние игры: крутит симуляцию и рисует её в 3D
type GameState struct {
	sm          *StateMachine
	sim         *app.Simulation
	camera      *rl.Camera3D
	font        rl.Font
	speedButton *ui.SpeedButton
	pauseButton *ui.PauseButton
	healthBar   *ui.HealthBar

	towerYaw   map[types.EntityID]float32
	barrel     rl.Model
	hasBarrel  bool
	lastStats  app.TickStats
	totalHits  int
	totalKills int
}

func NewGameState(sm *StateMachine, sim *app.Simulation, camera *rl.Camera3D, font rl.Font) *GameState {
	return &GameState{
		sm:     sm,
		sim:    sim,
		camera: camera,
		font:   font,
		speedButton: ui.NewSpeedButton(
			float32(config.ScreenWidth-60), 40, config.SpeedButtonSize,
			config.SpeedMultipliers, config.SpeedButtonColors,
		),
		pauseButton: ui.NewPauseButton(
			float32(config.ScreenWidth-120), 40, config.PauseButtonSize,
			config.PauseColor, config.PlayColor,
		),
		healthBar: ui.NewHealthBar(
			config.HealthBarWidth, config.HealthBarHeight, config.HealthBarOffsetY,
			config.HealthFillColor, config.HealthBackColor,
		),
		towerYaw: make(map[types.EntityID]float32),
	}
}

// Simulation возвращает симуляцию, которой управляет состояние.
func (g *GameState) Simulation() *app.Simulation {
	return g.sim
}

func (g *GameState) Enter() {
	g.pauseButton.SetPaused(false)
	if !g.hasBarrel {
		g.barrel = rl.LoadModelFromMesh(rl.GenMeshCube(0.12, 0.12, 0.5))
		g.hasBarrel = true
	}
}

func (g *GameState) Update(deltaTime float64) {
	if rl.IsKeyPressed(rl.KeyP) || rl.IsKeyPressed(rl.KeyF9) {
		g.pause()
		return
	}
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		mouse := rl.GetMousePosition()
		switch {
		case g.pauseButton.IsClicked(mouse):
			g.pause()
			return
		case g.speedButton.IsClicked(mouse):
			g.speedButton.Toggle(time.Now(), config.ClickCooldown*time.Millisecond)
		}
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		g.speedButton.Toggle(time.Now(), 0)
	}

	g.lastStats = g.sim.Tick(deltaTime * g.speedButton.Multiplier())
	g.totalHits += g.lastStats.Hits
	g.totalKills += g.lastStats.Destroyed

	t := float32(deltaTime * towerTurnRate)
	if t > 1 {
		t = 1
	}
	for _, tower := range g.sim.Towers() {
		yaw, ok := g.towerYaw[tower.ID]
		target := utils.Yaw(tower.Facing)
		if !ok {
			g.towerYaw[tower.ID] = target
			continue
		}
		g.towerYaw[tower.ID] = utils.LerpAngle(yaw, target, t)
	}
}

func (g *GameState) pause() {
	g.pauseButton.SetPaused(true)
	g.sm.SetState(NewPauseState(g.sm, g, g.font))
}

func vec(v geom.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}

// Draw рисует башни, цели и снаряды. Вызывается между BeginMode3D и EndMode3D.
func (g *GameState) Draw() {
	rl.DrawPlane(rl.NewVector3(0, 0, 0), rl.NewVector2(config.GroundSize, config.GroundSize), ui.ToRL(config.GroundColor))
	rl.DrawGrid(int32(config.GroundSize), 1)

	towerColor := ui.ToRL(config.TowerColor)
	rangeColor := ui.ToRL(config.RangeColor)
	for _, tower := range g.sim.Towers() {
		base := vec(tower.Position)
		rl.DrawCylinder(base, config.TowerModelRadius, config.TowerModelRadius, config.TowerModelHeight, 12, towerColor)
		rl.DrawCylinderWires(base, config.TowerModelRadius, config.TowerModelRadius, config.TowerModelHeight, 12, ui.ToRL(config.TowerStrokeColor))
		rl.DrawCircle3D(vec(tower.Muzzle), float32(tower.DetectionRange), rl.NewVector3(1, 0, 0), 90, rangeColor)
		rl.DrawLine3D(base, vec(tower.Muzzle), towerColor)
		if g.hasBarrel {
			angle := g.towerYaw[tower.ID] * rl.Rad2deg
			rl.DrawModelEx(g.barrel, vec(tower.Muzzle), rl.NewVector3(0, 1, 0), angle, rl.NewVector3(1, 1, 1), towerColor)
		}
	}

	targetColor := ui.ToRL(config.TargetColor)
	for _, target := range g.sim.Targets() {
		size := target.HalfExtents.Scale(2)
		rl.DrawCube(vec(target.Position), float32(size.X), float32(size.Y), float32(size.Z), targetColor)
		rl.DrawCubeWires(vec(target.Position), float32(size.X), float32(size.Y), float32(size.Z), rl.Black)
	}

	bulletColor := ui.ToRL(config.BulletColor)
	for _, bullet := range g.sim.Bullets() {
		rl.DrawSphere(vec(bullet.Position), float32(bullet.HalfExtents.X), bulletColor)
	}
}

// DrawUI рисует полоски здоровья, кнопки и счётчики.
func (g *GameState) DrawUI() {
	for _, target := range g.sim.Targets() {
		top := target.Position.Add(geom.V(0, target.HalfExtents.Y, 0))
		g.healthBar.Draw(rl.GetWorldToScreen(vec(top), *g.camera), target.Health, target.MaxHealth)
	}

	g.speedButton.Draw()
	g.pauseButton.Draw()

	hud := fmt.Sprintf("t=%.1fs  x%.0f  targets %d  bullets %d  hits %d  destroyed %d",
		g.sim.Time(), g.speedButton.Multiplier(), len(g.sim.Targets()), len(g.sim.Bullets()), g.totalHits, g.totalKills)
	rl.DrawTextEx(g.font, hud, rl.NewVector2(10, config.ScreenHeight-30), config.FontSize, 1, ui.ToRL(config.TextLightColor))
}

func (g *GameState) Exit() {}

// Cleanup освобождает ресурсы raylib. Вызывается при закрытии окна.
func (g *GameState) Cleanup() {
	if g.hasBarrel {
		rl.UnloadModel(g.barrel)
		g.hasBarrel = false
	}
}
