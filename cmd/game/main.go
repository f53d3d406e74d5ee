// cmd/game/main.go
package main

import (
	"flag"
	"go-tower-defense-3d/internal/app"
	"go-tower-defense-3d/internal/config"
	"go-tower-defense-3d/internal/defs"
	"go-tower-defense-3d/internal/state"
	"go-tower-defense-3d/internal/ui"
	"go-tower-defense-3d/pkg/geom"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Vector3Lerp выполняет линейную интерполяцию между двумя векторами
func Vector3Lerp(v1, v2 rl.Vector3, t float32) rl.Vector3 {
	return rl.Vector3Add(v1, rl.Vector3Scale(rl.Vector3Subtract(v2, v1), t))
}

func main() {
	devMode := flag.Bool("dev", false, "Start the first scene directly, skipping the menu")
	sceneDir := flag.String("scenes", "assets/scenes", "Directory with scene files")
	verbose := flag.Bool("v", false, "Log every shot and hit")
	pprofAddr := flag.String("pprof", "localhost:6060", "pprof listen address, empty to disable")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "game"})
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	scenes, err := defs.LoadScenes(*sceneDir)
	if err != nil {
		logger.Warn("could not load scenes, using the built-in one", "dir", *sceneDir, "err", err)
	}
	if len(scenes) == 0 {
		scenes = []*defs.SceneDefinition{defs.DefaultScene()}
	}

	if *pprofAddr != "" {
		go func() {
			logger.Error("pprof stopped", "err", http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, config.WindowTitle)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	rl.SetExitKey(rl.KeyEscape)

	font := rl.GetFontDefault()

	camera := rl.Camera3D{}
	camera.Up = rl.NewVector3(0, 1, 0)
	camera.Projection = rl.CameraPerspective
	camera.Fovy = config.CameraFovy

	newSim := func(scene *defs.SceneDefinition) (*app.Simulation, error) {
		cfg := app.DefaultConfig()
		cfg.Logger = logger
		cfg.Seed = time.Now().UnixNano()
		return app.NewSimulationFromScene(cfg, scene)
	}

	sm := state.NewStateMachine()
	if *devMode {
		sim, err := newSim(scenes[0])
		if err != nil {
			logger.Fatal("could not start scene", "scene", scenes[0].Name, "err", err)
		}
		sm.SetState(state.NewGameState(sm, sim, &camera, font))
	} else {
		sm.SetState(state.NewMenuState(sm, font, &camera, scenes, newSim, logger))
	}

	isoPos := vec(config.IsoCameraPosition)
	topDownPos := vec(config.TopDownCameraPosition)
	target := vec(config.CameraTarget)
	cameraAngleT := float32(0.3)
	pan := rl.Vector3Zero()

	lastUpdateTime := time.Now()
	for !rl.WindowShouldClose() {
		now := time.Now()
		deltaTime := now.Sub(lastUpdateTime).Seconds()
		if deltaTime > config.MaxDeltaTime {
			deltaTime = config.MaxDeltaTime
		}
		lastUpdateTime = now

		if _, isGame := sm.Current().(*state.GameState); isGame {
			if rl.IsKeyDown(rl.KeyQ) {
				isoPos = rl.Vector3RotateByAxisAngle(isoPos, camera.Up, -config.CameraRotationSpeed)
			}
			if rl.IsKeyDown(rl.KeyE) {
				isoPos = rl.Vector3RotateByAxisAngle(isoPos, camera.Up, config.CameraRotationSpeed)
			}
			if wheel := rl.GetMouseWheelMove(); wheel != 0 {
				cameraAngleT = min(max(cameraAngleT+wheel*config.CameraZoomStep, 0), 0.99)
			}
			pan = rl.Vector3Add(pan, panInput(isoPos, float32(deltaTime)))
		}
		camera.Position = rl.Vector3Add(Vector3Lerp(isoPos, topDownPos, cameraAngleT), pan)
		camera.Target = rl.Vector3Add(target, pan)

		sm.Update(deltaTime)

		rl.BeginDrawing()
		rl.ClearBackground(ui.ToRL(config.BackgroundColor))
		rl.BeginMode3D(camera)
		sm.Draw()
		rl.EndMode3D()
		sm.DrawUI()
		rl.DrawFPS(10, 10)
		rl.EndDrawing()
	}

	if cleanable, ok := sm.Current().(interface{ Cleanup() }); ok {
		cleanable.Cleanup()
	}
}

// panInput двигает камеру по плоскости земли: W/S вдоль взгляда, A/D вбок.
func panInput(isoPos rl.Vector3, dt float32) rl.Vector3 {
	forward := rl.Vector3Normalize(rl.NewVector3(-isoPos.X, 0, -isoPos.Z))
	right := rl.NewVector3(-forward.Z, 0, forward.X)
	move := rl.Vector3Zero()
	if rl.IsKeyDown(rl.KeyW) {
		move = rl.Vector3Add(move, forward)
	}
	if rl.IsKeyDown(rl.KeyS) {
		move = rl.Vector3Subtract(move, forward)
	}
	if rl.IsKeyDown(rl.KeyD) {
		move = rl.Vector3Add(move, right)
	}
	if rl.IsKeyDown(rl.KeyA) {
		move = rl.Vector3Subtract(move, right)
	}
	return rl.Vector3Scale(move, config.CameraPanSpeed*dt)
}

func vec(v geom.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}
