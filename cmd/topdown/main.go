// cmd/topdown/main.go
package main

import (
	"flag"
	"go-tower-defense-3d/internal/app"
	"go-tower-defense-3d/internal/config"
	"go-tower-defense-3d/internal/defs"
	"go-tower-defense-3d/pkg/render"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// TopDownGame — вид сверху на симуляцию на ebiten
type TopDownGame struct {
	sim            *app.Simulation
	renderer       *render.TopDownRenderer
	lastUpdateTime time.Time
	speedIndex     int
	paused         bool
}

func (g *TopDownGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(g.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	g.lastUpdateTime = now

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.speedIndex = (g.speedIndex + 1) % len(config.SpeedMultipliers)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if !g.paused {
		g.sim.Tick(deltaTime * config.SpeedMultipliers[g.speedIndex])
	}
	return nil
}

func (g *TopDownGame) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.sim)
	g.renderer.DrawHUD(screen, g.sim, config.SpeedMultipliers[g.speedIndex], g.paused)
	ebitenutil.DebugPrintAt(screen, "Space: pause  Tab: speed  Esc: quit", 10, config.ScreenHeight-20)
}

func (g *TopDownGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	scenePath := flag.String("scene", config.DefaultScenePath, "Scene file, empty for the built-in scene")
	verbose := flag.Bool("v", false, "Log every shot and hit")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "topdown"})
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	scene := defs.DefaultScene()
	if *scenePath != "" {
		loaded, err := defs.LoadScene(*scenePath)
		if err != nil {
			logger.Warn("falling back to the built-in scene", "err", err)
		} else {
			scene = loaded
		}
	}

	cfg := app.DefaultConfig()
	cfg.Logger = logger
	cfg.Seed = time.Now().UnixNano()
	sim, err := app.NewSimulationFromScene(cfg, scene)
	if err != nil {
		logger.Fatal("could not build scene", "scene", scene.Name, "err", err)
	}

	renderer := render.NewTopDownRenderer(config.ScreenWidth, config.ScreenHeight,
		render.Sizes{
			Scale:           config.WorldScale,
			TowerRadius:     config.TowerRadius,
			BulletRadius:    config.BulletRadius,
			HealthBarWidth:  config.HealthBarWidth,
			HealthBarHeight: config.HealthBarHeight,
			HealthBarOffset: config.HealthBarOffsetY,
		},
		render.Palette{
			Background: config.BackgroundColor,
			Ground:     config.GroundColor,
			Grid:       config.GridColor,
			Tower:      config.TowerColor,
			Stroke:     config.TowerStrokeColor,
			Range:      config.RangeColor,
			Target:     config.TargetColor,
			Bullet:     config.BulletColor,
			HealthBack: config.HealthBackColor,
			HealthFill: config.HealthFillColor,
			Text:       config.TextLightColor,
		},
	)

	game := &TopDownGame{
		sim:            sim,
		renderer:       renderer,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle + " (top-down)")
	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("game stopped", "err", err)
	}
}
