// internal/state/menu_state.go
package state

import (
	"go-tower-defense-3d/internal/app"
	"go-tower-defense-3d/internal/config"
	"go-tower-defense-3d/internal/defs"
	"go-tower-defense-3d/internal/ui"
	"os"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// SimulationFactory собирает симуляцию для выбранной сцены.
type SimulationFactory func(scene *defs.SceneDefinition) (*app.Simulation, error)

// MenuState — выбор сцены перед запуском
type MenuState struct {
	sm         *StateMachine
	font       rl.Font
	camera     *rl.Camera3D
	scenes     []*defs.SceneDefinition
	newSim     SimulationFactory
	logger     *log.Logger
	buttons    []*ui.Button
	exitButton *ui.Button
	lastErr    string
}

func NewMenuState(sm *StateMachine, font rl.Font, camera *rl.Camera3D, scenes []*defs.SceneDefinition, newSim SimulationFactory, logger *log.Logger) *MenuState {
	btnWidth := float32(260)
	btnHeight := float32(50)
	spacing := float32(20)
	startX := (float32(config.ScreenWidth) - btnWidth) / 2
	y := float32(config.ScreenHeight/2) - btnHeight

	s := &MenuState{sm: sm, font: font, camera: camera, scenes: scenes, newSim: newSim, logger: logger}
	for _, scene := range scenes {
		s.buttons = append(s.buttons, ui.NewButton(rl.NewRectangle(startX, y, btnWidth, btnHeight), scene.Name, font))
		y += btnHeight + spacing
	}
	s.exitButton = ui.NewButton(rl.NewRectangle(startX, y, btnWidth, btnHeight), "Exit", font)
	return s
}

func (s *MenuState) Enter() {}

func (s *MenuState) Update(deltaTime float64) {
	mousePos := rl.GetMousePosition()
	for i, button := range s.buttons {
		if button.IsClicked(mousePos) {
			s.start(s.scenes[i])
			return
		}
	}
	if s.exitButton.IsClicked(mousePos) {
		os.Exit(0)
	}
}

func (s *MenuState) start(scene *defs.SceneDefinition) {
	sim, err := s.newSim(scene)
	if err != nil {
		s.logger.Error("could not start scene", "scene", scene.Name, "err", err)
		s.lastErr = err.Error()
		return
	}
	s.sm.SetState(NewGameState(s.sm, sim, s.camera, s.font))
}

func (s *MenuState) Draw() {}

func (s *MenuState) DrawUI() {
	title := config.WindowTitle
	titleSize := float32(60)
	titleWidth := rl.MeasureTextEx(s.font, title, titleSize, 1).X
	rl.DrawTextEx(s.font, title, rl.NewVector2((float32(config.ScreenWidth)-titleWidth)/2, float32(config.ScreenHeight/2-150)), titleSize, 1, rl.White)

	mousePos := rl.GetMousePosition()
	for _, button := range s.buttons {
		button.Draw(mousePos)
	}
	s.exitButton.Draw(mousePos)

	if s.lastErr != "" {
		rl.DrawTextEx(s.font, s.lastErr, rl.NewVector2(20, config.ScreenHeight-40), config.FontSize, 1, rl.Red)
	}
}

func (s *MenuState) Exit() {}
