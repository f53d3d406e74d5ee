// internal/state/pause_state.go
package state

import (
	"go-tower-defense-3d/internal/config"
	"go-tower-defense-3d/internal/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает симуляцию и рисует предыдущее состояние под затемнением.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
	font          rl.Font
}

func NewPauseState(sm *StateMachine, prevState *GameState, font rl.Font) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		font:          font,
	}
}

func (s *PauseState) Enter() {
	s.previousState.Simulation().Logger().Debug("paused", "time", s.previousState.Simulation().Time())
}

func (s *PauseState) Update(deltaTime float64) {
	unpause := rl.IsKeyPressed(rl.KeyP) || rl.IsKeyPressed(rl.KeyF9) || rl.IsKeyPressed(rl.KeySpace)
	if !unpause && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		unpause = s.previousState.pauseButton.IsClicked(rl.GetMousePosition())
	}
	if unpause {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw() {
	s.previousState.Draw()
}

// DrawUI рисует UI для состояния паузы
func (s *PauseState) DrawUI() {
	s.previousState.DrawUI()

	rl.DrawRectangle(0, 0, int32(config.ScreenWidth), int32(config.ScreenHeight), ui.ToRL(config.PauseShade))

	pauseText := "PAUSED"
	fontSize := float32(40)
	size := rl.MeasureTextEx(s.font, pauseText, fontSize, 1)
	rl.DrawTextEx(s.font, pauseText, rl.NewVector2((float32(config.ScreenWidth)-size.X)/2, float32(config.ScreenHeight)/2-20), fontSize, 1, rl.White)
}

func (s *PauseState) Exit() {}

// Cleanup передаёт очистку игровому состоянию, паузе освобождать нечего.
func (s *PauseState) Cleanup() {
	s.previousState.Cleanup()
}
