// internal/state/state.go
package state

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	// Draw рисует 3D-сцену, вызывается внутри BeginMode3D
	Draw()
	// DrawUI рисует 2D-интерфейс поверх сцены
	DrawUI()
	Exit()
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// Current возвращает текущее состояние.
func (sm *StateMachine) Current() State {
	return sm.current
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw() {
	if sm.current != nil {
		sm.current.Draw()
	}
}

// DrawUI отрисовывает интерфейс текущего состояния
func (sm *StateMachine) DrawUI() {
	if sm.current != nil {
		sm.current.DrawUI()
	}
}
