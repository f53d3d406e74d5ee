// internal/component/timer.go
package component

import "math"

// Timer — обратный отсчёт с фиксированным периодом.
// Повторяющийся таймер после срабатывания перезаряжается с учётом перелёта,
// одноразовый останавливается на нуле.
type Timer struct {
	Period    float64
	Remaining float64
	Repeating bool

	finished     bool
	justFinished bool
}

func NewRepeatingTimer(period float64) Timer {
	return Timer{Period: period, Remaining: period, Repeating: true}
}

func NewOneShotTimer(duration float64) Timer {
	return Timer{Period: duration, Remaining: duration}
}

// Tick продвигает таймер на dt секунд. За один вызов таймер срабатывает
// не более одного раза, даже если dt больше периода.
func (t *Timer) Tick(dt float64) {
	t.justFinished = false
	if t.finished && !t.Repeating {
		return
	}
	if dt <= 0 {
		return
	}

	t.Remaining -= dt
	if t.Remaining > 0 {
		return
	}

	t.justFinished = true
	if !t.Repeating {
		t.Remaining = 0
		t.finished = true
		return
	}
	if t.Period <= 0 {
		// Вырожденный период: срабатывает каждый тик
		t.Remaining = 0
		return
	}
	overshoot := math.Mod(-t.Remaining, t.Period)
	t.Remaining = t.Period - overshoot
}

// JustFinished — сработал ли таймер на последнем Tick
func (t *Timer) JustFinished() bool {
	return t.justFinished
}

// Finished — true, когда одноразовый таймер истёк. Повторяющиеся таймеры не завершаются.
func (t *Timer) Finished() bool {
	return t.finished
}
