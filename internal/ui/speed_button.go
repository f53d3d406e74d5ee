// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// SpeedButton переключает множитель скорости симуляции по кругу.
type SpeedButton struct {
	X, Y           float32
	Size           float32
	LastToggleTime time.Time
	Multipliers    []float64
	StateColors    []color.Color
	CurrentState   int
}

func NewSpeedButton(x, y, size float32, multipliers []float64, stateColors []color.Color) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		Multipliers: multipliers,
		StateColors: stateColors,
	}
}

// Multiplier — текущий множитель скорости
func (b *SpeedButton) Multiplier() float64 {
	if len(b.Multipliers) == 0 {
		return 1
	}
	return b.Multipliers[b.CurrentState]
}

// Toggle переходит к следующему множителю. Повторный клик раньше cooldown игнорируется.
func (b *SpeedButton) Toggle(now time.Time, cooldown time.Duration) bool {
	if len(b.Multipliers) == 0 || now.Sub(b.LastToggleTime) < cooldown {
		return false
	}
	b.CurrentState = (b.CurrentState + 1) % len(b.Multipliers)
	b.LastToggleTime = now
	return true
}

func (b *SpeedButton) Draw() {
	size := b.Size * pulse(time.Since(b.LastToggleTime).Seconds())
	c := ToRL(b.StateColors[b.CurrentState%len(b.StateColors)])

	// Два треугольника «перемотки»
	height := size * 1.2
	offset := size * 0.8
	for _, dx := range []float32{0, offset} {
		p1 := rl.NewVector2(b.X-size+dx, b.Y-height/2)
		p2 := rl.NewVector2(b.X-size+dx, b.Y+height/2)
		p3 := rl.NewVector2(b.X+dx, b.Y)
		rl.DrawTriangle(p1, p2, p3, c)
		rl.DrawTriangleLines(p1, p2, p3, rl.White)
	}
}

func (b *SpeedButton) IsClicked(mousePos rl.Vector2) bool {
	// Форма сложная, попадание проверяем по кругу
	return rl.CheckCollisionPointCircle(mousePos, rl.NewVector2(b.X, b.Y), b.Size*1.5)
}
