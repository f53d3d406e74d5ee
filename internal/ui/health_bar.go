// internal/ui/health_bar.go
package ui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const healthSegmentGap = 1.0

// HealthBar рисует полоску здоровья над целью в экранных координатах.
// Каждая единица здоровья — отдельный сегмент.
type HealthBar struct {
	Width, Height float32
	OffsetY       float32
	FillColor     color.Color
	BackColor     color.Color
}

func NewHealthBar(width, height, offsetY float32, fill, back color.Color) *HealthBar {
	return &HealthBar{Width: width, Height: height, OffsetY: offsetY, FillColor: fill, BackColor: back}
}

// Draw рисует полоску с центром над точкой anchor.
func (h *HealthBar) Draw(anchor rl.Vector2, health, maxHealth int) {
	if maxHealth <= 0 {
		return
	}
	x := anchor.X - h.Width/2
	y := anchor.Y - h.OffsetY - h.Height
	rl.DrawRectangleV(rl.NewVector2(x-1, y-1), rl.NewVector2(h.Width+2, h.Height+2), ToRL(h.BackColor))

	segment := (h.Width - healthSegmentGap*float32(maxHealth-1)) / float32(maxHealth)
	if segment < 1 {
		// Сегменты не помещаются, рисуем сплошную полосу
		fill := h.Width * float32(health) / float32(maxHealth)
		rl.DrawRectangleV(rl.NewVector2(x, y), rl.NewVector2(fill, h.Height), ToRL(h.FillColor))
		return
	}
	fill := ToRL(h.FillColor)
	for i := 0; i < health && i < maxHealth; i++ {
		sx := x + float32(i)*(segment+healthSegmentGap)
		rl.DrawRectangleV(rl.NewVector2(sx, y), rl.NewVector2(segment, h.Height), fill)
	}
}
