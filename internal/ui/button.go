// internal/ui/button.go
package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Button — прямоугольная кнопка с подписью.
type Button struct {
	Rect       rl.Rectangle
	Label      string
	TextColor  rl.Color
	BgColor    rl.Color
	HoverColor rl.Color
	Font       rl.Font
	FontSize   float32
}

func NewButton(rect rl.Rectangle, label string, font rl.Font) *Button {
	return &Button{
		Rect:       rect,
		Label:      label,
		TextColor:  rl.Black,
		BgColor:    rl.LightGray,
		HoverColor: rl.Gray,
		Font:       font,
		FontSize:   20,
	}
}

// Hovered — находится ли курсор над кнопкой
func (b *Button) Hovered(mousePos rl.Vector2) bool {
	return rl.CheckCollisionPointRec(mousePos, b.Rect)
}

// IsClicked — true в кадре, когда левая кнопка мыши нажата над кнопкой.
func (b *Button) IsClicked(mousePos rl.Vector2) bool {
	return b.Hovered(mousePos) && rl.IsMouseButtonPressed(rl.MouseLeftButton)
}

func (b *Button) Draw(mousePos rl.Vector2) {
	bg := b.BgColor
	if b.Hovered(mousePos) {
		bg = b.HoverColor
	}
	rl.DrawRectangleRec(b.Rect, bg)
	rl.DrawRectangleLinesEx(b.Rect, 2, rl.DarkGray)

	size := rl.MeasureTextEx(b.Font, b.Label, b.FontSize, 1)
	pos := rl.NewVector2(b.Rect.X+(b.Rect.Width-size.X)/2, b.Rect.Y+(b.Rect.Height-size.Y)/2)
	rl.DrawTextEx(b.Font, b.Label, pos, b.FontSize, 1, b.TextColor)
}
