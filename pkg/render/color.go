// pkg/render/color.go
package render

import "image/color"

// Palette — цвета вида сверху.
type Palette struct {
	Background color.RGBA
	Ground     color.RGBA
	Grid       color.RGBA
	Tower      color.RGBA
	Stroke     color.RGBA
	Range      color.RGBA
	Target     color.RGBA
	Bullet     color.RGBA
	HealthBack color.RGBA
	HealthFill color.RGBA
	Text       color.RGBA
}

// DarkenColor уменьшает яркость цвета.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// Shade осветляет цвет по высоте: чем выше объект, тем светлее. height в [0, 1].
func Shade(c color.RGBA, height float64) color.RGBA {
	height = min(max(height, 0), 1)
	lift := func(v uint8) uint8 {
		return uint8(float64(v) + (255-float64(v))*0.4*height)
	}
	return color.RGBA{R: lift(c.R), G: lift(c.G), B: lift(c.B), A: c.A}
}
