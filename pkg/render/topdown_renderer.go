// pkg/render/topdown_renderer.go
package render

import (
	"fmt"
	"go-tower-defense-3d/internal/app"
	"go-tower-defense-3d/pkg/geom"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Высота, при которой цвет целей и снарядов максимально осветлён
const shadeHeight = 2.0

// Полуразмер площадки под сценой в единицах мира
const groundHalfSize = 6.0

// Sizes — размеры элементов в пикселях
type Sizes struct {
	Scale           float64 // пикселей на единицу мира
	TowerRadius     float32
	BulletRadius    float32
	HealthBarWidth  float32
	HealthBarHeight float32
	HealthBarOffset float32
}

// TopDownRenderer рисует симуляцию сверху: X вправо, Z вниз, Y передаётся цветом.
type TopDownRenderer struct {
	screenWidth  int
	screenHeight int
	sizes        Sizes
	palette      Palette
	fontFace     font.Face
	mapImage     *ebiten.Image // предрендеренная земля с сеткой
}

func NewTopDownRenderer(screenWidth, screenHeight int, sizes Sizes, palette Palette) *TopDownRenderer {
	r := &TopDownRenderer{
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		sizes:        sizes,
		palette:      palette,
		fontFace:     basicfont.Face7x13,
		mapImage:     ebiten.NewImage(screenWidth, screenHeight),
	}
	r.RenderMapImage()
	return r
}

// Project переводит мировую точку в экранную. Начало координат — центр экрана.
func (r *TopDownRenderer) Project(p geom.Vec3) (float32, float32) {
	x := float64(r.screenWidth)/2 + p.X*r.sizes.Scale
	y := float64(r.screenHeight)/2 + p.Z*r.sizes.Scale
	return float32(x), float32(y)
}

// RenderMapImage рисует задник: фон и сетку с шагом в одну единицу мира.
func (r *TopDownRenderer) RenderMapImage() {
	r.mapImage.Fill(r.palette.Background)
	cx, cy := float32(r.screenWidth)/2, float32(r.screenHeight)/2
	step := float32(r.sizes.Scale)
	half := float32(groundHalfSize) * step
	vector.DrawFilledRect(r.mapImage, cx-half, cy-half, 2*half, 2*half, r.palette.Ground, false)
	if step < 4 {
		return
	}
	for x := cx; x < float32(r.screenWidth); x += step {
		r.gridLine(x, 0, x, float32(r.screenHeight))
		r.gridLine(2*cx-x, 0, 2*cx-x, float32(r.screenHeight))
	}
	for y := cy; y < float32(r.screenHeight); y += step {
		r.gridLine(0, y, float32(r.screenWidth), y)
		r.gridLine(0, 2*cy-y, float32(r.screenWidth), 2*cy-y)
	}
	vector.StrokeLine(r.mapImage, cx-6, cy, cx+6, cy, 2, r.palette.Stroke, true)
	vector.StrokeLine(r.mapImage, cx, cy-6, cx, cy+6, 2, r.palette.Stroke, true)
}

func (r *TopDownRenderer) gridLine(x0, y0, x1, y1 float32) {
	vector.StrokeLine(r.mapImage, x0, y0, x1, y1, 1, r.palette.Grid, false)
}

// Draw рисует задник, башни с радиусом обнаружения, цели и снаряды.
func (r *TopDownRenderer) Draw(screen *ebiten.Image, sim *app.Simulation) {
	screen.DrawImage(r.mapImage, nil)

	for _, tower := range sim.Towers() {
		x, y := r.Project(tower.Position)
		mx, my := r.Project(tower.Muzzle)
		radius := float32(tower.DetectionRange * r.sizes.Scale)
		vector.DrawFilledCircle(screen, mx, my, radius, r.palette.Range, true)
		vector.StrokeCircle(screen, mx, my, radius, 1, r.palette.Stroke, true)
		vector.DrawFilledCircle(screen, x, y, r.sizes.TowerRadius+2, r.palette.Stroke, true)
		vector.DrawFilledCircle(screen, x, y, r.sizes.TowerRadius, r.palette.Tower, true)

		fx, fy := r.Project(tower.Muzzle.Add(tower.Facing.Scale(0.4)))
		vector.StrokeLine(screen, mx, my, fx, fy, 3, DarkenColor(r.palette.Tower), true)
	}

	for _, target := range sim.Targets() {
		x, y := r.Project(target.Position)
		w := float32(2 * target.HalfExtents.X * r.sizes.Scale)
		h := float32(2 * target.HalfExtents.Z * r.sizes.Scale)
		c := Shade(r.palette.Target, target.Position.Y/shadeHeight)
		vector.DrawFilledRect(screen, x-w/2, y-h/2, w, h, c, true)
		vector.StrokeRect(screen, x-w/2, y-h/2, w, h, 1, DarkenColor(c), true)
		r.drawHealthBar(screen, x, y-h/2, target.Health, target.MaxHealth)
	}

	for _, bullet := range sim.Bullets() {
		x, y := r.Project(bullet.Position)
		vector.DrawFilledCircle(screen, x, y, r.sizes.BulletRadius, Shade(r.palette.Bullet, bullet.Position.Y/shadeHeight), true)
	}
}

func (r *TopDownRenderer) drawHealthBar(screen *ebiten.Image, x, top float32, health, maxHealth int) {
	if maxHealth <= 0 {
		return
	}
	w, h := r.sizes.HealthBarWidth, r.sizes.HealthBarHeight
	left := x - w/2
	y := top - r.sizes.HealthBarOffset
	vector.DrawFilledRect(screen, left, y, w, h, r.palette.HealthBack, false)
	fill := float32(min(max(health, 0), maxHealth)) / float32(maxHealth)
	vector.DrawFilledRect(screen, left, y, w*fill, h, r.palette.HealthFill, false)
}

// DrawText выводит строку шрифтом интерфейса.
func (r *TopDownRenderer) DrawText(screen *ebiten.Image, s string, x, y int, c color.Color) {
	text.Draw(screen, s, r.fontFace, x, y, c)
}

// DrawHUD выводит счётчики симуляции в левом верхнем углу.
func (r *TopDownRenderer) DrawHUD(screen *ebiten.Image, sim *app.Simulation, speed float64, paused bool) {
	status := fmt.Sprintf("t=%.1fs  x%.0f  targets %d  bullets %d", sim.Time(), speed, len(sim.Targets()), len(sim.Bullets()))
	if paused {
		status += "  PAUSED"
	}
	r.DrawText(screen, status, 10, 20, r.palette.Text)
}
