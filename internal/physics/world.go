// internal/physics/world.go
package physics

import (
	"errors"
	"fmt"
	"go-tower-defense-3d/internal/types"
)

var (
	ErrDuplicateBody = errors.New("body already registered")
	ErrInvalidBody   = errors.New("invalid body")
)

// World — реестр физических тел. Тело хранится под идентификатором
// сущности-владельца, порядок обхода совпадает с порядком вставки.
type World struct {
	bodies map[types.EntityID]*Body
	order  []types.EntityID
}

func NewWorld() *World {
	return &World{
		bodies: make(map[types.EntityID]*Body),
	}
}

// Insert добавляет тело. Полуразмеры должны быть положительными.
func (w *World) Insert(id types.EntityID, body Body) error {
	if _, exists := w.bodies[id]; exists {
		return fmt.Errorf("insert body %d: %w", id, ErrDuplicateBody)
	}
	h := body.HalfExtents
	if !(h.X > 0 && h.Y > 0 && h.Z > 0) || !h.IsFinite() {
		return fmt.Errorf("insert body %d: half extents %+v: %w", id, h, ErrInvalidBody)
	}
	if !body.Position.IsFinite() || !body.Velocity.IsFinite() {
		return fmt.Errorf("insert body %d: non-finite position or velocity: %w", id, ErrInvalidBody)
	}
	b := body
	b.previous = b.Position
	w.bodies[id] = &b
	w.order = append(w.order, id)
	return nil
}

// Remove удаляет тело. Удаление неизвестного id — no-op, возвращает false.
func (w *World) Remove(id types.EntityID) bool {
	if _, exists := w.bodies[id]; !exists {
		return false
	}
	delete(w.bodies, id)
	for i, other := range w.order {
		if other == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
	return true
}

// Body возвращает копию тела
func (w *World) Body(id types.EntityID) (Body, bool) {
	b, ok := w.bodies[id]
	if !ok {
		return Body{}, false
	}
	return *b, true
}

func (w *World) Contains(id types.EntityID) bool {
	_, ok := w.bodies[id]
	return ok
}

func (w *World) Len() int {
	return len(w.order)
}

// IDs возвращает id тел в порядке добавления. Срез — копия.
func (w *World) IDs() []types.EntityID {
	out := make([]types.EntityID, len(w.order))
	copy(out, w.order)
	return out
}

// Advance интегрирует position += velocity*dt для кинематических тел.
// Статические тела не двигаются, но их стартовая позиция тоже обновляется.
func (w *World) Advance(dt float64) {
	for _, id := range w.order {
		b := w.bodies[id]
		b.previous = b.Position
		if b.Kind != Kinematic || dt <= 0 {
			continue
		}
		b.Position = b.Position.Add(b.Velocity.Scale(dt))
	}
}
