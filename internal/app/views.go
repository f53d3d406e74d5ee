// internal/app/views.go
package app

import (
	"go-tower-defense-3d/internal/types"
	"go-tower-defense-3d/pkg/geom"
)

// TowerView — снимок башни для отрисовки
type TowerView struct {
	ID             types.EntityID
	Position       geom.Vec3
	Muzzle         geom.Vec3
	Facing         geom.Vec3
	DetectionRange float64
	Cooldown       float64 // сколько осталось до следующего выстрела
}

// TargetView — снимок цели для отрисовки
type TargetView struct {
	ID          types.EntityID
	Position    geom.Vec3
	HalfExtents geom.Vec3
	Heading     geom.Vec3
	Health      int
	MaxHealth   int
}

// BulletView — снимок снаряда для отрисовки
type BulletView struct {
	ID          types.EntityID
	Position    geom.Vec3
	HalfExtents geom.Vec3
	Direction   geom.Vec3
	Lifetime    float64
}

// Towers возвращает все башни в порядке создания.
func (s *Simulation) Towers() []TowerView {
	ids := s.ECS.TowerIDs()
	out := make([]TowerView, 0, len(ids))
	for _, id := range ids {
		t := s.ECS.Towers[id]
		out = append(out, TowerView{
			ID:             id,
			Position:       t.Position,
			Muzzle:         t.Muzzle(),
			Facing:         t.Facing,
			DetectionRange: t.DetectionRange,
			Cooldown:       t.FireTimer.Remaining,
		})
	}
	return out
}

// Targets возвращает все живые цели в порядке создания.
func (s *Simulation) Targets() []TargetView {
	ids := s.ECS.TargetIDs()
	out := make([]TargetView, 0, len(ids))
	for _, id := range ids {
		body, ok := s.ECS.Bodies.Body(id)
		if !ok {
			continue
		}
		health := s.ECS.Healths[id]
		out = append(out, TargetView{
			ID:          id,
			Position:    body.Position,
			HalfExtents: body.HalfExtents,
			Heading:     s.ECS.Targets[id].Heading,
			Health:      health.Value,
			MaxHealth:   health.Max,
		})
	}
	return out
}

// Bullets возвращает все летящие снаряды в порядке создания.
func (s *Simulation) Bullets() []BulletView {
	ids := s.ECS.BulletIDs()
	out := make([]BulletView, 0, len(ids))
	for _, id := range ids {
		body, ok := s.ECS.Bodies.Body(id)
		if !ok {
			continue
		}
		out = append(out, BulletView{
			ID:          id,
			Position:    body.Position,
			HalfExtents: body.HalfExtents,
			Direction:   s.ECS.Bullets[id].Direction,
			Lifetime:    s.ECS.Lifetimes[id].Timer.Remaining,
		})
	}
	return out
}

// Health возвращает текущее здоровье цели
func (s *Simulation) Health(id types.EntityID) (int, bool) {
	h, ok := s.ECS.Healths[id]
	if !ok {
		return 0, false
	}
	return h.Value, true
}

// Alive — существует ли сущность
func (s *Simulation) Alive(id types.EntityID) bool {
	return s.ECS.Alive(id)
}
