// internal/physics/body.go
package physics

import "go-tower-defense-3d/pkg/geom"

// Kind — режим движения тела
type Kind int

const (
	Kinematic Kind = iota // двигается собственной скоростью
	Static                // не двигается
)

func (k Kind) String() string {
	switch k {
	case Kinematic:
		return "kinematic"
	case Static:
		return "static"
	default:
		return "unknown"
	}
}

// Body — физическое тело с боксом (AABB). Позицию меняет только интегрирование скорости.
type Body struct {
	Position    geom.Vec3
	HalfExtents geom.Vec3
	Velocity    geom.Vec3
	Kind        Kind

	// Позиция до последнего Advance, для непрерывной проверки пересечений
	previous geom.Vec3
}

// NewKinematicBody собирает движущееся тело из полного размера бокса.
func NewKinematicBody(position, size, velocity geom.Vec3) Body {
	return Body{
		Position:    position,
		HalfExtents: size.Scale(0.5),
		Velocity:    velocity,
		Kind:        Kinematic,
		previous:    position,
	}
}

// NewStaticBody собирает неподвижное тело из полного размера бокса.
func NewStaticBody(position, size geom.Vec3) Body {
	return Body{
		Position:    position,
		HalfExtents: size.Scale(0.5),
		Kind:        Static,
		previous:    position,
	}
}

// Box — бокс тела в текущей позиции
func (b *Body) Box() geom.Box {
	return geom.Box{Center: b.Position, HalfExtents: b.HalfExtents}
}

// Displacement — смещение тела за последний Advance.
func (b *Body) Displacement() geom.Vec3 {
	return b.Position.Sub(b.previous)
}

func (b *Body) startBox() geom.Box {
	return geom.Box{Center: b.previous, HalfExtents: b.HalfExtents}
}
