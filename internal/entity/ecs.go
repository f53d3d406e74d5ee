// internal/entity/ecs.go
package entity

import (
	"errors"
	"fmt"
	"go-tower-defense-3d/internal/component"
	"go-tower-defense-3d/internal/config"
	"go-tower-defense-3d/internal/physics"
	"go-tower-defense-3d/internal/types"
	"go-tower-defense-3d/pkg/geom"
	"math"
	"slices"
)

// ErrInvalidConfiguration — параметры создания сущности не прошли проверку.
// Сущность при этом не попадает ни в один реестр.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// ECS хранит компоненты по идентификатору сущности. Для каждого вида сущностей
// ведётся упорядоченный список id: обход карт в Go случаен, а выбор цели
// и разрешение столкновений должны быть детерминированными.
type ECS struct {
	GameTime  float64
	NextID    types.EntityID
	Towers    map[types.EntityID]*component.Tower
	Targets   map[types.EntityID]*component.Target
	Healths   map[types.EntityID]*component.Health
	Bullets   map[types.EntityID]*component.Bullet
	Lifetimes map[types.EntityID]*component.Lifetime
	Bodies    *physics.World

	towerOrder  []types.EntityID
	targetOrder []types.EntityID
	bulletOrder []types.EntityID
}

func NewECS() *ECS {
	return &ECS{
		NextID:    1,
		Towers:    make(map[types.EntityID]*component.Tower),
		Targets:   make(map[types.EntityID]*component.Target),
		Healths:   make(map[types.EntityID]*component.Health),
		Bullets:   make(map[types.EntityID]*component.Bullet),
		Lifetimes: make(map[types.EntityID]*component.Lifetime),
		Bodies:    physics.NewWorld(),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

func invalid(kind, format string, args ...any) error {
	return fmt.Errorf("spawn %s: %s: %w", kind, fmt.Sprintf(format, args...), ErrInvalidConfiguration)
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

func positiveBox(v geom.Vec3) bool {
	return positiveFinite(v.X) && positiveFinite(v.Y) && positiveFinite(v.Z)
}

// SpawnTower создаёт башню. Башни не имеют физического тела.
func (ecs *ECS) SpawnTower(position geom.Vec3, detectionRange, firePeriod float64, muzzleOffset geom.Vec3) (types.EntityID, error) {
	if !positiveFinite(detectionRange) {
		return types.NoEntity, invalid("tower", "detection range %v must be positive", detectionRange)
	}
	if !positiveFinite(firePeriod) {
		return types.NoEntity, invalid("tower", "fire period %v must be positive", firePeriod)
	}
	if !position.IsFinite() || !muzzleOffset.IsFinite() {
		return types.NoEntity, invalid("tower", "position %+v / muzzle offset %+v must be finite", position, muzzleOffset)
	}

	id := ecs.NewEntity()
	ecs.Towers[id] = &component.Tower{
		Position:       position,
		DetectionRange: detectionRange,
		FireTimer:      component.NewRepeatingTimer(firePeriod),
		MuzzleOffset:   muzzleOffset,
		Facing:         config.DefaultTowerFacing,
	}
	ecs.towerOrder = append(ecs.towerOrder, id)
	return id, nil
}

// SpawnTarget создаёт цель, движущуюся в направлении по умолчанию.
// boxSize — полный размер бокса, полуразмеры равны boxSize/2.
func (ecs *ECS) SpawnTarget(position geom.Vec3, speed float64, initialHealth int, boxSize geom.Vec3) (types.EntityID, error) {
	return ecs.SpawnTargetHeading(position, speed, initialHealth, boxSize, config.DefaultTargetHeading)
}

// SpawnTargetHeading создаёт цель с заданным направлением движения.
// Нулевая скорость допустима (неподвижная цель).
func (ecs *ECS) SpawnTargetHeading(position geom.Vec3, speed float64, initialHealth int, boxSize, heading geom.Vec3) (types.EntityID, error) {
	if speed < 0 || math.IsNaN(speed) || math.IsInf(speed, 0) {
		return types.NoEntity, invalid("target", "speed %v must be non-negative", speed)
	}
	if initialHealth <= 0 {
		return types.NoEntity, invalid("target", "initial health %d must be positive", initialHealth)
	}
	if !positiveBox(boxSize) {
		return types.NoEntity, invalid("target", "box size %+v must be positive", boxSize)
	}
	if !position.IsFinite() {
		return types.NoEntity, invalid("target", "position %+v must be finite", position)
	}
	dir, ok := heading.Normalize()
	if !ok {
		return types.NoEntity, invalid("target", "heading %+v has no direction", heading)
	}

	id := ecs.NewEntity()
	body := physics.NewKinematicBody(position, boxSize, dir.Scale(speed))
	if err := ecs.Bodies.Insert(id, body); err != nil {
		return types.NoEntity, fmt.Errorf("spawn target: %w", err)
	}
	ecs.Targets[id] = &component.Target{Speed: speed, Heading: dir}
	ecs.Healths[id] = &component.Health{Value: initialHealth, Max: initialHealth}
	ecs.targetOrder = append(ecs.targetOrder, id)
	return id, nil
}

// SpawnBullet создаёт снаряд в позиции дула. Направление нормализуется;
// вырожденное направление заменяется на config.DefaultBulletDirection,
// второй результат сообщает о такой замене.
func (ecs *ECS) SpawnBullet(source types.EntityID, muzzle, direction geom.Vec3) (types.EntityID, bool, error) {
	dir, ok := direction.Normalize()
	if !ok {
		dir = config.DefaultBulletDirection
	}
	bullet := &component.Bullet{
		Direction: dir,
		Speed:     config.BulletSpeed,
		Source:    source,
	}

	id := ecs.NewEntity()
	size := config.BulletHalfExtents.Scale(2)
	if err := ecs.Bodies.Insert(id, physics.NewKinematicBody(muzzle, size, bullet.Velocity())); err != nil {
		return types.NoEntity, !ok, fmt.Errorf("spawn bullet: %w", err)
	}
	ecs.Bullets[id] = bullet
	ecs.Lifetimes[id] = &component.Lifetime{Timer: component.NewOneShotTimer(config.BulletLifetime)}
	ecs.bulletOrder = append(ecs.bulletOrder, id)
	return id, !ok, nil
}

// RemoveBullet удаляет снаряд вместе с телом. Повторное удаление — no-op.
func (ecs *ECS) RemoveBullet(id types.EntityID) bool {
	if _, ok := ecs.Bullets[id]; !ok {
		return false
	}
	delete(ecs.Bullets, id)
	delete(ecs.Lifetimes, id)
	ecs.Bodies.Remove(id)
	ecs.bulletOrder = removeID(ecs.bulletOrder, id)
	return true
}

// RemoveTarget удаляет цель вместе с телом. Повторное удаление — no-op.
func (ecs *ECS) RemoveTarget(id types.EntityID) bool {
	if _, ok := ecs.Targets[id]; !ok {
		return false
	}
	delete(ecs.Targets, id)
	delete(ecs.Healths, id)
	ecs.Bodies.Remove(id)
	ecs.targetOrder = removeID(ecs.targetOrder, id)
	return true
}

func removeID(ids []types.EntityID, id types.EntityID) []types.EntityID {
	if i := slices.Index(ids, id); i >= 0 {
		return slices.Delete(ids, i, i+1)
	}
	return ids
}

// TowerIDs, TargetIDs и BulletIDs возвращают копии в порядке создания,
// так что по ним можно итерироваться, удаляя сущности.
func (ecs *ECS) TowerIDs() []types.EntityID  { return slices.Clone(ecs.towerOrder) }
func (ecs *ECS) TargetIDs() []types.EntityID { return slices.Clone(ecs.targetOrder) }
func (ecs *ECS) BulletIDs() []types.EntityID { return slices.Clone(ecs.bulletOrder) }

// Position возвращает текущую позицию цели или снаряда (по телу) либо башни.
func (ecs *ECS) Position(id types.EntityID) (geom.Vec3, bool) {
	if tower, ok := ecs.Towers[id]; ok {
		return tower.Position, true
	}
	body, ok := ecs.Bodies.Body(id)
	if !ok {
		return geom.Zero, false
	}
	return body.Position, true
}

func (ecs *ECS) IsTower(id types.EntityID) bool {
	_, ok := ecs.Towers[id]
	return ok
}

func (ecs *ECS) IsTarget(id types.EntityID) bool {
	_, ok := ecs.Targets[id]
	return ok
}

func (ecs *ECS) IsBullet(id types.EntityID) bool {
	_, ok := ecs.Bullets[id]
	return ok
}

// Alive — существует ли сущность любого вида
func (ecs *ECS) Alive(id types.EntityID) bool {
	return ecs.IsTower(id) || ecs.IsTarget(id) || ecs.IsBullet(id)
}
