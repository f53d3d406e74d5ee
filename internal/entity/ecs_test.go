package entity

import (
	"errors"
	"go-tower-defense-3d/internal/config"
	"go-tower-defense-3d/internal/types"
	"go-tower-defense-3d/pkg/geom"
	"math"
	"slices"
	"testing"
)

var box = geom.V(0.2, 0.2, 0.2)

func TestSpawnRejectsInvalidConfiguration(t *testing.T) {
	tests := []struct {
		name  string
		spawn func(*ECS) error
	}{
		{"zero range", func(e *ECS) error {
			_, err := e.SpawnTower(geom.Zero, 0, 1, geom.Zero)
			return err
		}},
		{"negative range", func(e *ECS) error {
			_, err := e.SpawnTower(geom.Zero, -2, 1, geom.Zero)
			return err
		}},
		{"zero period", func(e *ECS) error {
			_, err := e.SpawnTower(geom.Zero, 2, 0, geom.Zero)
			return err
		}},
		{"negative speed", func(e *ECS) error {
			_, err := e.SpawnTarget(geom.Zero, -0.1, 3, box)
			return err
		}},
		{"nan speed", func(e *ECS) error {
			_, err := e.SpawnTarget(geom.Zero, math.NaN(), 3, box)
			return err
		}},
		{"zero health", func(e *ECS) error {
			_, err := e.SpawnTarget(geom.Zero, 1, 0, box)
			return err
		}},
		{"flat box", func(e *ECS) error {
			_, err := e.SpawnTarget(geom.Zero, 1, 3, geom.V(0.2, 0, 0.2))
			return err
		}},
		{"zero heading", func(e *ECS) error {
			_, err := e.SpawnTargetHeading(geom.Zero, 1, 3, box, geom.Zero)
			return err
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewECS()
			err := tt.spawn(e)
			if !errors.Is(err, ErrInvalidConfiguration) {
				t.Fatalf("err = %v, want ErrInvalidConfiguration", err)
			}
			if len(e.Towers) != 0 || len(e.Targets) != 0 || e.Bodies.Len() != 0 {
				t.Error("rejected entity entered a registry")
			}
		})
	}
}

func TestSpawnTargetOwnsBody(t *testing.T) {
	e := NewECS()
	id, err := e.SpawnTarget(geom.V(-2, 0.2, 1.5), 0.2, 3, box)
	if err != nil {
		t.Fatalf("SpawnTarget: %v", err)
	}
	body, ok := e.Bodies.Body(id)
	if !ok {
		t.Fatal("target has no body")
	}
	if body.HalfExtents != geom.V(0.1, 0.1, 0.1) {
		t.Errorf("half extents = %+v, want 0.1", body.HalfExtents)
	}
	if body.Velocity != config.DefaultTargetHeading.Scale(0.2) {
		t.Errorf("velocity = %+v", body.Velocity)
	}
	if h := e.Healths[id]; h.Value != 3 || h.Max != 3 {
		t.Errorf("health = %+v", h)
	}
}

func TestSpawnBulletDegenerateDirection(t *testing.T) {
	e := NewECS()
	id, degenerate, err := e.SpawnBullet(1, geom.V(0, 1, 0.5), geom.Zero)
	if err != nil {
		t.Fatalf("SpawnBullet: %v", err)
	}
	if !degenerate {
		t.Error("zero direction not reported as degenerate")
	}
	if got := e.Bullets[id].Direction; got != config.DefaultBulletDirection {
		t.Errorf("direction = %+v, want default", got)
	}
	body, _ := e.Bodies.Body(id)
	if body.Velocity != config.DefaultBulletDirection.Scale(config.BulletSpeed) {
		t.Errorf("velocity = %+v", body.Velocity)
	}
	if e.Lifetimes[id].Timer.Remaining != config.BulletLifetime {
		t.Errorf("lifetime = %v", e.Lifetimes[id].Timer.Remaining)
	}
}

func TestRemovalIsIdempotent(t *testing.T) {
	e := NewECS()
	target, _ := e.SpawnTarget(geom.Zero, 0, 3, box)
	bullet, _, _ := e.SpawnBullet(1, geom.V(1, 0, 0), geom.V(1, 0, 0))

	if !e.RemoveBullet(bullet) || e.RemoveBullet(bullet) {
		t.Error("bullet removal is not idempotent")
	}
	if !e.RemoveTarget(target) || e.RemoveTarget(target) {
		t.Error("target removal is not idempotent")
	}
	if e.RemoveBullet(target) || e.RemoveTarget(bullet) || e.RemoveTarget(12345) {
		t.Error("removal of a foreign or unknown id reported success")
	}
	if e.Bodies.Len() != 0 || e.Alive(target) || e.Alive(bullet) {
		t.Error("entities still alive after removal")
	}
}

func TestIDsAreOrderedAndNeverReused(t *testing.T) {
	e := NewECS()
	a, _ := e.SpawnTarget(geom.Zero, 0, 1, box)
	b, _ := e.SpawnTarget(geom.Zero, 0, 1, box)
	e.RemoveTarget(a)
	c, _ := e.SpawnTarget(geom.Zero, 0, 1, box)

	if c == a || c <= b {
		t.Errorf("id %d reused or out of order (a=%d, b=%d)", c, a, b)
	}
	if got := e.TargetIDs(); !slices.Equal(got, []types.EntityID{b, c}) {
		t.Errorf("TargetIDs = %v", got)
	}
}
