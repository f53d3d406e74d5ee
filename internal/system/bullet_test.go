package system

import (
	"go-tower-defense-3d/internal/config"
	"go-tower-defense-3d/internal/event"
	"go-tower-defense-3d/pkg/geom"
	"testing"
)

func TestBulletExpires(t *testing.T) {
	ecs, d, rec := newWorld(t)
	id, _, _ := ecs.SpawnBullet(99, geom.Zero, geom.V(1, 0, 0))
	s := NewBulletSystem(ecs, d, quiet)

	if n := s.Update(1000, ecs.BulletIDs()); n != 0 {
		t.Fatalf("expired %d bullets too early", n)
	}
	if got := ecs.Lifetimes[id].Timer.Remaining; got != config.BulletLifetime-1000 {
		t.Errorf("remaining = %v, want %v", got, config.BulletLifetime-1000)
	}
	if n := s.Update(1, ecs.BulletIDs()); n != 1 {
		t.Fatalf("expired %d bullets, want 1", n)
	}
	if ecs.IsBullet(id) || ecs.Bodies.Contains(id) {
		t.Error("expired bullet still registered")
	}
	if rec.count(event.BulletExpired) != 1 {
		t.Errorf("BulletExpired events = %d", rec.count(event.BulletExpired))
	}
}

func TestBulletUpdateSkipsRemovedIDs(t *testing.T) {
	ecs, d, _ := newWorld(t)
	id, _, _ := ecs.SpawnBullet(99, geom.Zero, geom.V(1, 0, 0))
	ids := ecs.BulletIDs()
	ecs.RemoveBullet(id)

	if n := NewBulletSystem(ecs, d, quiet).Update(config.BulletLifetime*2, ids); n != 0 {
		t.Errorf("expired %d already removed bullets", n)
	}
}
