package system

import (
	"go-tower-defense-3d/internal/event"
	"go-tower-defense-3d/pkg/geom"
	"testing"
)

func TestCollisionDamagesTargetAndConsumesBullet(t *testing.T) {
	ecs, d, rec := newWorld(t)
	target := spawnTarget(t, ecs, geom.V(0, 1, 1), 3)
	bullet, _, err := ecs.SpawnBullet(99, geom.V(0, 1, 0.5), geom.V(0, 0, 1))
	if err != nil {
		t.Fatalf("SpawnBullet: %v", err)
	}

	ecs.Bodies.Advance(0.2)
	hits := NewCollisionSystem(ecs, d, quiet).Update(ecs.Bodies.Overlaps())

	if hits != 1 {
		t.Fatalf("hits = %d, want 1", hits)
	}
	if got := ecs.Healths[target].Value; got != 2 {
		t.Errorf("health = %d, want 2", got)
	}
	if ecs.IsBullet(bullet) || ecs.Bodies.Contains(bullet) {
		t.Error("bullet still registered after the hit")
	}
	if rec.count(event.TargetHit) != 1 {
		t.Errorf("TargetHit events = %d", rec.count(event.TargetHit))
	}
}

func TestCollisionBulletHitsOnlyFirstTarget(t *testing.T) {
	ecs, d, _ := newWorld(t)
	first := spawnTarget(t, ecs, geom.V(0, 0, 0), 3)
	second := spawnTarget(t, ecs, geom.V(0.05, 0, 0), 3)
	ecs.SpawnBullet(99, geom.V(0.02, 0, 0), geom.V(1, 0, 0))

	hits := NewCollisionSystem(ecs, d, quiet).Update(ecs.Bodies.Overlaps())
	if hits != 1 {
		t.Fatalf("hits = %d, want 1", hits)
	}
	if ecs.Healths[first].Value != 2 || ecs.Healths[second].Value != 3 {
		t.Errorf("health first=%d second=%d, want 2 and 3",
			ecs.Healths[first].Value, ecs.Healths[second].Value)
	}
}

func TestCollisionTwoBulletsSameTarget(t *testing.T) {
	ecs, d, _ := newWorld(t)
	target := spawnTarget(t, ecs, geom.Zero, 3)
	ecs.SpawnBullet(99, geom.V(0.01, 0, 0), geom.V(1, 0, 0))
	ecs.SpawnBullet(99, geom.V(-0.01, 0, 0), geom.V(1, 0, 0))

	if hits := NewCollisionSystem(ecs, d, quiet).Update(ecs.Bodies.Overlaps()); hits != 2 {
		t.Fatalf("hits = %d, want 2", hits)
	}
	if ecs.Healths[target].Value != 1 {
		t.Errorf("health = %d, want 1", ecs.Healths[target].Value)
	}
	if len(ecs.Bullets) != 0 {
		t.Errorf("%d bullets left", len(ecs.Bullets))
	}
}

func TestCollisionCountsOverkillHits(t *testing.T) {
	ecs, d, _ := newWorld(t)
	target := spawnTarget(t, ecs, geom.Zero, 1)
	ecs.SpawnBullet(99, geom.V(0.01, 0, 0), geom.V(1, 0, 0))
	ecs.SpawnBullet(99, geom.V(-0.01, 0, 0), geom.V(1, 0, 0))

	if hits := NewCollisionSystem(ecs, d, quiet).Update(ecs.Bodies.Overlaps()); hits != 2 {
		t.Fatalf("hits = %d, want 2", hits)
	}
	if got := ecs.Healths[target].Value; got != -1 {
		t.Errorf("health 1 hit by two bullets = %d, want -1", got)
	}
}

func TestCollisionIgnoresOtherPairs(t *testing.T) {
	ecs, d, _ := newWorld(t)
	a := spawnTarget(t, ecs, geom.Zero, 3)
	b := spawnTarget(t, ecs, geom.Zero, 3)
	ecs.SpawnBullet(99, geom.V(5, 0, 0), geom.V(1, 0, 0))
	ecs.SpawnBullet(99, geom.V(5, 0, 0), geom.V(1, 0, 0))

	if hits := NewCollisionSystem(ecs, d, quiet).Update(ecs.Bodies.Overlaps()); hits != 0 {
		t.Fatalf("hits = %d, want 0", hits)
	}
	if ecs.Healths[a].Value != 3 || ecs.Healths[b].Value != 3 || len(ecs.Bullets) != 2 {
		t.Error("target-target or bullet-bullet overlap changed state")
	}
}

func TestApplyDamageKeepsOverkill(t *testing.T) {
	ecs, _, _ := newWorld(t)
	id := spawnTarget(t, ecs, geom.Zero, 1)
	if h, ok := ApplyDamage(ecs, id, 1); !ok || h != 0 {
		t.Fatalf("ApplyDamage = %d, %v", h, ok)
	}
	if h, _ := ApplyDamage(ecs, id, 1); h != -1 {
		t.Errorf("second hit left health %d, want -1", h)
	}
	if !ecs.Healths[id].Dead() {
		t.Error("target with negative health is not dead")
	}
	if _, ok := ApplyDamage(ecs, 12345, 1); ok {
		t.Error("damage applied to an unknown entity")
	}
}
