package system

import (
	"go-tower-defense-3d/internal/entity"
	"go-tower-defense-3d/internal/event"
	"go-tower-defense-3d/internal/types"
	"go-tower-defense-3d/pkg/geom"
	"io"
	"testing"

	"github.com/charmbracelet/log"
)

var (
	quiet   = log.New(io.Discard)
	tinyBox = geom.V(0.1, 0.1, 0.1)
)

// recorder собирает отправленные события по типам.
type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func newWorld(t *testing.T) (*entity.ECS, *event.Dispatcher, *recorder) {
	t.Helper()
	d := event.NewDispatcher()
	r := &recorder{}
	d.SubscribeAll(r)
	return entity.NewECS(), d, r
}

func spawnTarget(t *testing.T, ecs *entity.ECS, pos geom.Vec3, health int) types.EntityID {
	t.Helper()
	id, err := ecs.SpawnTarget(pos, 0, health, tinyBox)
	if err != nil {
		t.Fatalf("SpawnTarget: %v", err)
	}
	return id
}

func spawnTower(t *testing.T, ecs *entity.ECS, pos geom.Vec3, rng, period float64, offset geom.Vec3) types.EntityID {
	t.Helper()
	id, err := ecs.SpawnTower(pos, rng, period, offset)
	if err != nil {
		t.Fatalf("SpawnTower: %v", err)
	}
	return id
}
