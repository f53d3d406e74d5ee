package trace

import (
	"bytes"
	"go-tower-defense-3d/internal/app"
	"go-tower-defense-3d/pkg/geom"
	"io"
	"testing"

	"github.com/charmbracelet/log"
)

func TestRecorderCapturesHits(t *testing.T) {
	cfg := app.DefaultConfig()
	cfg.Logger = log.New(io.Discard)
	sim := app.NewSimulation(cfg)
	if _, err := sim.SpawnTower(geom.Zero, 2, 1, geom.V(0, 1, 0.5)); err != nil {
		t.Fatal(err)
	}
	if _, err := sim.SpawnTarget(geom.V(0, 1, 1), 0, 3, geom.V(0.1, 0.1, 0.1)); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	rec := NewRecorder(&buf)
	for i := 0; i < 4; i++ {
		if err := rec.Record(sim, sim.Tick(1.0)); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	frames, err := ReadFrames(&buf)
	if err != nil {
		t.Fatalf("ReadFrames: %v", err)
	}
	if len(frames) != rec.Frames() || len(frames) != 4 {
		t.Fatalf("read %d frames, recorded %d", len(frames), rec.Frames())
	}
	wantHealth := []int{3, 2, 1}
	for i, want := range wantHealth {
		f := frames[i]
		if f.Tick != uint64(i+1) {
			t.Errorf("frame %d: tick %d", i, f.Tick)
		}
		if len(f.Targets) != 1 || f.Targets[0].Health != want {
			t.Errorf("frame %d: targets %+v, want health %d", i, f.Targets, want)
		}
	}
	if last := frames[3]; last.Destroyed != 1 || len(last.Targets) != 0 {
		t.Errorf("last frame = %+v, want the target destroyed", last)
	}
}

func TestReadFramesRejectsGarbage(t *testing.T) {
	if _, err := ReadFrames(bytes.NewReader([]byte{0xc1})); err == nil {
		t.Error("expected an error for an invalid stream")
	}
}
