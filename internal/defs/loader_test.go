package defs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const sceneJSON = `{
	"name": "test",
	"seed": 7,
	"towers": [
		{"name": "t", "position": [0, 0, 0], "detection_range": 2, "fire_period": 1, "muzzle_offset": [0, 1, 0.5]}
	],
	"targets": [
		{"name": "a", "position": [0, 1, 1], "speed": 0, "health": 3, "box_size": [0.1, 0.1, 0.1]},
		{"name": "b", "position": [1, 0, 0], "speed": 1, "health": 2, "box_size": [0.2, 0.2, 0.2], "heading": [0, 0, -1]}
	],
	"spawner": {
		"origin": [-3, 0.5, 0], "jitter": [0, 0.5, 0.5], "interval": 2,
		"speed_min": 0.2, "speed_max": 0.4, "health_min": 1, "health_max": 3,
		"box_size": [0.3, 0.3, 0.3], "limit": 5
	}
}`

func TestLoadScene(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.json")
	if err := os.WriteFile(path, []byte(sceneJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	scene, err := LoadScene(path)
	if err != nil {
		t.Fatalf("LoadScene: %v", err)
	}
	if scene.Name != "test" || scene.Seed != 7 {
		t.Errorf("header = %q seed %d", scene.Name, scene.Seed)
	}
	if len(scene.Towers) != 1 || scene.Towers[0].MuzzleOffset != (Vector{0, 1, 0.5}) {
		t.Errorf("towers = %+v", scene.Towers)
	}
	if len(scene.Targets) != 2 {
		t.Fatalf("targets = %d", len(scene.Targets))
	}
	if h := scene.Targets[1].HeadingVec(); h.Z != -1 {
		t.Errorf("heading = %+v", h)
	}
	if h := scene.Targets[0].HeadingVec(); h.X != 1 {
		t.Errorf("default heading = %+v", h)
	}
	if scene.Spawner == nil || scene.Spawner.Limit != 5 {
		t.Errorf("spawner = %+v", scene.Spawner)
	}
}

func TestParseSceneErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad json", `{"towers": [}`},
		{"empty", `{"name": "nothing"}`},
		{"zero interval", `{"spawner": {"interval": 0, "health_min": 1, "health_max": 1, "box_size": [1, 1, 1]}}`},
		{"bad health range", `{"spawner": {"interval": 1, "health_min": 3, "health_max": 1, "box_size": [1, 1, 1]}}`},
		{"zero heading", `{"spawner": {"interval": 1, "health_min": 1, "health_max": 1, "box_size": [1, 1, 1], "heading": [0, 0, 0]}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseScene([]byte(tt.data)); err == nil {
				t.Error("expected an error")
			}
		})
	}

	if _, err := ParseScene([]byte(`{}`)); !errors.Is(err, ErrEmptyScene) {
		t.Errorf("err = %v, want ErrEmptyScene", err)
	}
	if _, err := LoadScene(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want os.ErrNotExist", err)
	}
}

func TestDefaultSceneIsValid(t *testing.T) {
	scene := DefaultScene()
	if len(scene.Towers) != 1 || len(scene.Targets) != 4 {
		t.Errorf("default scene has %d towers and %d targets", len(scene.Towers), len(scene.Targets))
	}
}

func TestLoadScenesSortedByFile(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.json", "a.json"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(sceneJSON), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	noName := `{"towers": [{"position": [0, 0, 0], "detection_range": 1, "fire_period": 1, "muzzle_offset": [0, 0, 0]}]}`
	if err := os.WriteFile(filepath.Join(dir, "c.json"), []byte(noName), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}

	scenes, err := LoadScenes(dir)
	if err != nil {
		t.Fatalf("LoadScenes: %v", err)
	}
	if len(scenes) != 3 {
		t.Fatalf("loaded %d scenes, want 3", len(scenes))
	}
	if scenes[2].Name != "c.json" {
		t.Errorf("unnamed scene got name %q, want the file name", scenes[2].Name)
	}
}

func TestShippedScenesLoad(t *testing.T) {
	scenes, err := LoadScenes(filepath.Join("..", "..", "assets", "scenes"))
	if err != nil {
		t.Fatalf("LoadScenes: %v", err)
	}
	if len(scenes) == 0 {
		t.Fatal("no shipped scenes")
	}
}
