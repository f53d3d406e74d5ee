// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// ErrEmptyScene — в сцене нет ни башен, ни целей, ни спавнера.
var ErrEmptyScene = errors.New("scene has no entities")

// LoadScene читает файл сцены с диска и разбирает его.
func LoadScene(path string) (*SceneDefinition, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}
	scene, err := ParseScene(file)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return scene, nil
}

// LoadScenes загружает все сцены *.json из dir, отсортированные по имени файла.
func LoadScenes(dir string) ([]*SceneDefinition, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to list scenes: %w", err)
	}
	sort.Strings(paths)
	scenes := make([]*SceneDefinition, 0, len(paths))
	for _, path := range paths {
		scene, err := LoadScene(path)
		if err != nil {
			return nil, err
		}
		if scene.Name == "" {
			scene.Name = filepath.Base(path)
		}
		scenes = append(scenes, scene)
	}
	return scenes, nil
}

// ParseScene разбирает JSON сцены. Значения башен и целей проверяются
// позже, при создании сущностей; здесь проверяется только спавнер.
func ParseScene(data []byte) (*SceneDefinition, error) {
	var scene SceneDefinition
	if err := json.Unmarshal(data, &scene); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scene: %w", err)
	}
	if len(scene.Towers) == 0 && len(scene.Targets) == 0 && scene.Spawner == nil {
		return nil, ErrEmptyScene
	}
	if scene.Spawner != nil {
		if err := scene.Spawner.Validate(); err != nil {
			return nil, err
		}
	}
	return &scene, nil
}

// DefaultScene — стартовая сцена: одна башня у стройплощадки и четыре цели.
func DefaultScene() *SceneDefinition {
	return &SceneDefinition{
		Name: "default",
		Towers: []TowerDefinition{
			{
				Name:           "Tower",
				Position:       Vector{1, 0, 0},
				DetectionRange: 2,
				FirePeriod:     1,
				MuzzleOffset:   Vector{0, 1, 0.5},
			},
		},
		Targets: []TargetDefinition{
			{Name: "Target", Position: Vector{-2, 0.2, 1.5}, Speed: 0.2, Health: 3, BoxSize: Vector{0.2, 0.2, 0.2}},
			{Name: "Target", Position: Vector{-2, 1.2, 1.5}, Speed: 0.4, Health: 3, BoxSize: Vector{0.4, 0.4, 0.4}},
			{Name: "Target", Position: Vector{-1.8, 0.1, 1.5}, Speed: 0.3, Health: 3, BoxSize: Vector{0.4, 0.4, 0.4}},
			{Name: "Target", Position: Vector{-2.3, 0.5, 1.5}, Speed: 0.5, Health: 3, BoxSize: Vector{0.4, 0.4, 0.4}},
		},
	}
}
