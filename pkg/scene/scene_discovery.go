package scene

import (
	"fmt"
	"sort"
	"strings"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string // Name used on the command line
	DisplayName string // Human readable name
	Description string
}

type sceneEntry struct {
	info  SceneInfo
	build func(SceneConfig) (*Scene, error)
}

var builtInScenes = map[string]sceneEntry{
	"default": {
		info: SceneInfo{
			ID:          "default",
			DisplayName: "Default Scene",
			Description: "Reflective floor, mirror sphere, glass pane and torus under three lights",
		},
		build: NewDefaultScene,
	},
	"sphere": {
		info: SceneInfo{
			ID:          "sphere",
			DisplayName: "Sphere",
			Description: "Single gray sphere lit from above",
		},
		build: NewSphereScene,
	},
}

// ListScenes returns the built-in scenes sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtInScenes))
	for _, entry := range builtInScenes {
		scenes = append(scenes, entry.info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// NewSceneByName builds the built-in scene with the given ID
func NewSceneByName(name string, cfg SceneConfig) (*Scene, error) {
	entry, ok := builtInScenes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %s)", name, strings.Join(sceneIDs(), ", "))
	}
	return entry.build(cfg)
}

func sceneIDs() []string {
	var ids []string
	for _, info := range ListScenes() {
		ids = append(ids, info.ID)
	}
	return ids
}
