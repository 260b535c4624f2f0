package scene

import (
	"errors"
	"fmt"
)

// builtinGroup is the group name of the built-in scenes
const builtinGroup = "Built-in Scenes"

// ErrUnknownScene is returned for names that match no registered scene
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a registered scene
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	Name        string `json:"name"`        // Scene name
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
	Group       string `json:"group"`       // Grouping category
	Width       int    `json:"width"`       // Preferred frame width
	Height      int    `json:"height"`      // Preferred frame height
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string      `json:"name"`
	Scenes []SceneInfo `json:"scenes"`
}

// ScenesResponse represents the complete response for /api/scenes
type ScenesResponse struct {
	Groups []SceneGroup `json:"groups"`
}

type builtinScene struct {
	info   SceneInfo
	create func() *Scene
}

var builtinScenes = []builtinScene{
	{
		info: SceneInfo{
			ID:          "default",
			DisplayName: "Default Scene",
			Description: "Three spheres on a ground plane lit by two point lights",
		},
		create: NewDefaultScene,
	},
	{
		info: SceneInfo{
			ID:          "plane",
			DisplayName: "Plane",
			Description: "Single plane under an overhead light, viewed from above",
		},
		create: NewPlaneScene,
	},
	{
		info: SceneInfo{
			ID:          "shadow",
			DisplayName: "Shadow",
			Description: "Sphere casting a shadow onto a plane",
		},
		create: NewShadowScene,
	},
}

// List returns the built-in scenes in registration order
func List() []SceneInfo {
	infos := make([]SceneInfo, len(builtinScenes))
	for i, b := range builtinScenes {
		// Name and size come from the scene itself so they cannot drift
		s := b.create()
		info := b.info
		info.Name = s.Name
		info.Group = builtinGroup
		info.Width, info.Height = s.Width, s.Height
		infos[i] = info
	}
	return infos
}

// Create builds a fresh copy of the scene with the given ID
func Create(id string) (*Scene, error) {
	if id == "" {
		return nil, fmt.Errorf("scene name cannot be empty")
	}
	for _, b := range builtinScenes {
		if b.info.ID == id {
			return b.create(), nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownScene, id)
}

// ListAllScenes returns the registered scenes grouped by category
func ListAllScenes() ScenesResponse {
	return ScenesResponse{
		Groups: []SceneGroup{{Name: builtinGroup, Scenes: List()}},
	}
}
