package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	Name        string `json:"name"`        // Scene name
	Description string `json:"description"` // Optional description
	Group       string `json:"group"`       // Grouping category
	Type        string `json:"type"`        // "builtin" or "json"
	FilePath    string `json:"filePath"`    // Path to the scene file (json type only)
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

const builtInGroup = "Built-in Scenes"

type builtInScene struct {
	info  SceneInfo
	build func() *Scene
}

var builtInScenes = []builtInScene{
	{
		info:  SceneInfo{ID: "default", Name: "Default Scene", Description: "Three spheres over a reflective floor"},
		build: NewDefaultScene,
	},
	{
		info:  SceneInfo{ID: "primitives", Name: "Primitives", Description: "Box, cylinder, triangle and mirror under a spot light"},
		build: NewPrimitivesScene,
	},
	{
		info:  SceneInfo{ID: "glass", Name: "Glass Sphere", Description: "Refractive sphere and colored pillars under a soft light"},
		build: NewGlassScene,
	},
	{
		info:  SceneInfo{ID: "cornell", Name: "Cornell Box", Description: "Cornell box with a glass sphere and a block"},
		build: NewCornellScene,
	},
	{
		info:  SceneInfo{ID: "sphere-grid", Name: "Sphere Grid", Description: "5x5 grid of rainbow-colored reflective spheres"},
		build: func() *Scene { return NewSphereGridScene(5) },
	},
	{
		info:  SceneInfo{ID: "empty", Name: "Empty", Description: "No shapes or lights, renders the background"},
		build: New,
	},
}

// ListBuiltInScenes returns the scenes compiled into the binary
func ListBuiltInScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtInScenes))
	for _, b := range builtInScenes {
		info := b.info
		info.Group = builtInGroup
		info.Type = "builtin"
		scenes = append(scenes, info)
	}
	return scenes
}

// NewBuiltInScene creates the built-in scene with the given id
func NewBuiltInScene(id string) (*Scene, error) {
	for _, b := range builtInScenes {
		if b.info.ID == id {
			s := b.build()
			if s.Name == "" {
				s.Name = id
			}
			return s, nil
		}
	}
	return nil, fmt.Errorf("unknown scene: %s", id)
}

// jsonSceneHeader is the part of a scene file read during discovery
type jsonSceneHeader struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Group       string `json:"group"`
}

// ListJSONScenes scans dir for *.json scene files and returns their metadata
func ListJSONScenes(dir string) ([]SceneInfo, error) {
	if _, err := os.Stat(dir); err != nil {
		// No scenes directory, nothing to list
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	var scenes []SceneInfo
	for _, filePath := range files {
		info, err := ParseJSONMetadata(filePath)
		if err != nil {
			fmt.Printf("Warning: failed to parse metadata for %s: %v\n", filePath, err)
			continue
		}
		scenes = append(scenes, info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})

	return scenes, nil
}

// ParseJSONMetadata reads the name, description and group of a scene file
func ParseJSONMetadata(filePath string) (SceneInfo, error) {
	base := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))

	info := SceneInfo{
		ID:       "json:" + base,
		Name:     titleCase(base),
		Group:    "Scene Files",
		Type:     "json",
		FilePath: filePath,
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return info, err
	}

	var header jsonSceneHeader
	if err := json.Unmarshal(data, &header); err != nil {
		return info, err
	}

	if header.Name != "" {
		info.Name = header.Name
	}
	if header.Group != "" {
		info.Group = header.Group
	}
	info.Description = header.Description

	return info, nil
}

// ListAllScenes returns built-in and file scenes grouped by category
func ListAllScenes(dir string) (ScenesResponse, error) {
	var response ScenesResponse

	fileScenes, err := ListJSONScenes(dir)
	if err != nil {
		return response, fmt.Errorf("failed to list scene files: %w", err)
	}

	allScenes := append(ListBuiltInScenes(), fileScenes...)

	groupMap := make(map[string][]SceneInfo)
	for _, s := range allScenes {
		groupMap[s.Group] = append(groupMap[s.Group], s)
	}

	// Built-in first, then alphabetical
	var groupNames []string
	for groupName := range groupMap {
		if groupName != builtInGroup {
			groupNames = append(groupNames, groupName)
		}
	}
	sort.Strings(groupNames)

	response.Groups = append(response.Groups, SceneGroup{
		Name:   builtInGroup,
		Scenes: groupMap[builtInGroup],
	})
	for _, groupName := range groupNames {
		response.Groups = append(response.Groups, SceneGroup{
			Name:   groupName,
			Scenes: groupMap[groupName],
		})
	}

	return response, nil
}

// titleCase converts a filename-style string to title case
// e.g., "glass-spheres" -> "Glass Spheres"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
