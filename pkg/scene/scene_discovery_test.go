package scene

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"cornell-empty", "Cornell Empty"},
		{"glass_spheres", "Glass Spheres"},
		{"my-custom-scene", "My Custom Scene"},
		{"simple", "Simple"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := titleCase(tc.input)
			if result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestNewBuiltInScene(t *testing.T) {
	for _, info := range ListBuiltInScenes() {
		t.Run(info.ID, func(t *testing.T) {
			s, err := NewBuiltInScene(info.ID)
			if err != nil {
				t.Fatalf("NewBuiltInScene(%q) failed: %v", info.ID, err)
			}
			if s.Camera == nil {
				t.Fatal("Expected a camera")
			}
			if info.ID != "empty" && (len(s.Shapes()) == 0 || len(s.Lights()) == 0) {
				t.Errorf("Expected shapes and lights, got %d and %d", len(s.Shapes()), len(s.Lights()))
			}
			if s.SamplingConfig.Width <= 0 || s.SamplingConfig.Height <= 0 {
				t.Errorf("Expected a raster size, got %dx%d", s.SamplingConfig.Width, s.SamplingConfig.Height)
			}
		})
	}

	if _, err := NewBuiltInScene("no-such-scene"); err == nil {
		t.Error("Expected error for unknown scene")
	}
}

func TestParseJSONMetadata(t *testing.T) {
	dir := t.TempDir()

	testCases := []struct {
		file     string
		content  string
		expected SceneInfo
	}{
		{
			file:    "two-spheres.json",
			content: `{"name": "Two Spheres", "description": "A pair of spheres", "group": "Samples", "shapes": []}`,
			expected: SceneInfo{
				ID:          "json:two-spheres",
				Name:        "Two Spheres",
				Description: "A pair of spheres",
				Group:       "Samples",
				Type:        "json",
			},
		},
		{
			file:    "bare_scene.json",
			content: `{"shapes": []}`,
			expected: SceneInfo{
				ID:    "json:bare_scene",
				Name:  "Bare Scene",
				Group: "Scene Files",
				Type:  "json",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.file, func(t *testing.T) {
			path := filepath.Join(dir, tc.file)
			if err := os.WriteFile(path, []byte(tc.content), 0644); err != nil {
				t.Fatalf("Failed to write test file: %v", err)
			}

			info, err := ParseJSONMetadata(path)
			if err != nil {
				t.Fatalf("ParseJSONMetadata failed: %v", err)
			}

			tc.expected.FilePath = path
			if info != tc.expected {
				t.Errorf("Expected %+v, got %+v", tc.expected, info)
			}
		})
	}
}

func TestParseJSONMetadata_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	if _, err := ParseJSONMetadata(path); err == nil {
		t.Error("Expected error for malformed file")
	}
}

func TestListAllScenes(t *testing.T) {
	dir := t.TempDir()
	content := `{"name": "Sample", "group": "Samples"}`
	if err := os.WriteFile(filepath.Join(dir, "sample.json"), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	response, err := ListAllScenes(dir)
	if err != nil {
		t.Fatalf("ListAllScenes failed: %v", err)
	}

	if len(response.Groups) != 2 {
		t.Fatalf("Expected 2 groups, got %d", len(response.Groups))
	}
	if response.Groups[0].Name != "Built-in Scenes" {
		t.Errorf("Expected built-in group first, got %q", response.Groups[0].Name)
	}
	if len(response.Groups[0].Scenes) != len(ListBuiltInScenes()) {
		t.Errorf("Expected %d built-in scenes, got %d", len(ListBuiltInScenes()), len(response.Groups[0].Scenes))
	}
	if response.Groups[1].Name != "Samples" || response.Groups[1].Scenes[0].Name != "Sample" {
		t.Errorf("Unexpected file group: %+v", response.Groups[1])
	}
}

func TestListJSONScenes_MissingDirectory(t *testing.T) {
	scenes, err := ListJSONScenes(filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Fatalf("Expected no error for missing directory, got %v", err)
	}
	if len(scenes) != 0 {
		t.Errorf("Expected no scenes, got %d", len(scenes))
	}
}
