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
		{"glass-spheres", "Glass Spheres"},
		{"inverted_room", "Inverted Room"},
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

func writeSceneFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

func TestParseYAMLMetadata(t *testing.T) {
	testCases := []struct {
		name     string
		content  string
		wantName string
		wantDesc string
	}{
		{
			name: "complete.yaml",
			content: `# name: Glass Spheres
# description: Two refracting spheres

aliasing_limit: 2
`,
			wantName: "Glass Spheres",
			wantDesc: "Two refracting spheres",
		},
		{
			name:     "no-metadata.yaml",
			content:  "aliasing_limit: 1\n",
			wantName: "No Metadata",
		},
		{
			name: "late-comment.yaml",
			content: `# name: Early
reflection_limit: 1
# description: ignored after the header
`,
			wantName: "Early",
		},
	}

	dir := t.TempDir()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeSceneFile(t, dir, tc.name, tc.content)

			info, err := ParseYAMLMetadata(path)
			if err != nil {
				t.Fatalf("ParseYAMLMetadata() error: %v", err)
			}
			if info.Name != tc.wantName {
				t.Errorf("Name = %q, want %q", info.Name, tc.wantName)
			}
			if info.Description != tc.wantDesc {
				t.Errorf("Description = %q, want %q", info.Description, tc.wantDesc)
			}
			if info.Type != "yaml" || info.FilePath != path {
				t.Errorf("Unexpected type/path: %q %q", info.Type, info.FilePath)
			}
		})
	}
}

func TestListYAMLScenes_MissingDirectory(t *testing.T) {
	scenes, err := ListYAMLScenes(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("ListYAMLScenes() error: %v", err)
	}
	if scenes == nil || len(scenes) != 0 {
		t.Errorf("Expected empty non-nil slice, got %v", scenes)
	}
}

func TestListAllScenes(t *testing.T) {
	dir := t.TempDir()
	writeSceneFile(t, dir, "b-room.yaml", "# name: B Room\n")
	writeSceneFile(t, dir, "a-room.yaml", "# name: A Room\n")
	writeSceneFile(t, dir, "notes.txt", "not a scene")

	all, err := ListAllScenes(dir)
	if err != nil {
		t.Fatalf("ListAllScenes() error: %v", err)
	}

	builtins := BuiltinScenes()
	if len(all) != len(builtins)+2 {
		t.Fatalf("Expected %d scenes, got %d", len(builtins)+2, len(all))
	}
	for i, b := range builtins {
		if all[i].ID != b.ID {
			t.Errorf("Expected built-in %q first, got %q", b.ID, all[i].ID)
		}
	}
	if all[len(builtins)].ID != "a-room" || all[len(builtins)+1].ID != "b-room" {
		t.Errorf("Expected YAML scenes sorted by name, got %q, %q", all[len(builtins)].ID, all[len(builtins)+1].ID)
	}

	info, found, err := FindScene(dir, "b-room")
	if err != nil || !found {
		t.Fatalf("FindScene(b-room) = %v, %v", found, err)
	}
	if info.Type != "yaml" {
		t.Errorf("Expected yaml type, got %q", info.Type)
	}
	if _, found, _ := FindScene(dir, "missing"); found {
		t.Error("Expected missing scene not to be found")
	}
}
