package scene

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string // Name accepted by the render command
	Name        string // Display name
	Description string // Optional description
	Type        string // "builtin" or "yaml"
	FilePath    string // Path to the YAML file (yaml type only)
}

// BuiltinScenes lists the scenes constructed in code
func BuiltinScenes() []SceneInfo {
	return []SceneInfo{
		{
			ID:          "default",
			Name:        "Default Scene",
			Description: "Mirror, glass and matte spheres on a floor inside an inverted sky sphere",
			Type:        "builtin",
		},
		{
			ID:          "spheregrid",
			Name:        "Sphere Grid",
			Description: "Grid of spheres with OKLCH colors and varying reflectivity",
			Type:        "builtin",
		},
	}
}

// ListYAMLScenes scans dir for *.yaml scene descriptions. A missing directory yields no scenes.
func ListYAMLScenes(dir string) ([]SceneInfo, error) {
	if _, err := os.Stat(dir); err != nil {
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := make([]SceneInfo, 0, len(files))
	for _, filePath := range files {
		info, err := ParseYAMLMetadata(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to parse metadata for %s: %w", filePath, err)
		}
		scenes = append(scenes, info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})

	return scenes, nil
}

// ParseYAMLMetadata extracts metadata from the leading comment block of a scene file:
//
//	# name: Glass Spheres
//	# description: Two refracting spheres over a checker of planes
func ParseYAMLMetadata(filePath string) (SceneInfo, error) {
	filename := filepath.Base(filePath)
	id := strings.TrimSuffix(filename, filepath.Ext(filename))

	info := SceneInfo{
		ID:       id,
		Name:     titleCase(id),
		Type:     "yaml",
		FilePath: filePath,
	}

	file, err := os.Open(filePath)
	if err != nil {
		return info, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		// Stop parsing at first non-comment line
		if !strings.HasPrefix(line, "#") {
			break
		}

		key, value, ok := strings.Cut(strings.TrimSpace(strings.TrimPrefix(line, "#")), ":")
		if !ok {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "name":
			info.Name = strings.TrimSpace(value)
		case "description":
			info.Description = strings.TrimSpace(value)
		}
	}

	return info, scanner.Err()
}

// ListAllScenes returns the built-in scenes followed by the YAML scenes found in dir
func ListAllScenes(dir string) ([]SceneInfo, error) {
	yamlScenes, err := ListYAMLScenes(dir)
	if err != nil {
		return nil, err
	}
	return append(BuiltinScenes(), yamlScenes...), nil
}

// FindScene looks up a scene by ID among the built-in and discovered scenes
func FindScene(dir, id string) (SceneInfo, bool, error) {
	all, err := ListAllScenes(dir)
	if err != nil {
		return SceneInfo{}, false, err
	}
	for _, info := range all {
		if info.ID == id {
			return info, true, nil
		}
	}
	return SceneInfo{}, false, nil
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
