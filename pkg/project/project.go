package project

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProjectFileName is the project file looked up inside a project directory.
const ProjectFileName = "ductwork.yaml"

// Load reads a duct project from a YAML file.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project file: %w", err)
	}

	var proj Project
	if err := yaml.Unmarshal(data, &proj); err != nil {
		return nil, fmt.Errorf("parsing project YAML: %w", err)
	}

	return &proj, nil
}

// LoadProject loads a duct project from a project directory.
// It looks for ductwork.yaml in the given directory.
func LoadProject(projectDir string) (*Project, error) {
	projPath := filepath.Join(projectDir, ProjectFileName)
	return Load(projPath)
}
