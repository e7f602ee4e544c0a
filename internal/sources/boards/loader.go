// Package boards loads the optional boards.yaml file that replaces the
// built-in demo board list.
package boards

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader handles loading and parsing of boards.yaml
type Loader struct {
	filePath string
}

// NewLoader creates a new boards loader
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Load reads and parses the boards.yaml file
func (l *Loader) Load() (BoardsConfig, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return BoardsConfig{}, fmt.Errorf("failed to read boards file: %w", err)
	}

	var config BoardsConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return BoardsConfig{}, fmt.Errorf("failed to parse boards yaml: %w", err)
	}

	return config, nil
}
