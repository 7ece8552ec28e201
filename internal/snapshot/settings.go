package snapshot

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"smt/internal/domain"
)

// LoadSettings reads and parses the per-case settings file.
func LoadSettings(path string) (*domain.CaseSettings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings file %s: %w", path, err)
	}
	var settings domain.CaseSettings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse settings file %s: %w", path, err)
	}
	return &settings, nil
}
