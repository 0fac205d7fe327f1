package geom

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads shell settings from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	// Validate fields that have been set explicitly
	if config.Precision < 0 || config.Precision > 12 {
		return nil, fmt.Errorf("precision must be between 0 and 12, got %d", config.Precision)
	}
	if config.Sketch.Format != "" && config.Sketch.Format != "svg" && config.Sketch.Format != "png" {
		return nil, fmt.Errorf("sketch.format must be svg or png, got %q", config.Sketch.Format)
	}
	if config.Sketch.Padding < 0 {
		return nil, fmt.Errorf("sketch.padding must not be negative, got %g", config.Sketch.Padding)
	}
	if config.Sketch.GridSpacing < 0 {
		return nil, fmt.Errorf("sketch.gridSpacing must not be negative, got %g", config.Sketch.GridSpacing)
	}
	if config.Sketch.Resolution < 0 {
		return nil, fmt.Errorf("sketch.resolution must not be negative, got %g", config.Sketch.Resolution)
	}
	if config.Sketch.Scale < 0 {
		return nil, fmt.Errorf("sketch.scale must not be negative, got %g", config.Sketch.Scale)
	}

	return &config, nil
}

// SaveConfig saves the configuration to a YAML file
func SaveConfig(path string, config *Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("marshaling config YAML: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
