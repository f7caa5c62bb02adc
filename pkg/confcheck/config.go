package confcheck

import (
	"fmt"
	"os"

	"github.com/Qaminono/Conference-Validator/pkg/confcheck/rules"
	"gopkg.in/yaml.v3"
)

// LoadConfig reads a YAML rule file on top of the built-in defaults.
// A missing file yields the defaults.
func LoadConfig(path string) (*rules.Config, error) {
	cfg := rules.DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// WriteConfig writes cfg as YAML, e.g. to produce an editable starting point.
func WriteConfig(path string, cfg rules.Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
