package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const gigiliFile = "gigili.yaml"

// LoadGigili loads the tuning configuration.
// Search order: customPath -> ~/.gigili/configs/gigili.yaml -> ./configs/gigili.yaml -> embedded default.
// Only an explicit customPath can fail; unreadable or invalid files found on
// the search path are skipped.
func LoadGigili(customPath string) (GigiliConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GigiliConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseGigili(data)
		if err != nil {
			return GigiliConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, p := range []string{userConfigPath(gigiliFile), filepath.Join("configs", gigiliFile)} {
		if p == "" {
			continue
		}
		if data, err := os.ReadFile(p); err == nil {
			if cfg, err := parseGigili(data); err == nil {
				return cfg, nil
			}
		}
	}

	cfg, err := parseGigili(defaultGigiliYAML)
	if err != nil {
		return DefaultGigiliConfig(), nil
	}
	return cfg, nil
}

// parseGigili overlays data on the built-in defaults, so a file may set only
// the keys it cares about, then validates the result.
func parseGigili(data []byte) (GigiliConfig, error) {
	cfg := DefaultGigiliConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GigiliConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return GigiliConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a file in ~/.gigili/configs, or "" when
// the home directory is unknown.
func userConfigPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gigili", "configs", name)
}
