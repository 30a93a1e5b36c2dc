package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the CLI's on-disk configuration, grounded on query.Config's
// shape (nested sections, validateAndSetDefaults) but expressed as
// YAML rather than JSON, since yaml.v3 is an actual dependency of the
// teacher's export path that the JSON-only config layer left unused.
type Config struct {
	Cache  CacheConfig  `yaml:"cache"`
	Output OutputConfig `yaml:"output"`
	Rules  RulesConfig  `yaml:"rules"`
}

// CacheConfig holds the regex-cache capacity setting. The rule store
// does not read it: its cache is always sized by
// rules.DefaultPatternCacheSize.
type CacheConfig struct {
	PatternCacheSize int `yaml:"pattern_cache_size"`
}

// OutputConfig controls CLI presentation.
type OutputConfig struct {
	Color    bool `yaml:"color"`
	Progress bool `yaml:"progress"`
}

// RulesConfig locates the relationship-table CSV used when a command
// does not receive an explicit --csv flag.
type RulesConfig struct {
	CSVPath string `yaml:"csv_path"`
}

// DefaultConfig returns the configuration used when no config file is
// found anywhere in the search order.
func DefaultConfig() *Config {
	return &Config{
		Cache:  CacheConfig{PatternCacheSize: 4096},
		Output: OutputConfig{Color: true, Progress: true},
		Rules:  RulesConfig{CSVPath: "testdata/relationship_table.csv"},
	}
}

// LoadConfig searches, in order: the given path (if non-empty), then
// ./kinship-config.yaml, then ~/.kinship/config.yaml, then
// ~/.config/kinship/config.yaml. Returns DefaultConfig if nothing is
// found. Files in the search order that are absent, unreadable or
// malformed are skipped; a path the caller names explicitly returns an
// error if it is absent, unreadable or malformed.
func LoadConfig(configPath string) (*Config, error) {
	if configPath != "" {
		return loadConfigFromFile(configPath)
	}

	if config, err := loadConfigFromFile("./kinship-config.yaml"); err == nil {
		return config, nil
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		if config, err := loadConfigFromFile(filepath.Join(homeDir, ".kinship", "config.yaml")); err == nil {
			return config, nil
		}
		if config, err := loadConfigFromFile(filepath.Join(homeDir, ".config", "kinship", "config.yaml")); err == nil {
			return config, nil
		}
	}

	return DefaultConfig(), nil
}

func loadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	config.validateAndSetDefaults()
	return config, nil
}

func (c *Config) validateAndSetDefaults() {
	defaults := DefaultConfig()
	if c.Cache.PatternCacheSize <= 0 {
		c.Cache.PatternCacheSize = defaults.Cache.PatternCacheSize
	}
	if c.Rules.CSVPath == "" {
		c.Rules.CSVPath = defaults.Rules.CSVPath
	}
}

// SaveConfig writes config as YAML to path, creating parent
// directories as needed.
func SaveConfig(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
