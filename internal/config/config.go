package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level spendlens.yaml configuration.
type Config struct {
	Workspace WorkspaceConfig `yaml:"workspace"`
	Loader    LoaderConfig    `yaml:"loader"`
	Analytics AnalyticsConfig `yaml:"analytics"`
	Audit     AuditConfig     `yaml:"audit"`
}

// WorkspaceConfig identifies the workspace.
type WorkspaceConfig struct {
	Name     string `yaml:"name"`
	Currency string `yaml:"currency"`
}

// LoaderConfig controls upload normalization.
type LoaderConfig struct {
	SkipDuplicates bool     `yaml:"skip_duplicates"`
	DateFormats    []string `yaml:"date_formats,omitempty"` // extra Go layouts tried after the built-ins
}

// AnalyticsConfig holds presentation defaults; the risk thresholds
// themselves are fixed business constants and deliberately not configurable.
type AnalyticsConfig struct {
	TrendMonths          int `yaml:"trend_months"`
	TailThresholdPercent int `yaml:"tail_threshold_percent"`
	ChartLimit           int `yaml:"chart_limit"`
}

// AuditConfig controls the audit trail.
type AuditConfig struct {
	Enabled bool   `yaml:"enabled"`
	User    string `yaml:"user,omitempty"`
}

// Load reads a spendlens.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new workspace.
func Default(name string) *Config {
	return &Config{
		Workspace: WorkspaceConfig{
			Name:     name,
			Currency: "USD",
		},
		Loader: LoaderConfig{
			SkipDuplicates: true,
		},
		Analytics: AnalyticsConfig{
			TrendMonths:          12,
			TailThresholdPercent: 20,
			ChartLimit:           10,
		},
		Audit: AuditConfig{
			Enabled: true,
		},
	}
}
