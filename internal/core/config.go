package core

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Labels holds the localized sentinel captions for the two tag catalogs.
type Labels struct {
	AllContexts    string
	WithoutContext string
	AllProjects    string
	WithoutProject string
}

// Config is the application configuration read from .tasklistrc.
type Config struct {
	// File is the default task list file, loaded at startup when present.
	File string
	// ShowDone is the initial done-visibility of the filter.
	ShowDone bool
	// Labels are the catalog sentinel captions.
	Labels Labels
}

// ConfigManager defines the interface for loading and validating the
// application configuration.
type ConfigManager interface {
	Load() (*Config, error)
	Validate(cfg *Config) error
}

// viperConfigManager implements ConfigManager using Viper for reading the
// YAML configuration file.
type viperConfigManager struct {
	// basePath is the directory where .tasklistrc resides.
	basePath string
}

// NewConfigManager creates a ConfigManager that reads .tasklistrc from
// basePath.
func NewConfigManager(basePath string) ConfigManager {
	return &viperConfigManager{basePath: basePath}
}

// defaultConfig returns a Config populated with sensible defaults.
func defaultConfig() *Config {
	return &Config{
		File:     "",
		ShowDone: false,
		Labels: Labels{
			AllContexts:    "All contexts",
			WithoutContext: "Without context",
			AllProjects:    "All projects",
			WithoutProject: "Without project",
		},
	}
}

// Load reads the .tasklistrc file from the base path. If the file does not
// exist, defaults are returned.
func (cm *viperConfigManager) Load() (*Config, error) {
	cfg := defaultConfig()

	v := viper.New()
	v.SetConfigName(".tasklistrc")
	v.SetConfigType("yaml")
	v.AddConfigPath(cm.basePath)

	// Set Viper defaults so missing keys fall back gracefully.
	v.SetDefault("file", cfg.File)
	v.SetDefault("show_done", cfg.ShowDone)
	v.SetDefault("labels.all_contexts", cfg.Labels.AllContexts)
	v.SetDefault("labels.without_context", cfg.Labels.WithoutContext)
	v.SetDefault("labels.all_projects", cfg.Labels.AllProjects)
	v.SetDefault("labels.without_project", cfg.Labels.WithoutProject)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading .tasklistrc: %w", err)
	}

	cfg.File = v.GetString("file")
	cfg.ShowDone = v.GetBool("show_done")
	cfg.Labels.AllContexts = v.GetString("labels.all_contexts")
	cfg.Labels.WithoutContext = v.GetString("labels.without_context")
	cfg.Labels.AllProjects = v.GetString("labels.all_projects")
	cfg.Labels.WithoutProject = v.GetString("labels.without_project")

	return cfg, nil
}

// Validate checks the configuration for invalid values. Empty sentinel
// labels make the catalogs unusable and are treated as a fatal
// configuration fault.
func (cm *viperConfigManager) Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("configuration is nil")
	}

	var errs []string

	labels := []struct {
		key   string
		value string
	}{
		{"labels.all_contexts", cfg.Labels.AllContexts},
		{"labels.without_context", cfg.Labels.WithoutContext},
		{"labels.all_projects", cfg.Labels.AllProjects},
		{"labels.without_project", cfg.Labels.WithoutProject},
	}
	for _, l := range labels {
		if strings.TrimSpace(l.value) == "" {
			errs = append(errs, fmt.Sprintf("%s must not be empty", l.key))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}
