// Package config loads client settings persisted as YAML next to the binary.
package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultAPIURL is the local development backend.
const DefaultAPIURL = "http://localhost:5000"

// Settings stores operator preferences.
type Settings struct {
	APIURL    string `yaml:"api_url"`
	LogLevel  string `yaml:"log_level,omitempty"`
	LogFormat string `yaml:"log_format,omitempty"`
}

// DefaultSettings returns default settings.
func DefaultSettings() *Settings {
	return &Settings{
		APIURL:   DefaultAPIURL,
		LogLevel: "info",
	}
}

func settingsPath() string {
	exe, err := os.Executable()
	if err != nil {
		return "settings.yaml"
	}
	return filepath.Join(filepath.Dir(exe), "settings.yaml")
}

// Load loads settings from YAML or returns defaults. The QURANADMIN_API_URL
// environment variable overrides the file in either case.
func Load() *Settings {
	s := DefaultSettings()
	data, err := os.ReadFile(settingsPath())
	if err == nil {
		if err := yaml.Unmarshal(data, s); err != nil {
			slog.Error("parse settings", "err", err)
			s = DefaultSettings()
		}
	}
	if v := os.Getenv("QURANADMIN_API_URL"); v != "" {
		s.APIURL = v
	}
	if s.APIURL == "" {
		s.APIURL = DefaultAPIURL
	}
	return s
}

// Save writes settings to YAML.
func (s *Settings) Save() error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(settingsPath(), data, 0600)
}
