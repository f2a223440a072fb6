// Package guard hosts the engine's collaborators: the process-wide
// configuration, the function-boundary validator, the structural protocol
// registry, and the diagnostic report writer.
package guard

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/typeward/typeward/match"
)

// Settings is the process-wide validation configuration. Every in-flight
// validation reads it once at entry; changing it affects subsequently
// started calls only.
type Settings struct {
	Enabled bool
	Mode    match.Mode
	Verbose bool
}

func defaultSettings() Settings {
	return Settings{Enabled: true, Mode: match.Invariant}
}

var (
	settingsMu sync.RWMutex
	settings   = defaultSettings()
)

// Current returns a snapshot of the active settings.
func Current() Settings {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return settings
}

// Apply replaces the active settings.
func Apply(s Settings) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	settings = s
}

// SetMode sets the active variance mode.
func SetMode(m match.Mode) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	settings.Mode = m
}

// SetEnabled toggles validation. Disabled validation is a no-op: every
// check reports Ok.
func SetEnabled(enabled bool) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	settings.Enabled = enabled
}

// Reset restores the default settings.
func Reset() {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	settings = defaultSettings()
}

// fileSettings is the on-disk shape of a settings file. Absent keys leave
// the corresponding setting unchanged.
type fileSettings struct {
	Enabled *bool  `yaml:"enabled"`
	Mode    string `yaml:"mode"`
	Verbose *bool  `yaml:"verbose"`
}

// LoadFile merges settings from a yaml file into the active configuration.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading settings file: %w", err)
	}
	return loadYAML(data)
}

func loadYAML(data []byte) error {
	var fs fileSettings
	if err := yaml.Unmarshal(data, &fs); err != nil {
		return fmt.Errorf("parsing settings file: %w", err)
	}

	settingsMu.Lock()
	defer settingsMu.Unlock()
	if fs.Enabled != nil {
		settings.Enabled = *fs.Enabled
	}
	if fs.Verbose != nil {
		settings.Verbose = *fs.Verbose
	}
	if fs.Mode != "" {
		mode, err := match.ParseMode(fs.Mode)
		if err != nil {
			return err
		}
		settings.Mode = mode
	}
	return nil
}
