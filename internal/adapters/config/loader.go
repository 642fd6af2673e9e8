// Package config provides the configuration loader for refmap.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/refmap/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the configuration found from cwd upwards and returns the
// validated config with defaults applied.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	configPath, err := l.DiscoverConfigPath(cwd)
	if err != nil {
		return nil, err
	}

	return l.LoadFile(configPath)
}

// LoadFile reads the configuration at an explicit path, bypassing discovery.
func (l *Loader) LoadFile(configPath string) (*domain.Config, error) {
	var file File
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, err
	}

	cfg, err := file.toDomain(filepath.Dir(configPath))
	if err != nil {
		return nil, zerr.With(err, "config_path", configPath)
	}
	cfg.Path = configPath

	return cfg, nil
}

// DiscoverConfigPath walks up from cwd to find the configuration file.
func (l *Loader) DiscoverConfigPath(cwd string) (string, error) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is validated by caller
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
