package ports

import "go.trai.ch/refmap/internal/core/domain"

// ConfigLoader defines the interface for loading the tool configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration starting from the given working directory
	// and returns the validated config with defaults applied.
	Load(cwd string) (*domain.Config, error)

	// LoadFile reads the configuration at an explicit path, bypassing
	// discovery.
	LoadFile(path string) (*domain.Config, error)

	// DiscoverConfigPath walks up from cwd to find the configuration file.
	DiscoverConfigPath(cwd string) (string, error)
}
