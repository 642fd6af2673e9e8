package config

import (
	"path/filepath"
	"strings"

	"go.trai.ch/refmap/internal/core/domain"
	"go.trai.ch/zerr"
)

// File represents the structure of the refmap.yaml configuration file.
type File struct {
	Protocol       string            `yaml:"protocol"`
	Implementation ImplementationDTO `yaml:"implementation"`
}

// ImplementationDTO describes the implementation repository binding.
type ImplementationDTO struct {
	Repository string `yaml:"repository"`
	Branch     string `yaml:"branch"`
	Handler    string `yaml:"handler"`
	Types      string `yaml:"types"`
}

// toDomain validates the parsed file and maps it onto the domain config.
// The protocol path is resolved against the config file's directory when
// relative; repository file paths stay as-is since they address the remote
// tree.
func (f *File) toDomain(baseDir string) (*domain.Config, error) {
	if f.Protocol == "" {
		return nil, domain.ErrMissingProtocolPath
	}

	if f.Implementation.Repository == "" {
		return nil, domain.ErrMissingRepository
	}
	owner, repo, ok := strings.Cut(f.Implementation.Repository, "/")
	if !ok || owner == "" || repo == "" || strings.Contains(repo, "/") {
		return nil, zerr.With(domain.ErrInvalidRepository, "repository", f.Implementation.Repository)
	}

	if f.Implementation.Handler == "" {
		return nil, domain.ErrMissingHandlerFile
	}
	if f.Implementation.Types == "" {
		return nil, domain.ErrMissingTypesFile
	}

	branch := f.Implementation.Branch
	if branch == "" {
		branch = domain.DefaultBranch
	}

	protocolPath := f.Protocol
	if !filepath.IsAbs(protocolPath) {
		protocolPath = filepath.Clean(filepath.Join(baseDir, protocolPath))
	}

	return &domain.Config{
		ProtocolPath: protocolPath,
		Binding: domain.Binding{
			Owner:       owner,
			Repo:        repo,
			Branch:      branch,
			HandlerFile: f.Implementation.Handler,
			TypesFile:   f.Implementation.Types,
		},
	}, nil
}
