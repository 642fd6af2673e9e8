// Package protocol loads JSON protocol descriptions from disk.
package protocol

import (
	"encoding/json"
	"os"

	"go.trai.ch/refmap/internal/core/domain"
	"go.trai.ch/refmap/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ProtocolLoader = (*Loader)(nil)

// Loader reads protocol description documents.
type Loader struct{}

// NewLoader creates a new protocol description loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and parses the protocol description at path.
func (l *Loader) Load(path string) (*domain.Protocol, error) {
	// #nosec G304 -- path comes from user configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrProtocolReadFailed.Error()), "path", path)
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrProtocolParseFailed.Error()), "path", path)
	}

	return file.toDomain(), nil
}
