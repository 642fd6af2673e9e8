package ports

import "go.trai.ch/refmap/internal/core/domain"

// ProtocolLoader defines the interface for loading a protocol description.
//
//go:generate mockgen -source=protocol_loader.go -destination=mocks/mock_protocol_loader.go -package=mocks
type ProtocolLoader interface {
	// Load reads and decodes the protocol description at path. The schema is
	// trusted input; only read and decode failures are reported.
	Load(path string) (*domain.Protocol, error)
}
