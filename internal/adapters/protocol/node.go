package protocol

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/refmap/internal/core/ports"
)

// NodeID is the unique identifier for the protocol loader Graft node.
const NodeID graft.ID = "adapter.protocol"

func init() {
	graft.Register(graft.Node[ports.ProtocolLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ProtocolLoader, error) {
			return NewLoader(), nil
		},
	})
}
