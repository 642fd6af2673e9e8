package telemetry

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/refmap/internal/core/ports"
)

// NodeID is the unique identifier for the telemetry Graft node.
const NodeID graft.ID = "adapter.telemetry"

const instrumentationName = "go.trai.ch/refmap"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Tracer, error) {
			// Spans go to the globally configured OTel provider, which is
			// itself a no-op unless the embedding process installs one.
			if os.Getenv("REFMAP_TRACE") != "" {
				return NewOTelTracer(instrumentationName), nil
			}
			return NewNoOpTracer(), nil
		},
	})
}
