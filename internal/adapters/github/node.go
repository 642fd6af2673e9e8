package github

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/refmap/internal/core/ports"
)

// NodeID is the unique identifier for the source client Graft node.
const NodeID graft.ID = "adapter.github"

func init() {
	graft.Register(graft.Node[ports.SourceClient]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SourceClient, error) {
			return NewClient(Settings{
				APIBase: os.Getenv("REFMAP_API_BASE"),
				RawBase: os.Getenv("REFMAP_RAW_BASE"),
				Token:   os.Getenv("GITHUB_TOKEN"),
			}), nil
		},
	})
}
