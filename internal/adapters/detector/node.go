package detector

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/shinolab/autd3-link-soem/internal/core/ports"
)

// NodeID is the unique identifier for the host detector Graft node.
const NodeID graft.ID = "adapter.host_detector"

func init() {
	graft.Register(graft.Node[ports.HostDetector]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.HostDetector, error) {
			return NewHost(), nil
		},
	})
}
