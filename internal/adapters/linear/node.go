package linear

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/shinolab/autd3-link-soem/internal/adapters/detector"
	"github.com/shinolab/autd3-link-soem/internal/core/ports"
	"github.com/shinolab/autd3-link-soem/internal/ui/output"
)

// NodeID is the unique identifier for the renderer Graft node.
const NodeID graft.ID = "adapter.renderer"

func init() {
	graft.Register(graft.Node[ports.Renderer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Renderer, error) {
			return NewForMode(detector.DetectEnvironment()), nil
		},
	})
}

// NewForMode creates a Renderer on the process streams whose colour profile
// suits mode.
func NewForMode(mode detector.OutputMode) *Renderer {
	if mode == detector.ModeInteractive {
		return NewRendererWithProfile(nil, nil, output.ColorProfile)
	}
	return NewRenderer(nil, nil)
}
