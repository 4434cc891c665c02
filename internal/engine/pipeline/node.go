package pipeline

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/shinolab/autd3-link-soem/internal/adapters/shell"     //nolint:depguard // Wired in engine wiring
	"github.com/shinolab/autd3-link-soem/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"github.com/shinolab/autd3-link-soem/internal/core/ports"
)

// NodeID is the unique identifier for the pipeline runner Graft node.
const NodeID graft.ID = "engine.pipeline"

func init() {
	graft.Register(graft.Node[*Runner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*Runner, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return NewRunner(executor, tracer), nil
		},
	})
}
